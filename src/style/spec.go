package style

// Stop is one linear-gradient stop. An empty Color omits stop-color.
type Stop struct {
	Offset  string
	Color   string
	Opacity string
}

// Spec fixes the paint and shape rules of a variant. Text positions are in
// the scaled (×10) text coordinate space.
type Spec struct {
	Height        int
	Radius        int    // clip corner radius; 0 with SquareCorners
	SquareCorners bool   // emit crisp square boxes instead of a rounded clip
	Gradient      []Stop // overlay gradient; nil for none
	Shadow        bool   // draw a darker offset copy under each text
	TextY         int
	ShadowY       int
}

var specs = [...]Spec{
	Flat: {
		Height: 20,
		Radius: 3,
		Gradient: []Stop{
			{Offset: "0", Color: "#bbb", Opacity: ".1"},
			{Offset: "1", Opacity: ".1"},
		},
		Shadow:  true,
		TextY:   140,
		ShadowY: 150,
	},
	FlatSquare: {
		Height:        20,
		Radius:        0,
		SquareCorners: true,
		TextY:         140,
		ShadowY:       150,
	},
	Plastic: {
		Height: 18,
		Radius: 4,
		Gradient: []Stop{
			{Offset: "0", Color: "#fff", Opacity: ".7"},
			{Offset: ".1", Color: "#aaa", Opacity: ".1"},
			{Offset: ".9", Color: "#000", Opacity: ".3"},
			{Offset: "1", Color: "#000", Opacity: ".5"},
		},
		Shadow:  true,
		TextY:   130,
		ShadowY: 140,
	},
}

// Spec returns the rendering rules of v. Invalid variants get Flat's rules.
func (v Variant) Spec() Spec {
	if !v.Valid() {
		return specs[Flat]
	}
	return specs[v]
}
