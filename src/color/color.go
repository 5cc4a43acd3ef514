// Package color resolves raw badge color tokens into the fill values written
// into badge markup. Resolution never fails: anything unrecognized becomes the
// default color for the box it paints.
package color

import (
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Role identifies which badge box a color paints.
type Role int

const (
	Label   Role = iota // left box
	Message             // right box
)

// String returns the role name.
func (r Role) String() string {
	if r == Label {
		return "label"
	}
	return "message"
}

// Source records how a token was recognized.
type Source int

const (
	Default    Source = iota // empty or unrecognized token
	Palette                  // named badge palette entry or alias
	Hex                      // 3- or 6-digit hex literal
	Functional               // rgb()/rgba()/hsl()/hsla()
	CSSName                  // CSS color keyword
)

// Role defaults. Not configurable.
const (
	DefaultLabel   = "#555"
	DefaultMessage = "#4c1"
)

// Text contrast switches from light to dark text above this brightness.
const brightnessThreshold = 0.69

// palette holds the badge format's named colors. Values are written verbatim.
var palette = map[string]string{
	"brightgreen": "#4c1",
	"green":       "#97ca00",
	"yellow":      "#dfb317",
	"yellowgreen": "#a4a61d",
	"orange":      "#fe7d37",
	"red":         "#e05d44",
	"blue":        "#007ec6",
	"grey":        "#555",
	"lightgrey":   "#9f9f9f",
}

var aliases = map[string]string{
	"gray":          "grey",
	"lightgray":     "lightgrey",
	"critical":      "red",
	"important":     "orange",
	"success":       "brightgreen",
	"informational": "blue",
	"inactive":      "lightgrey",
}

var (
	hexRe        = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	functionalRe = regexp.MustCompile(`^(rgba?|hsla?)\(([^()]*)\)$`)
)

// Resolved is a canonical color derived from a raw token.
type Resolved struct {
	Value  string // string written into fill attributes
	Source Source
	rgb    [3]uint8
}

// RGB returns the 8-bit channel values of the color.
func (c Resolved) RGB() (r, g, b uint8) {
	return c.rgb[0], c.rgb[1], c.rgb[2]
}

// Brightness returns the perceived brightness in [0, 1], rounded to two decimals.
func (c Resolved) Brightness() float64 {
	r, g, b := float64(c.rgb[0]), float64(c.rgb[1]), float64(c.rgb[2])
	v := (r*299 + g*587 + b*114) / 255000
	return math.Round(v*100) / 100
}

// TextColors returns the text fill and shadow fill used on top of this color.
func (c Resolved) TextColors() (text, shadow string) {
	if c.Brightness() <= brightnessThreshold {
		return "#fff", "#010101"
	}
	return "#333", "#ccc"
}

// Resolve maps a raw token to a color for the given role.
func Resolve(token string, role Role) Resolved {
	token = strings.TrimSpace(token)

	if v, ok := lookupPalette(token); ok {
		return fromHex(v, Palette)
	}

	if m := hexRe.FindStringSubmatch(token); m != nil {
		digits := strings.ToLower(m[1])
		if len(digits) == 3 {
			digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
		}
		return fromHex("#"+digits, Hex)
	}

	lower := strings.ToLower(token)
	if rgb, ok := parseFunctional(lower); ok {
		return Resolved{Value: lower, Source: Functional, rgb: rgb}
	}

	if c, ok := colornames.Map[lower]; ok {
		return Resolved{Value: lower, Source: CSSName, rgb: [3]uint8{c.R, c.G, c.B}}
	}

	return DefaultFor(role)
}

// DefaultFor returns the fallback color of a role.
func DefaultFor(role Role) Resolved {
	if role == Label {
		return fromHex(DefaultLabel, Default)
	}
	return fromHex(DefaultMessage, Default)
}

// IsNamed reports whether token is a palette name or alias.
func IsNamed(token string) bool {
	_, ok := lookupPalette(token)
	return ok
}

func lookupPalette(token string) (string, bool) {
	if v, ok := palette[token]; ok {
		return v, true
	}
	if name, ok := aliases[token]; ok {
		return palette[name], true
	}
	return "", false
}

// fromHex builds a Resolved from a known-valid hex literal.
func fromHex(hex string, src Source) Resolved {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Resolved{Value: hex, Source: src}
	}
	r, g, b := c.RGB255()
	return Resolved{Value: hex, Source: src, rgb: [3]uint8{r, g, b}}
}
