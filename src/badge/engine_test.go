package badge

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/sofmeright/badgemaker/src/color"
	"github.com/sofmeright/badgemaker/src/style"
)

const flatBuildPassing = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="88" height="20" role="img" aria-label="build: passing">` +
	`<title>build: passing</title>` +
	`<linearGradient id="bms-ID" x2="0" y2="100%"><stop offset="0" stop-color="#bbb" stop-opacity=".1"/><stop offset="1" stop-opacity=".1"/></linearGradient>` +
	`<clipPath id="bmr-ID"><rect width="88" height="20" rx="3" fill="#fff"/></clipPath>` +
	`<g clip-path="url(#bmr-ID)"><rect width="37" height="20" fill="#555"/><rect x="37" width="51" height="20" fill="#4c1"/><rect width="88" height="20" fill="url(#bms-ID)"/></g>` +
	`<g fill="#fff" text-anchor="middle" font-family="Verdana,Geneva,DejaVu Sans,sans-serif" text-rendering="geometricPrecision" font-size="110">` +
	`<text aria-hidden="true" x="195" y="150" fill="#010101" fill-opacity=".3" transform="scale(.1)" textLength="270">build</text>` +
	`<text x="195" y="140" transform="scale(.1)" fill="#fff" textLength="270">build</text>` +
	`<text aria-hidden="true" x="615" y="150" fill="#010101" fill-opacity=".3" transform="scale(.1)" textLength="410">passing</text>` +
	`<text x="615" y="140" transform="scale(.1)" fill="#fff" textLength="410">passing</text>` +
	`</g></svg>`

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" `

const textGroup = `<g fill="#fff" text-anchor="middle" font-family="Verdana,Geneva,DejaVu Sans,sans-serif" text-rendering="geometricPrecision" font-size="110">`

const flatSquareBuildPassing = svgOpen + `width="88" height="20" role="img" aria-label="build: passing">` +
	`<title>build: passing</title>` +
	`<g shape-rendering="crispEdges"><rect width="37" height="20" fill="#555"/><rect x="37" width="51" height="20" fill="#4c1"/></g>` +
	textGroup +
	`<text x="195" y="140" transform="scale(.1)" fill="#fff" textLength="270">build</text>` +
	`<text x="615" y="140" transform="scale(.1)" fill="#fff" textLength="410">passing</text>` +
	`</g></svg>`

const plasticGradient = `<linearGradient id="bms-ID" x2="0" y2="100%">` +
	`<stop offset="0"  stop-color="#fff" stop-opacity=".7"/>` +
	`<stop offset=".1" stop-color="#aaa" stop-opacity=".1"/>` +
	`<stop offset=".9" stop-color="#000" stop-opacity=".3"/>` +
	`<stop offset="1"  stop-color="#000" stop-opacity=".5"/>` +
	`</linearGradient>`

const plasticBuildPassing = svgOpen + `width="88" height="18" role="img" aria-label="build: passing">` +
	`<title>build: passing</title>` +
	plasticGradient +
	`<clipPath id="bmr-ID"><rect width="88" height="18" rx="4" fill="#fff"/></clipPath>` +
	`<g clip-path="url(#bmr-ID)"><rect width="37" height="18" fill="#555"/><rect x="37" width="51" height="18" fill="#4c1"/><rect width="88" height="18" fill="url(#bms-ID)"/></g>` +
	textGroup +
	`<text aria-hidden="true" x="195" y="140" fill="#010101" fill-opacity=".3" transform="scale(.1)" textLength="270">build</text>` +
	`<text x="195" y="130" transform="scale(.1)" fill="#fff" textLength="270">build</text>` +
	`<text aria-hidden="true" x="615" y="140" fill="#010101" fill-opacity=".3" transform="scale(.1)" textLength="410">passing</text>` +
	`<text x="615" y="130" transform="scale(.1)" fill="#fff" textLength="410">passing</text>` +
	`</g></svg>`

const plasticLicenseMIT = svgOpen + `width="77" height="18" role="img" aria-label="license: MIT">` +
	`<title>license: MIT</title>` +
	plasticGradient +
	`<clipPath id="bmr-ID"><rect width="77" height="18" rx="4" fill="#fff"/></clipPath>` +
	`<g clip-path="url(#bmr-ID)"><rect x="0" width="77" height="18" fill="#4c1"/><rect width="77" height="18" fill="url(#bms-ID)"/></g>` +
	textGroup +
	`<text aria-hidden="true" x="385" y="140" fill="#010101" fill-opacity=".3" transform="scale(.1)" textLength="670">license: MIT</text>` +
	`<text x="385" y="130" transform="scale(.1)" fill="#fff" textLength="670">license: MIT</text>` +
	`</g></svg>`

func mustBuild(t *testing.T, b *Builder) *Badge {
	t.Helper()
	out, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return out
}

func TestBuildFlatMarkup(t *testing.T) {
	b := mustBuild(t, NewBuilder().Label("build").Message("passing").StyleParse("flat"))

	want := strings.ReplaceAll(flatBuildPassing, "ID", b.ID().String())
	if got := b.SVG(); got != want {
		t.Errorf("SVG mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestBuildMarkupPerStyle(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		message string
		style   string
		want    string
	}{
		{"flat-square", "build", "passing", "flat-square", flatSquareBuildPassing},
		{"plastic", "build", "passing", "plastic", plasticBuildPassing},
		{"plastic label-less", "", "license: MIT", "plastic", plasticLicenseMIT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBuild(t, NewBuilder().Label(tt.label).Message(tt.message).StyleParse(tt.style))
			want := strings.ReplaceAll(tt.want, "ID", b.ID().String())
			if got := b.SVG(); got != want {
				t.Errorf("SVG mismatch\n got: %s\nwant: %s", got, want)
			}
		})
	}
}

// Scenario A
func TestBuildFlatBoxes(t *testing.T) {
	newBuilder := func() *Builder {
		return NewBuilder().Label("build").Message("passing").StyleParse("flat")
	}
	b := mustBuild(t, newBuilder())

	svg := b.SVG()
	if n := strings.Count(svg, `<rect width="37" height="20" fill="#555"/>`); n != 1 {
		t.Errorf("label boxes = %d, want 1", n)
	}
	if n := strings.Count(svg, `<rect x="37" width="51" height="20" fill="#4c1"/>`); n != 1 {
		t.Errorf("message boxes = %d, want 1", n)
	}
	if b.Layout().TotalWidth <= 0 {
		t.Errorf("TotalWidth = %d", b.Layout().TotalWidth)
	}
	for i := 0; i < 3; i++ {
		if again := mustBuild(t, newBuilder()); again.ID() != b.ID() {
			t.Fatalf("id changed between builds: %s vs %s", again.ID(), b.ID())
		}
	}
}

// Scenario B
func TestBuildLabellessPlastic(t *testing.T) {
	b := mustBuild(t, NewBuilder().Label("").Message("license: MIT").StyleParse("plastic"))
	l := b.Layout()

	if l.HasLabel || l.LabelWidth != 0 {
		t.Fatalf("label box present: %+v", l)
	}
	if l.TotalWidth != l.MessageWidth {
		t.Errorf("TotalWidth = %d, MessageWidth = %d", l.TotalWidth, l.MessageWidth)
	}

	svg := b.SVG()
	if n := strings.Count(svg, "<rect "); n != 3 {
		// clip rect, message box, gradient overlay
		t.Errorf("rect count = %d, want 3:\n%s", n, svg)
	}
	if !strings.Contains(svg, `<rect x="0" width="77" height="18" fill="#4c1"/>`) {
		t.Errorf("message box missing:\n%s", svg)
	}
	if !strings.Contains(svg, `<linearGradient id="`+b.ID().GradientID()+`"`) {
		t.Error("plastic gradient definition missing")
	}
	if !strings.Contains(svg, `<stop offset="0"  stop-color="#fff" stop-opacity=".7"/>`) {
		t.Error("plastic gradient stops not aligned")
	}
	if !strings.Contains(svg, `fill="url(#`+b.ID().GradientID()+`)"`) {
		t.Error("gradient overlay rect missing")
	}
	if !strings.Contains(svg, `aria-label="license: MIT"`) {
		t.Error("label-less accessible text should be the message alone")
	}
	if n := strings.Count(svg, ">license: MIT</text>"); n != 2 {
		t.Errorf("message text count = %d, want text and shadow", n)
	}
}

// Scenario C
func TestBuildUnknownStyle(t *testing.T) {
	b, err := NewBuilder().Label("build").Message("passing").StyleParse("unknown-style").Build()
	if err == nil {
		t.Fatal("expected error")
	}
	if b != nil {
		t.Fatal("no badge may be returned on failure")
	}
	if !IsCode(err, ErrUnknownStyle) {
		t.Errorf("error %v is not UNKNOWN_STYLE", err)
	}
	if !errors.Is(err, style.ErrUnknownStyle) {
		t.Errorf("error %v does not unwrap to style.ErrUnknownStyle", err)
	}
	if !strings.Contains(err.Error(), "unknown-style") {
		t.Errorf("error %q does not name the style", err)
	}
}

// Scenario D
func TestBuildUnrecognizedColor(t *testing.T) {
	b := mustBuild(t, NewBuilder().Label("build").Message("passing").ColorParse("not-a-color"))

	if got := b.MessageColor().Value; got != color.DefaultMessage {
		t.Errorf("message color = %q, want %q", got, color.DefaultMessage)
	}
	if !strings.Contains(b.SVG(), `fill="`+color.DefaultMessage+`"`) {
		t.Error("default message color not rendered")
	}
}

// Scenario E
func TestBuildFlatVersusFlatSquare(t *testing.T) {
	flat := mustBuild(t, NewBuilder().Label("build").Message("passing").StyleParse("flat"))
	square := mustBuild(t, NewBuilder().Label("build").Message("passing").StyleParse("flatsquare"))

	fl, sq := flat.Layout(), square.Layout()
	if fl.LabelWidth != sq.LabelWidth || fl.MessageWidth != sq.MessageWidth || fl.TotalWidth != sq.TotalWidth {
		t.Errorf("box widths differ: %+v vs %+v", fl, sq)
	}
	if fl.LabelX != sq.LabelX || fl.MessageX != sq.MessageX {
		t.Errorf("text positions differ: %+v vs %+v", fl, sq)
	}
	if fl.Radius == 0 || sq.Radius != 0 {
		t.Errorf("radius flat=%d square=%d", fl.Radius, sq.Radius)
	}
	if !strings.Contains(flat.SVG(), ` rx="3"`) {
		t.Error("flat badge lacks rounding")
	}
	if strings.Contains(square.SVG(), " rx=") {
		t.Error("flat-square badge must not carry rounding attributes")
	}
	if !strings.Contains(square.SVG(), `<g shape-rendering="crispEdges">`) {
		t.Error("flat-square badge should render crisp boxes")
	}
	if flat.ID() == square.ID() {
		t.Error("style change must change the id")
	}
}

func TestBuildDeterministic(t *testing.T) {
	inputs := [][5]string{
		{"build", "passing", "", "", "flat"},
		{"", "license: MIT", "blue", "orange", "plastic"},
		{"coverage", "99%", "#333", "rgb(10, 200, 30)", "flat-square"},
		{"a<b", `"quoted" & 'single'`, "AliceBlue", "abc", "flat"},
	}
	for _, in := range inputs {
		build := func() *Badge {
			return mustBuild(t, NewBuilder().
				Label(in[0]).Message(in[1]).
				LabelColorParse(in[2]).ColorParse(in[3]).
				StyleParse(in[4]))
		}
		a, b := build(), build()
		if a.ID() != b.ID() || a.SVG() != b.SVG() {
			t.Errorf("%v: builds differ", in)
		}
	}
}

func TestBuildConcurrent(t *testing.T) {
	want := mustBuild(t, NewBuilder().Label("build").Message("passing"))

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := NewBuilder().Label("build").Message("passing").Build()
			if err != nil {
				errs <- err.Error()
				return
			}
			if b.SVG() != want.SVG() {
				errs <- "markup differs"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestBuildMonotonicWidth(t *testing.T) {
	msg := ""
	prev := 0
	for _, r := range "passing with 100% coverage & more" {
		msg += string(r)
		b := mustBuild(t, NewBuilder().Label("build").Message(msg).ColorParse("green"))
		if w := b.Layout().TotalWidth; w < prev {
			t.Fatalf("width decreased at %q: %d < %d", msg, w, prev)
		} else {
			prev = w
		}
	}
}

func TestBuildStyleIsolation(t *testing.T) {
	var base *Badge
	for _, v := range style.Variants() {
		b := mustBuild(t, NewBuilder().Label("tests").Message("1024 passed").Style(v))
		if base == nil {
			base = b
			continue
		}
		if b.Layout().LabelTextLength != base.Layout().LabelTextLength ||
			b.Layout().MessageTextLength != base.Layout().MessageTextLength {
			t.Errorf("%s: measured widths differ from %s", v, base.Style())
		}
	}
}

func TestBuildColorFallbackPerRole(t *testing.T) {
	for _, tok := range []string{"", "nope", "#zzz"} {
		b := mustBuild(t, NewBuilder().Label("l").Message("m").LabelColorParse(tok).ColorParse(tok))
		if b.LabelColor().Value != color.DefaultLabel {
			t.Errorf("label color for %q = %q", tok, b.LabelColor().Value)
		}
		if b.MessageColor().Value != color.DefaultMessage {
			t.Errorf("message color for %q = %q", tok, b.MessageColor().Value)
		}
	}
}

func TestBuildIDSensitivity(t *testing.T) {
	base := func() *Builder {
		return NewBuilder().Label("build").Message("passing").LabelColorParse("grey").ColorParse("green").StyleParse("flat")
	}
	want := mustBuild(t, base()).ID()

	changes := map[string]*Builder{
		"label":         base().Label("built"),
		"message":       base().Message("failing"),
		"label color":   base().LabelColorParse("blue"),
		"message color": base().ColorParse("red"),
		"style":         base().StyleParse("plastic"),
	}
	for name, b := range changes {
		if got := mustBuild(t, b).ID(); got == want {
			t.Errorf("changing %s kept id %s", name, got)
		}
	}
}

func TestBuildNormalizesWhitespace(t *testing.T) {
	a := mustBuild(t, NewBuilder().Label("  build ").Message("passing\n"))
	b := mustBuild(t, NewBuilder().Label("build").Message("passing"))
	if a.ID() != b.ID() || a.SVG() != b.SVG() {
		t.Error("surrounding whitespace must not affect the badge")
	}
}

func TestBuildTypedInputs(t *testing.T) {
	typed := mustBuild(t, NewBuilder().Label("x").Message("y").
		LabelColor(color.Resolve("blue", color.Label)).
		Color(color.Resolve("red", color.Message)).
		Style(style.Plastic))
	parsed := mustBuild(t, NewBuilder().Label("x").Message("y").
		LabelColorParse("blue").ColorParse("red").StyleParse("plastic"))
	if typed.SVG() != parsed.SVG() {
		t.Error("typed and parsed inputs should render identically")
	}
}

func TestBuildMissingMetrics(t *testing.T) {
	_, err := NewBuilder().Message("x").Metrics(nil).Build()
	if !IsCode(err, ErrInternal) {
		t.Fatalf("err = %v, want INTERNAL", err)
	}
	if IsCode(err, ErrUnknownStyle) {
		t.Fatal("internal failures must not look like validation failures")
	}
}

func TestBuildEscapesText(t *testing.T) {
	b := mustBuild(t, NewBuilder().Label("a<b").Message(`"x" & 'y'`))
	svg := b.SVG()
	if !strings.Contains(svg, ">a&lt;b</text>") {
		t.Error("label not escaped")
	}
	if !strings.Contains(svg, "&quot;x&quot; &amp; &apos;y&apos;") {
		t.Error("message not escaped")
	}
}

func TestBuildLightBackgroundText(t *testing.T) {
	b := mustBuild(t, NewBuilder().Label("docs").Message("ready").ColorParse("white"))
	svg := b.SVG()
	if !strings.Contains(svg, `fill="#333" textLength`) {
		t.Error("dark text expected on a light message box")
	}
	if !strings.Contains(svg, `fill="#ccc" fill-opacity=".3"`) {
		t.Error("light shadow expected on a light message box")
	}
}

func TestStatusColor(t *testing.T) {
	tests := map[string]string{
		"passed":   "brightgreen",
		"warning":  "yellow",
		"failed":   "red",
		"critical": "red",
		"":         "brightgreen",
	}
	for in, want := range tests {
		if got := StatusColor(in); got != want {
			t.Errorf("StatusColor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildSanitizesText(t *testing.T) {
	b := mustBuild(t, NewBuilder().Label("ok\xff").Message("m\x01sg"))

	if b.Label() != "ok\uFFFD" {
		t.Errorf("Label = %q, want replacement character", b.Label())
	}
	if b.Message() != "msg" {
		t.Errorf("Message = %q, want control character dropped", b.Message())
	}

	svg := b.SVG()
	if !utf8.ValidString(svg) {
		t.Fatal("SVG is not valid UTF-8")
	}
	dec := xml.NewDecoder(strings.NewReader(svg))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("SVG does not parse as XML: %v", err)
		}
	}

	clean := mustBuild(t, NewBuilder().Label("ok\uFFFD").Message("msg"))
	if b.ID() != clean.ID() {
		t.Error("id should be computed from the sanitized text")
	}
}

func TestBuildZeroResolvedColor(t *testing.T) {
	b := mustBuild(t, NewBuilder().
		Label("a").Message("b").
		LabelColor(color.Resolved{}).
		Color(color.Resolved{}))

	if strings.Contains(b.SVG(), `fill=""`) {
		t.Error("zero color rendered an empty fill")
	}
	if got := b.LabelColor().Value; got != color.DefaultLabel {
		t.Errorf("label color = %q, want %q", got, color.DefaultLabel)
	}
	if got := b.MessageColor().Value; got != color.DefaultMessage {
		t.Errorf("message color = %q, want %q", got, color.DefaultMessage)
	}
}
