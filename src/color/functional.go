package color

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// parseFunctional recognizes rgb(), rgba(), hsl() and hsla() notation.
// Arguments may be comma or space separated; an alpha channel is accepted
// but does not affect the result.
func parseFunctional(token string) ([3]uint8, bool) {
	m := functionalRe.FindStringSubmatch(token)
	if m == nil {
		return [3]uint8{}, false
	}
	fn, args := m[1], strings.FieldsFunc(m[2], func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})

	want := 3
	if strings.HasSuffix(fn, "a") {
		want = 4
	}
	if len(args) != want && !(want == 3 && len(args) == 4) {
		return [3]uint8{}, false
	}
	if len(args) == 4 {
		if _, ok := parseAlpha(args[3]); !ok {
			return [3]uint8{}, false
		}
	}

	if strings.HasPrefix(fn, "rgb") {
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			v, ok := parseChannel(args[i])
			if !ok {
				return [3]uint8{}, false
			}
			rgb[i] = v
		}
		return rgb, true
	}

	h, ok := parseHue(args[0])
	if !ok {
		return [3]uint8{}, false
	}
	s, ok := parsePercent(args[1])
	if !ok {
		return [3]uint8{}, false
	}
	l, ok := parsePercent(args[2])
	if !ok {
		return [3]uint8{}, false
	}
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return [3]uint8{r, g, b}, true
}

// parseChannel reads an rgb channel as 0-255 or as a percentage.
func parseChannel(s string) (uint8, bool) {
	if strings.HasSuffix(s, "%") {
		p, ok := parsePercent(s)
		if !ok {
			return 0, false
		}
		return uint8(math.Round(p * 255)), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return uint8(math.Round(clamp(v, 0, 255))), true
}

// parsePercent reads "NN%" into [0, 1].
func parsePercent(s string) (float64, bool) {
	if !strings.HasSuffix(s, "%") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return clamp(v, 0, 100) / 100, true
}

// parseHue reads a hue in degrees, normalized to [0, 360).
func parseHue(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "deg"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	v = math.Mod(v, 360)
	if v < 0 {
		v += 360
	}
	return v, true
}

func parseAlpha(s string) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		return parsePercent(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return clamp(v, 0, 1), true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
