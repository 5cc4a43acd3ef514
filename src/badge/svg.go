package badge

import (
	"fmt"
	"strings"

	"github.com/sofmeright/badgemaker/src/color"
	"github.com/sofmeright/badgemaker/src/layout"
	"github.com/sofmeright/badgemaker/src/style"
)

const fontFamily = "Verdana,Geneva,DejaVu Sans,sans-serif"

// render produces the badge markup. Element and attribute order is fixed;
// comparisons against other renderers are byte-for-byte.
func render(b *Badge) string {
	l := b.layout
	spec := b.style.Spec()
	access := xmlEscape(b.AccessibleText())
	labelFill := xmlEscape(b.labelColor.Value)
	messageFill := xmlEscape(b.messageColor.Value)

	var s strings.Builder

	fmt.Fprintf(&s, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" role="img" aria-label="%s">`,
		l.TotalWidth, l.Height, access)
	fmt.Fprintf(&s, `<title>%s</title>`, access)

	// Background
	if spec.SquareCorners {
		s.WriteString(`<g shape-rendering="crispEdges">`)
		writeBoxes(&s, l, labelFill, messageFill)
		s.WriteString(`</g>`)
	} else {
		gradientID, clipID := b.id.GradientID(), b.id.ClipID()
		writeGradient(&s, gradientID, spec.Gradient)
		fmt.Fprintf(&s, `<clipPath id="%s"><rect width="%d" height="%d" rx="%d" fill="#fff"/></clipPath>`,
			clipID, l.TotalWidth, l.Height, l.Radius)
		fmt.Fprintf(&s, `<g clip-path="url(#%s)">`, clipID)
		writeBoxes(&s, l, labelFill, messageFill)
		if spec.Gradient != nil {
			fmt.Fprintf(&s, `<rect width="%d" height="%d" fill="url(#%s)"/>`, l.TotalWidth, l.Height, gradientID)
		}
		s.WriteString(`</g>`)
	}

	// Text
	fmt.Fprintf(&s, `<g fill="#fff" text-anchor="middle" font-family="%s" text-rendering="geometricPrecision" font-size="110">`, fontFamily)
	if l.HasLabel {
		writeText(&s, spec, b.label, l.LabelX, l.LabelTextLength, b.labelColor)
	}
	if b.message != "" {
		writeText(&s, spec, b.message, l.MessageX, l.MessageTextLength, b.messageColor)
	}
	s.WriteString(`</g>`)

	s.WriteString(`</svg>`)
	return s.String()
}

// writeGradient emits the overlay gradient definition. Stop offsets are
// padded to a common width, matching the reference layout.
func writeGradient(s *strings.Builder, id string, stops []style.Stop) {
	if stops == nil {
		return
	}
	width := 0
	for _, st := range stops {
		width = max(width, len(st.Offset))
	}

	fmt.Fprintf(s, `<linearGradient id="%s" x2="0" y2="100%%">`, id)
	for _, st := range stops {
		pad := strings.Repeat(" ", width-len(st.Offset))
		fmt.Fprintf(s, `<stop offset="%s"%s`, st.Offset, pad)
		if st.Color != "" {
			fmt.Fprintf(s, ` stop-color="%s"`, st.Color)
		}
		fmt.Fprintf(s, ` stop-opacity="%s"/>`, st.Opacity)
	}
	s.WriteString(`</linearGradient>`)
}

// writeBoxes emits the label and message rectangles. A label-less badge has
// no label rectangle.
func writeBoxes(s *strings.Builder, l layout.Result, labelFill, messageFill string) {
	if l.HasLabel {
		fmt.Fprintf(s, `<rect width="%d" height="%d" fill="%s"/>`, l.LabelWidth, l.Height, labelFill)
	}
	fmt.Fprintf(s, `<rect x="%d" width="%d" height="%d" fill="%s"/>`, l.LabelWidth, l.MessageWidth, l.Height, messageFill)
}

// writeText emits one text segment, preceded by its shadow copy when the
// style draws shadows.
func writeText(s *strings.Builder, spec style.Spec, text string, x float64, textLength int, bg color.Resolved) {
	content := xmlEscape(text)
	fill, shadow := bg.TextColors()
	xs := layout.Format(x)

	if spec.Shadow {
		fmt.Fprintf(s, `<text aria-hidden="true" x="%s" y="%d" fill="%s" fill-opacity=".3" transform="scale(.1)" textLength="%d">%s</text>`,
			xs, spec.ShadowY, shadow, textLength, content)
	}
	fmt.Fprintf(s, `<text x="%s" y="%d" transform="scale(.1)" fill="%s" textLength="%d">%s</text>`,
		xs, spec.TextY, fill, textLength, content)
}

// xmlEscape escapes special XML characters in badge text and attributes.
func xmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
