// Package layout computes badge box geometry from measured text widths.
package layout

import (
	"math"
	"strconv"

	"github.com/sofmeright/badgemaker/src/style"
)

const (
	// HorizPadding is added on each side of a text segment.
	HorizPadding = 5
	// TextScale is the factor between box units and the scale(.1) text space.
	TextScale = 10

	labelMargin = 1
)

// Result is the computed geometry of one badge. Box sizes are in pixels;
// text positions and lengths are in scaled text units.
type Result struct {
	HasLabel bool

	LabelWidth   int // label box, 0 when label-less
	MessageWidth int // message box
	TotalWidth   int
	Height       int
	Radius       int

	LabelX            float64
	MessageX          float64
	LabelTextLength   int
	MessageTextLength int
}

// Compute lays out a badge from preferred text widths (0 for empty text).
// An empty label drops the label box entirely; the message box is then the
// whole badge.
func Compute(labelText, messageText int, v style.Variant) Result {
	spec := v.Spec()
	hasLabel := labelText > 0

	r := Result{
		HasLabel:          hasLabel,
		Height:            spec.Height,
		Radius:            spec.Radius,
		LabelTextLength:   TextScale * labelText,
		MessageTextLength: TextScale * messageText,
	}
	if spec.SquareCorners {
		r.Radius = 0
	}

	if hasLabel {
		r.LabelWidth = labelText + 2*HorizPadding
		r.LabelX = scaled(labelMargin, labelText)
	}

	// The message text starts one pixel inside the label box when both
	// segments are present.
	margin := r.LabelWidth
	if messageText > 0 {
		margin--
	}
	if !hasLabel {
		margin++
	}

	r.MessageWidth = messageText + 2*HorizPadding
	r.MessageX = scaled(margin, messageText)
	r.TotalWidth = r.LabelWidth + r.MessageWidth
	return r
}

// scaled returns the centered text anchor for a segment starting at margin.
func scaled(margin, width int) float64 {
	return math.Round(TextScale * (float64(margin) + 0.5*float64(width) + HorizPadding))
}

// Format renders a coordinate with the shortest exact decimal representation.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
