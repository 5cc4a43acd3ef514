// Package metrics estimates rendered text width from per-glyph advance
// tables. No shaping is done: a string's width is the plain sum of its rune
// advances.
package metrics

import (
	"fmt"
	"io"
)

const (
	firstRune = 32  // space
	lastRune  = 126 // tilde
)

// Table holds advance widths for printable ASCII at one font and size.
// Tables are never modified after construction and may be shared freely.
type Table struct {
	name     string
	size     float64
	advances [lastRune - firstRune + 1]float64
	fallback float64 // width for runes outside the table
}

// Name returns the font family the table was measured from.
func (t *Table) Name() string { return t.name }

// Size returns the pixel size the table was measured at.
func (t *Table) Size() float64 { return t.size }

// Fallback returns the width assumed for runes the table does not cover.
func (t *Table) Fallback() float64 { return t.fallback }

// Advance returns the advance width of a single rune.
func (t *Table) Advance(r rune) float64 {
	if r >= firstRune && r <= lastRune {
		return t.advances[r-firstRune]
	}
	return t.fallback
}

// Width returns the unrounded pixel width of s.
func (t *Table) Width(s string) float64 {
	var w float64
	for _, r := range s {
		w += t.Advance(r)
	}
	return w
}

// PreferredWidth returns the whole-pixel width used for layout: the
// fractional part is dropped and even results are bumped to the next odd
// value so centered text lands on the pixel grid. Empty text is 0 wide.
func (t *Table) PreferredWidth(s string) int {
	if s == "" {
		return 0
	}
	w := int(t.Width(s))
	if w%2 == 0 {
		w++
	}
	return w
}

// Dump writes the table as one "rune width" row per covered character.
func (t *Table) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s %gpx (fallback %.4f)\n", t.name, t.size, t.fallback); err != nil {
		return err
	}
	for r := rune(firstRune); r <= lastRune; r++ {
		if _, err := fmt.Fprintf(w, "%q\t%.4f\n", r, t.advances[r-firstRune]); err != nil {
			return err
		}
	}
	return nil
}
