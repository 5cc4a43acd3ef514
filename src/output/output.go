// Package output formats badgemaker results for the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sofmeright/badgemaker/src/verify"
)

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// diffContext is how many bytes of each side are shown around a mismatch.
const diffContext = 48

// Printer formats and writes verification results.
type Printer struct {
	Writer io.Writer
	Color  bool
}

// NewPrinter creates a printer writing to stdout with color auto-detection.
func NewPrinter() *Printer {
	return &Printer{
		Writer: os.Stdout,
		Color:  UseColor(),
	}
}

// Print outputs every failed comparison, returns true if any exist.
func (p *Printer) Print(results []verify.Result) bool {
	failed := false
	for _, r := range results {
		if r.Match() {
			continue
		}
		failed = true

		fmt.Fprintf(p.Writer, "\n%s %s\n", p.tag(r), p.colorize(r.Case.String(), colorBold))
		if r.Err != nil {
			fmt.Fprintf(p.Writer, "  %s\n", r.Err)
			continue
		}

		off := r.Offset()
		fmt.Fprintf(p.Writer, "  %s first difference at byte %d\n", p.colorize(r.ID.String(), colorGray), off)
		fmt.Fprintf(p.Writer, "  got:  %s\n", excerpt(r.Got, off))
		fmt.Fprintf(p.Writer, "  want: %s\n", excerpt(r.Want, off))
	}
	return failed
}

// Summary prints a final summary line.
func (p *Printer) Summary(stats verify.Stats, hits, misses int64) {
	fmt.Fprintf(p.Writer, "\n%s\n", SummaryLine(stats, p.Color))
	fmt.Fprintf(p.Writer, "%s\n", p.colorize(fmt.Sprintf("oracle cache: %d hits, %d misses", hits, misses), colorGray))
}

// SummaryLine returns a one-line verification summary, optionally colored.
func SummaryLine(s verify.Stats, color bool) string {
	parts := []string{}
	if s.Mismatched > 0 {
		part := fmt.Sprintf("%d mismatched", s.Mismatched)
		if color {
			part = colorRed + part + colorReset
		}
		parts = append(parts, part)
	}
	if s.Errors > 0 {
		part := fmt.Sprintf("%d errors", s.Errors)
		if color {
			part = colorYellow + part + colorReset
		}
		parts = append(parts, part)
	}

	summary := "all matched"
	if len(parts) > 0 {
		summary = strings.Join(parts, ", ")
	}

	matched := fmt.Sprintf("%d/%d", s.Matched, s.Total)
	if color {
		if s.Matched == s.Total {
			matched = colorGreen + matched + colorReset
		} else {
			matched = colorBold + matched + colorReset
		}
	}
	return fmt.Sprintf("%s badges match the reference renderer: %s", matched, summary)
}

func (p *Printer) tag(r verify.Result) string {
	if r.Err != nil {
		return p.colorize("ERR ", colorYellow)
	}
	return p.colorize("DIFF", colorRed)
}

func (p *Printer) colorize(text, color string) string {
	if !p.Color {
		return text
	}
	return color + text + colorReset
}

// excerpt returns the bytes of s around off, with ellipses where cut.
func excerpt(s string, off int) string {
	start := max(0, off-diffContext)
	end := min(len(s), off+diffContext)
	if start > end {
		return ""
	}
	out := s[start:end]
	if start > 0 {
		out = "…" + out
	}
	if end < len(s) {
		out += "…"
	}
	return out
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// IsCI reports whether we're running in a CI environment.
func IsCI() bool {
	return os.Getenv("CI") == "true"
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}
