// Package badge builds shields-style SVG status badges: a label box and a
// message box concatenated into one image.
package badge

import (
	"strings"

	"github.com/sofmeright/badgemaker/src/color"
	"github.com/sofmeright/badgemaker/src/identity"
	"github.com/sofmeright/badgemaker/src/layout"
	"github.com/sofmeright/badgemaker/src/metrics"
	"github.com/sofmeright/badgemaker/src/style"
)

// Badge is a finished badge. It is never modified after Build returns it.
type Badge struct {
	label        string
	message      string
	labelColor   color.Resolved
	messageColor color.Resolved
	style        style.Variant
	layout       layout.Result
	id           identity.ID
	svg          string
}

// ID returns the content-derived badge id.
func (b *Badge) ID() identity.ID { return b.id }

// SVG returns the rendered markup.
func (b *Badge) SVG() string { return b.svg }

// Label returns the normalized label text.
func (b *Badge) Label() string { return b.label }

// Message returns the normalized message text.
func (b *Badge) Message() string { return b.message }

// LabelColor returns the resolved label box color.
func (b *Badge) LabelColor() color.Resolved { return b.labelColor }

// MessageColor returns the resolved message box color.
func (b *Badge) MessageColor() color.Resolved { return b.messageColor }

// Style returns the render style.
func (b *Badge) Style() style.Variant { return b.style }

// Layout returns the computed geometry.
func (b *Badge) Layout() layout.Result { return b.layout }

// AccessibleText returns the text used for the title and aria-label.
func (b *Badge) AccessibleText() string {
	if b.label == "" {
		return b.message
	}
	return b.label + ": " + b.message
}

// Builder collects badge inputs. Colors and style may be given as raw
// tokens, which are resolved at Build, or as already-resolved values.
// A Builder is not safe for concurrent mutation; Build itself has no side
// effects and may be called repeatedly.
type Builder struct {
	label      string
	message    string
	labelColor colorInput
	color      colorInput
	style      styleInput
	metrics    *metrics.Table
}

type colorInput struct {
	token    string
	resolved *color.Resolved
}

func (c colorInput) resolve(role color.Role) color.Resolved {
	if c.resolved != nil {
		if c.resolved.Value == "" {
			return color.DefaultFor(role)
		}
		return *c.resolved
	}
	return color.Resolve(c.token, role)
}

type styleInput struct {
	token   string
	variant *style.Variant
}

func (s styleInput) resolve() (style.Variant, error) {
	if s.variant != nil {
		return *s.variant, nil
	}
	return style.Parse(s.token)
}

// NewBuilder returns a builder for a flat badge measured with 11px Verdana.
func NewBuilder() *Builder {
	return &Builder{metrics: metrics.Verdana11}
}

// Label sets the left-hand text. Empty text drops the label box.
func (b *Builder) Label(s string) *Builder {
	b.label = s
	return b
}

// Message sets the right-hand text.
func (b *Builder) Message(s string) *Builder {
	b.message = s
	return b
}

// LabelColor sets an already-resolved label box color.
func (b *Builder) LabelColor(c color.Resolved) *Builder {
	b.labelColor = colorInput{resolved: &c}
	return b
}

// LabelColorParse sets the label box color from a raw token.
func (b *Builder) LabelColorParse(token string) *Builder {
	b.labelColor = colorInput{token: token}
	return b
}

// Color sets an already-resolved message box color.
func (b *Builder) Color(c color.Resolved) *Builder {
	b.color = colorInput{resolved: &c}
	return b
}

// ColorParse sets the message box color from a raw token.
func (b *Builder) ColorParse(token string) *Builder {
	b.color = colorInput{token: token}
	return b
}

// Style sets the render style.
func (b *Builder) Style(v style.Variant) *Builder {
	b.style = styleInput{variant: &v}
	return b
}

// StyleParse sets the render style from a raw token. Unknown tokens fail
// at Build.
func (b *Builder) StyleParse(token string) *Builder {
	b.style = styleInput{token: token}
	return b
}

// Metrics replaces the glyph width table used for measurement.
func (b *Builder) Metrics(t *metrics.Table) *Builder {
	b.metrics = t
	return b
}

// Build validates the inputs and renders the badge. On error no badge is
// returned.
func (b *Builder) Build() (*Badge, error) {
	v, err := b.style.resolve()
	if err != nil {
		return nil, newUnknownStyle(err)
	}
	if !v.Valid() {
		return nil, newInternal("invalid style variant " + v.String())
	}
	if b.metrics == nil {
		return nil, newInternal("glyph width table not initialized")
	}

	label := normalizeText(b.label)
	message := normalizeText(b.message)
	labelColor := b.labelColor.resolve(color.Label)
	messageColor := b.color.resolve(color.Message)

	lay := layout.Compute(b.metrics.PreferredWidth(label), b.metrics.PreferredWidth(message), v)

	id := identity.Compute(identity.Inputs{
		Label:        label,
		Message:      message,
		LabelColor:   labelColor.Value,
		MessageColor: messageColor.Value,
		Style:        v.String(),
	})

	out := &Badge{
		label:        label,
		message:      message,
		labelColor:   labelColor,
		messageColor: messageColor,
		style:        v,
		layout:       lay,
		id:           id,
	}
	out.svg = render(out)
	return out, nil
}

// normalizeText returns s as trimmed, valid UTF-8 containing only characters
// XML 1.0 allows. Invalid bytes become U+FFFD; disallowed characters are
// dropped.
func normalizeText(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	s = strings.Map(func(r rune) rune {
		if xmlChar(r) {
			return r
		}
		return -1
	}, s)
	return strings.TrimSpace(s)
}

// xmlChar reports whether r matches the XML 1.0 Char production.
func xmlChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// StatusColor maps a status keyword to a palette color name.
func StatusColor(status string) string {
	switch status {
	case "passed", "success":
		return "brightgreen"
	case "warning":
		return "yellow"
	case "critical", "failed":
		return "red"
	default:
		return "brightgreen"
	}
}
