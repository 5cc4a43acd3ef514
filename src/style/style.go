// Package style defines the closed set of badge render styles.
package style

import (
	"errors"
	"fmt"
	"strings"
)

// Variant is a badge rendering style.
type Variant int

const (
	Flat Variant = iota
	FlatSquare
	Plastic
)

var names = [...]string{
	Flat:       "flat",
	FlatSquare: "flat-square",
	Plastic:    "plastic",
}

// tokens maps accepted (lower-cased) spellings to variants.
var tokens = map[string]Variant{
	"":            Flat,
	"flat":        Flat,
	"flat-square": FlatSquare,
	"flatsquare":  FlatSquare,
	"flat_square": FlatSquare,
	"plastic":     Plastic,
}

// ErrUnknownStyle is matched by every UnknownStyleError.
var ErrUnknownStyle = errors.New("unknown badge style")

// UnknownStyleError reports a style token that names no variant.
type UnknownStyleError struct {
	Token string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown badge style %q (available: %s)", e.Token, strings.Join(Names(), ", "))
}

// Is makes errors.Is(err, ErrUnknownStyle) hold.
func (e *UnknownStyleError) Is(target error) bool {
	return target == ErrUnknownStyle
}

// Parse resolves a style token. Matching ignores case and surrounding
// whitespace; an empty token selects Flat.
func Parse(token string) (Variant, error) {
	v, ok := tokens[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return 0, &UnknownStyleError{Token: token}
	}
	return v, nil
}

// String returns the canonical token.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(names) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return names[v]
}

// Valid reports whether v is one of the defined variants.
func (v Variant) Valid() bool {
	return v >= 0 && int(v) < len(names)
}

// Variants returns every variant in declaration order.
func Variants() []Variant {
	return []Variant{Flat, FlatSquare, Plastic}
}

// Names returns the canonical tokens of every variant.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("invalid style variant %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
