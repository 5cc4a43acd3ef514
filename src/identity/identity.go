// Package identity derives the deterministic id that scopes a badge's
// internal element ids, so several badges can be inlined into one document
// without their gradient and clip definitions colliding.
//
// The id is a 64-bit xxHash and is not collision free; two different badges
// sharing an id is possible but negligibly likely.
package identity

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

const (
	gradientPrefix = "bms-"
	clipPrefix     = "bmr-"
)

// Inputs is the normalized content a badge id is derived from.
type Inputs struct {
	Label        string
	Message      string
	LabelColor   string
	MessageColor string
	Style        string
}

// ID identifies badge content.
type ID uint64

// Compute hashes the inputs. Each field is length-prefixed, so no field
// value can be confused with a field boundary.
func Compute(in Inputs) ID {
	d := xxhash.New()
	var n [binary.MaxVarintLen64]byte
	for _, field := range [...]string{in.Label, in.Message, in.LabelColor, in.MessageColor, in.Style} {
		l := binary.PutUvarint(n[:], uint64(len(field)))
		_, _ = d.Write(n[:l])
		_, _ = d.WriteString(field)
	}
	return ID(d.Sum64())
}

// String returns the id as 16 lower-case hex digits.
func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// GradientID returns the element id of the badge's gradient definition.
func (id ID) GradientID() string { return gradientPrefix + id.String() }

// ClipID returns the element id of the badge's clip path.
func (id ID) ClipID() string { return clipPrefix + id.String() }
