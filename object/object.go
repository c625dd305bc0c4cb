package object

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrUnknown is the error returned by Lookup for object ids that are not part of the catalog.
var ErrUnknown = errors.New("unknown object id")

// ID is a one-byte BTHome v2 object id. It identifies both the measured property and the wire
// representation (width, signedness, and fixed-point factor) of a single reading.
type ID byte

// Kind describes how a value for a given object id is converted to its wire bytes.
type Kind uint8

const (
	// KindScaled values are numeric. They are multiplied by the descriptor's Factor, rounded to
	// the nearest integer (ties away from zero), and encoded as a little-endian fixed-width
	// integer.
	KindScaled Kind = iota

	// KindRaw values are enums, booleans, and event codes. They are encoded as-is with no
	// scaling, only width-fitted.
	KindRaw

	// KindBytes values are variable-length text or raw byte strings, encoded with a one-byte
	// length prefix.
	KindBytes
)

// Descriptor is the encoding rule for a single object id. Descriptors are immutable; the catalog
// is fixed at compile time for the supported BTHome revision.
type Descriptor struct {
	ID       ID
	Property string
	Kind     Kind

	// Width is the encoded value size in bytes. Zero for KindBytes, which is length-prefixed
	// instead of fixed-width.
	Width  int
	Signed bool

	// Factor is the fixed-point multiplier applied to KindScaled values before encoding. A
	// receiver divides by the same factor, so precision is 1/Factor.
	Factor int64
}

func (id ID) String() string {
	if d, ok := catalog[id]; ok {
		return fmt.Sprintf("%s (0x%02X)", d.Property, byte(id))
	}

	return fmt.Sprintf("0x%02X", byte(id))
}

// Lookup returns the Descriptor for the provided id, or an error wrapping ErrUnknown if the id is
// not part of the catalog.
func Lookup(id ID) (Descriptor, error) {
	d, ok := catalog[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: 0x%02X", ErrUnknown, byte(id))
	}

	return d, nil
}

// IDs returns every object id in the catalog in ascending order.
func IDs() []ID {
	out := make([]ID, 0, len(catalog))
	for id := range catalog {
		out = append(out, id)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseID resolves a catalog id from its textual form. Both numeric ids ("0x02", "2") and
// property names ("temperature") are accepted. Properties with more than one representation
// resolve to the lowest id carrying that property.
func ParseID(s string) (ID, error) {
	if id, ok := byProperty[s]; ok {
		return id, nil
	}

	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknown, s)
	}

	if _, ok := catalog[ID(n)]; !ok {
		return 0, fmt.Errorf("%w: 0x%02X", ErrUnknown, byte(n))
	}

	return ID(n), nil
}

var byProperty = map[string]ID{}

func init() {
	for id, d := range catalog {
		if prev, ok := byProperty[d.Property]; !ok || id < prev {
			byProperty[d.Property] = id
		}
	}
}
