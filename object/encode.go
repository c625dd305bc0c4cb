package object

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTypeMismatch is the error returned by Encode when the shape of the value does not match
	// the descriptor's Kind, for example a string for a scaled-numeric object.
	ErrTypeMismatch = errors.New("value type mismatch")

	// ErrOutOfRange is the error returned by Encode when the (scaled) value does not fit the
	// descriptor's width and signedness.
	ErrOutOfRange = errors.New("value out of range")
)

// Encode converts a single reading value to its wire representation per the provided Descriptor.
// Fixed-width kinds produce exactly Descriptor.Width little-endian bytes; KindBytes produces a
// one-byte length followed by the raw bytes. Encode is a pure transform: it either returns the
// full encoding or an error, never partial bytes.
func Encode(d Descriptor, v any) ([]byte, error) {
	switch d.Kind {
	case KindScaled:
		f, ok := asFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s wants a number, got %T", ErrTypeMismatch, d.ID, v)
		}

		scaled := math.Round(f * float64(d.Factor))
		lo, hi := d.bounds()
		if scaled < float64(lo) || scaled > float64(hi) {
			return nil, fmt.Errorf("%w: %s: %v scales to %.0f, want %d..%d", ErrOutOfRange, d.ID, v, scaled, lo, hi)
		}

		return packLE(int64(scaled), d.Width), nil
	case KindRaw:
		n, ok := asInt(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s wants an integer or bool, got %T", ErrTypeMismatch, d.ID, v)
		}

		lo, hi := d.bounds()
		if n < lo || n > hi {
			return nil, fmt.Errorf("%w: %s: %d, want %d..%d", ErrOutOfRange, d.ID, n, lo, hi)
		}

		return packLE(n, d.Width), nil
	case KindBytes:
		b, ok := asBytes(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s wants a string or byte slice, got %T", ErrTypeMismatch, d.ID, v)
		}

		if len(b) > math.MaxUint8 {
			return nil, fmt.Errorf("%w: %s: %d bytes, want at most %d", ErrOutOfRange, d.ID, len(b), math.MaxUint8)
		}

		out := make([]byte, 0, len(b)+1)
		out = append(out, byte(len(b)))
		return append(out, b...), nil
	default:
		return nil, fmt.Errorf("%w: %s has unsupported kind %d", ErrTypeMismatch, d.ID, d.Kind)
	}
}

// bounds returns the inclusive range of integers representable by this descriptor's width and
// signedness. Widths in the catalog never exceed 6 bytes, so int64 math is exact.
func (d Descriptor) bounds() (int64, int64) {
	bits := uint(8 * d.Width)
	if d.Signed {
		return -(int64(1) << (bits - 1)), int64(1)<<(bits-1) - 1
	}

	return 0, int64(1)<<bits - 1
}

// packLE encodes the low `width` bytes of v little-endian. The caller has already range-checked
// v, so the discarded high bytes are all sign extension (or all zero), never data.
func packLE(v int64, width int) []byte {
	out := make([]byte, width)
	u := uint64(v)
	for i := range out {
		out[i] = byte(u >> (8 * i))
	}

	return out
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func asBytes(v any) ([]byte, bool) {
	switch b := v.(type) {
	case []byte:
		return b, true
	case string:
		return []byte(b), true
	default:
		return nil, false
	}
}
