// Package adv assembles Bluetooth LE advertising payloads from AD structures, the self-describing
// [length][type][payload] fields that make up a legacy advertisement. Length bytes are always
// computed from the payload, never hand-specified, and the assembled advertisement is checked
// against the 31-byte ceiling imposed by the radio.
package adv

import (
	"errors"
	"fmt"
	"unicode"
)

const (
	// MaxAdvertisementLength is the hard payload ceiling for a legacy BLE advertisement. An
	// advertisement that would exceed it is rejected, never clamped.
	MaxAdvertisementLength = 31

	// MaxLocalNameLength is the longest encoded device name that still leaves room for a useful
	// service-data structure. Longer names are silently truncated.
	MaxLocalNameLength = 10

	// TypeFlags is the AD type for the advertising flags structure.
	TypeFlags byte = 0x01
	// TypeCompleteLocalName is the AD type for the complete device name structure.
	TypeCompleteLocalName byte = 0x09
	// TypeServiceData16 is the AD type for service data addressed by a 16-bit UUID.
	TypeServiceData16 byte = 0x16
)

var (
	// ErrEmptyName is the error returned by LocalName for an empty device name.
	ErrEmptyName = errors.New("device name is empty")

	// ErrNonASCII is the error returned by LocalName for names that cannot be represented in a
	// single-byte encoding.
	ErrNonASCII = errors.New("device name is not ASCII")

	// ErrTooLong is the error returned by Pack when the assembled advertisement exceeds
	// MaxAdvertisementLength.
	ErrTooLong = errors.New("advertisement exceeds maximum length")
)

// flags is the fixed flags structure opening every advertisement: LE General Discoverable mode,
// BR/EDR not supported.
var flags = [3]byte{0x02, TypeFlags, 0x06}

// Flags returns the fixed 3-byte flags field.
func Flags() []byte {
	f := flags
	return f[:]
}

// Structure wraps payload in an AD structure: a length byte covering the type indicator and the
// payload, the AD type, then the payload itself.
func Structure(adType byte, payload []byte) []byte {
	out := make([]byte, 0, len(payload)+2)
	out = append(out, byte(len(payload)+1), adType)
	return append(out, payload...)
}

// TruncateName returns name cut to MaxLocalNameLength bytes. Names at or under the limit are
// returned unchanged.
func TruncateName(name string) string {
	if len(name) > MaxLocalNameLength {
		return name[:MaxLocalNameLength]
	}

	return name
}

// LocalName encodes the device name as a complete-local-name AD structure. The name must be
// non-empty ASCII; names longer than MaxLocalNameLength are silently truncated to exactly
// MaxLocalNameLength bytes.
func LocalName(name string) ([]byte, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	for i := 0; i < len(name); i++ {
		if name[i] > unicode.MaxASCII {
			return nil, fmt.Errorf("%w: %q", ErrNonASCII, name)
		}
	}

	return Structure(TypeCompleteLocalName, []byte(TruncateName(name))), nil
}

// Pack assembles the final advertisement from the fixed flags field, the encoded name field, and
// the encoded service-data field, in that order. If the total exceeds MaxAdvertisementLength the
// error reports the computed length and no bytes are returned.
func Pack(nameField, serviceDataField []byte) ([]byte, error) {
	total := len(flags) + len(nameField) + len(serviceDataField)
	if total > MaxAdvertisementLength {
		return nil, fmt.Errorf("%w: %d bytes, want at most %d", ErrTooLong, total, MaxAdvertisementLength)
	}

	out := make([]byte, 0, total)
	out = append(out, flags[:]...)
	out = append(out, nameField...)
	return append(out, serviceDataField...), nil
}
