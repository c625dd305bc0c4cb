package object

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLookup(t *testing.T, id ID) Descriptor {
	t.Helper()

	d, err := Lookup(id)
	require.NoError(t, err)
	return d
}

func TestEncode(t *testing.T) {
	for _, tt := range []struct {
		name string
		id   ID
		v    any
		want string
	}{
		// Values from the worked example at https://bthome.io/format/
		{name: "temperature 25.00", id: Temperature, v: 25.00, want: "c409"},
		{name: "humidity 50.55", id: Humidity, v: 50.55, want: "bf13"},

		{name: "battery percent", id: Battery, v: 93, want: "5d"},
		{name: "pressure hPa", id: Pressure, v: 1008.83, want: "138a01"},
		{name: "voltage millivolt precision", id: Voltage, v: 3.074, want: "020c"},
		{name: "negative temperature", id: Temperature, v: -7.35, want: "21fd"},
		{name: "energy kWh", id: Energy, v: 1234.567, want: "87d612"},
		{name: "count32", id: Count32, v: 305419896, want: "78563412"},
		{name: "timestamp uint48", id: Timestamp, v: int64(1700000000), want: "00f153650000"},

		{name: "boolean true", id: PowerOn, v: true, want: "01"},
		{name: "boolean false", id: Motion, v: false, want: "00"},
		{name: "button press", id: Button, v: uint8(0x01), want: "01"},
		{name: "dimmer rotate left 3 steps", id: Dimmer, v: uint16(0x0301), want: "0103"},

		{name: "text", id: Text, v: "abc", want: "03616263"},
		{name: "raw bytes", id: Raw, v: []byte{0xDE, 0xAD}, want: "02dead"},
		{name: "empty text", id: Text, v: "", want: "00"},

		// Rounding is to nearest, ties away from zero.
		{name: "rounds half up", id: Battery, v: 0.5, want: "01"},
		{name: "rounds half away from zero when negative", id: CountSigned8, v: -0.5, want: "ff"},
		{name: "integer value for scaled object", id: Temperature, v: 25, want: "c409"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			d := mustLookup(t, tt.id)

			got, err := Encode(d, tt.v)

			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(got))
		})
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	for _, tt := range []struct {
		name string
		id   ID
		v    any
	}{
		{name: "unsigned overflow", id: Battery, v: 256},
		{name: "unsigned underflow", id: Battery, v: -1},
		{name: "signed overflow", id: Temperature, v: 400.0},
		{name: "signed underflow", id: Temperature, v: -400.0},
		{name: "uint24 overflow", id: Pressure, v: 167772.16},
		{name: "raw width overflow", id: Button, v: 300},
		{name: "raw negative for unsigned", id: Button, v: -1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			d := mustLookup(t, tt.id)

			got, err := Encode(d, tt.v)

			require.ErrorIs(t, err, ErrOutOfRange)
			assert.Nil(t, got)
		})
	}
}

// The 3-byte width has no native machine type: it is encoded by dropping the high byte of a wider
// integer. The dropped byte must always be sign extension (or zero), so the full signed and
// unsigned 24-bit ranges round-trip and anything beyond them is rejected rather than truncated.
func TestEncodeWidth24Boundaries(t *testing.T) {
	s24 := Descriptor{ID: 0x7F, Property: "test_s24", Kind: KindScaled, Width: 3, Signed: true, Factor: 1}
	u24 := mustLookup(t, Pressure) // uint24, factor 100

	t.Run("signed minimum", func(t *testing.T) {
		got, err := Encode(s24, -8388608)

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "000080", hex.EncodeToString(got))
	})

	t.Run("signed maximum", func(t *testing.T) {
		got, err := Encode(s24, 8388607)

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "ffff7f", hex.EncodeToString(got))
	})

	t.Run("signed just out of range", func(t *testing.T) {
		_, err := Encode(s24, -8388609)
		require.ErrorIs(t, err, ErrOutOfRange)

		_, err = Encode(s24, 8388608)
		require.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("unsigned maximum", func(t *testing.T) {
		got, err := Encode(u24, 167772.15)

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "ffffff", hex.EncodeToString(got))
	})

	t.Run("unsigned minimum", func(t *testing.T) {
		got, err := Encode(u24, 0)

		require.NoError(t, err)
		assert.Equal(t, "000000", hex.EncodeToString(got))
	})
}

func TestEncodeTypeMismatch(t *testing.T) {
	for _, tt := range []struct {
		name string
		id   ID
		v    any
	}{
		{name: "string for scaled", id: Temperature, v: "hot"},
		{name: "bool for scaled", id: Temperature, v: true},
		{name: "nil for scaled", id: Temperature, v: nil},
		{name: "float for raw", id: Button, v: 1.5},
		{name: "string for raw", id: PowerOn, v: "on"},
		{name: "int for bytes", id: Text, v: 42},
	} {
		t.Run(tt.name, func(t *testing.T) {
			d := mustLookup(t, tt.id)

			got, err := Encode(d, tt.v)

			require.ErrorIs(t, err, ErrTypeMismatch)
			assert.Nil(t, got)
		})
	}
}

func TestEncodeBytesTooLong(t *testing.T) {
	d := mustLookup(t, Raw)

	_, err := Encode(d, make([]byte, 256))

	require.ErrorIs(t, err, ErrOutOfRange)
}
