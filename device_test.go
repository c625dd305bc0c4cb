package bthome

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/bthome/adv"
	"github.com/nlowe/bthome/object"
)

// The worked example from https://bthome.io/format/: name "DIY-sensor", temperature 25.00 °C,
// humidity 50.55 %.
const referenceAdvertisement = "0201060b094449592d73656e736f720a16d2fc4002c40903bf13"

func TestPackAdvertisement(t *testing.T) {
	t.Run("ReferencePayload", func(t *testing.T) {
		d := New("DIY-sensor", false)

		got, err := d.PackAdvertisement(
			Reading{Object: object.Temperature, Value: 25.00},
			Reading{Object: object.Humidity, Value: 50.55},
		)

		require.NoError(t, err)
		assert.Equal(t, referenceAdvertisement, hex.EncodeToString(got))
	})

	t.Run("FromSensorSlots", func(t *testing.T) {
		d := New("DIY-sensor", false)
		d.Sensors.Temperature = 25.00
		d.Sensors.Humidity = 50.55

		got, err := d.PackAdvertisement(Currents(object.Temperature, object.Humidity)...)

		require.NoError(t, err)
		assert.Equal(t, referenceAdvertisement, hex.EncodeToString(got))
	})

	t.Run("PreservesCallerOrder", func(t *testing.T) {
		d := New("btn", true)

		ab, err := d.PackAdvertisement(
			Reading{Object: object.Button, Value: ButtonPress},
			Reading{Object: object.Button, Value: ButtonDoublePress},
		)
		require.NoError(t, err)

		ba, err := d.PackAdvertisement(
			Reading{Object: object.Button, Value: ButtonDoublePress},
			Reading{Object: object.Button, Value: ButtonPress},
		)
		require.NoError(t, err)

		assert.Contains(t, hex.EncodeToString(ab), "3a013a02")
		assert.Contains(t, hex.EncodeToString(ba), "3a023a01")
	})

	t.Run("TruncatesLongName", func(t *testing.T) {
		d := New("MySuperSensor", false)

		got, err := d.PackAdvertisement(Reading{Object: object.Battery, Value: 93})

		require.NoError(t, err)
		assert.Equal(t, "MySuperSen", d.LocalName())
		assert.Contains(t, hex.EncodeToString(got), hex.EncodeToString([]byte("MySuperSen")))
	})

	t.Run("TooLong", func(t *testing.T) {
		d := New("DIY-Sensor", false)

		got, err := d.PackAdvertisement(
			Reading{Object: object.Battery, Value: 93},
			Reading{Object: object.Temperature, Value: 25.00},
			Reading{Object: object.Humidity, Value: 50.55},
			Reading{Object: object.Pressure, Value: 1008.83},
		)

		require.ErrorIs(t, err, adv.ErrTooLong)
		require.ErrorContains(t, err, "32 bytes")
		assert.Nil(t, got)
	})

	t.Run("EmptyName", func(t *testing.T) {
		d := New("", false)

		_, err := d.PackAdvertisement(Reading{Object: object.Battery, Value: 93})

		require.ErrorIs(t, err, adv.ErrEmptyName)
	})

	t.Run("UnknownObject", func(t *testing.T) {
		d := New("DIY-sensor", false)

		_, err := d.PackAdvertisement(Reading{Object: 0x99, Value: 1})

		require.ErrorIs(t, err, object.ErrUnknown)
	})

	t.Run("InvalidValueAbortsWholePack", func(t *testing.T) {
		d := New("DIY-sensor", false)

		got, err := d.PackAdvertisement(
			Reading{Object: object.Temperature, Value: 25.00},
			Reading{Object: object.Battery, Value: 300},
		)

		require.ErrorIs(t, err, object.ErrOutOfRange)
		assert.Nil(t, got)
	})
}

func TestServiceData(t *testing.T) {
	t.Run("DeviceInfoByte", func(t *testing.T) {
		periodic := New("DIY-sensor", false)
		triggered := New("DIY-sensor", true)

		p, err := periodic.ServiceData(Reading{Object: object.Temperature, Value: 25.00})
		require.NoError(t, err)

		tr, err := triggered.ServiceData(Reading{Object: object.Temperature, Value: 25.00})
		require.NoError(t, err)

		assert.EqualValues(t, 0x40, p[0])
		assert.EqualValues(t, 0x44, tr[0])
	})

	t.Run("Payload", func(t *testing.T) {
		d := New("DIY-sensor", false)

		got, err := d.ServiceData(
			Reading{Object: object.Temperature, Value: 25.00},
			Reading{Object: object.Humidity, Value: 50.55},
		)

		require.NoError(t, err)
		assert.Equal(t, "4002c40903bf13", hex.EncodeToString(got))
	})
}

func TestPacketID(t *testing.T) {
	t.Run("IncrementsPerShorthandUse", func(t *testing.T) {
		d := New("DIY-sensor", false)

		first, err := d.ServiceData(Current(object.PacketID))
		require.NoError(t, err)

		second, err := d.ServiceData(Current(object.PacketID))
		require.NoError(t, err)

		assert.Equal(t, "400001", hex.EncodeToString(first))
		assert.Equal(t, "400002", hex.EncodeToString(second))
	})

	t.Run("ExplicitValueDoesNotAdvanceCounter", func(t *testing.T) {
		d := New("DIY-sensor", false)

		explicit, err := d.ServiceData(Reading{Object: object.PacketID, Value: 42})
		require.NoError(t, err)
		assert.Equal(t, "40002a", hex.EncodeToString(explicit))

		next, err := d.ServiceData(Current(object.PacketID))
		require.NoError(t, err)
		assert.Equal(t, "400001", hex.EncodeToString(next))
	})

	t.Run("ResolveAdvancesExactlyOnce", func(t *testing.T) {
		d := New("DIY-sensor", false)

		resolved, err := d.Resolve(Current(object.PacketID))
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.EqualValues(t, uint8(1), resolved[0].Value)

		// Encoding the resolved readings twice must reuse the captured value.
		a, err := d.ServiceData(resolved...)
		require.NoError(t, err)
		b, err := d.ServiceData(resolved...)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

// Every catalog id must resolve to a Sensors slot, so a zero-valued device can advertise any
// object it knows about.
func TestCurrentValueCoversCatalog(t *testing.T) {
	d := New("DIY-sensor", false)

	for _, id := range object.IDs() {
		t.Run(id.String(), func(t *testing.T) {
			_, err := d.ServiceData(Current(id))

			require.NoError(t, err)
		})
	}
}

func TestDimmerSteps(t *testing.T) {
	for _, tt := range []struct {
		name  string
		steps int
		want  uint16
	}{
		{name: "none", steps: 0, want: 0x0000},
		{name: "right three", steps: 3, want: 0x0302},
		{name: "left three", steps: -3, want: 0x0301},
		{name: "right capped", steps: 1000, want: 0xFF02},
		{name: "left capped", steps: -1000, want: 0xFF01},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DimmerSteps(tt.steps))
		})
	}
}

func TestResolveFlattensButtonEvents(t *testing.T) {
	d := New("btn", true)
	d.Sensors.Button = ButtonLongPress

	resolved, err := d.Resolve(Current(object.Button), Reading{Object: object.Button, Value: ButtonHoldPress})

	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, uint8(0x04), resolved[0].Value)
	assert.Equal(t, uint8(0x80), resolved[1].Value)
}
