package modbus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/bthome"
	"github.com/nlowe/bthome/object"
)

type fakeRegisters struct {
	input   map[uint16][]byte
	holding map[uint16][]byte

	err error
}

func (f *fakeRegisters) ReadInputRegisters(address, _ uint16) ([]byte, error) {
	return f.input[address], f.err
}

func (f *fakeRegisters) ReadHoldingRegisters(address, _ uint16) ([]byte, error) {
	return f.holding[address], f.err
}

func TestRead(t *testing.T) {
	client := &fakeRegisters{
		input: map[uint16][]byte{
			// 2500 big-endian, scaled by 0.01 to 25.00 °C.
			0x0000: {0x09, 0xC4},
			// -50 as int16, scaled by 0.1 to -5.0 °C.
			0x0001: {0xFF, 0xCE},
		},
		holding: map[uint16][]byte{
			0x0010: {0x00, 0x5D},
		},
	}

	src := New(client, []Mapping{
		{Object: object.Temperature, Address: 0x0000, Factor: 0.01},
		{Object: object.Dewpoint, Address: 0x0001, Signed: true, Factor: 0.1},
		{Object: object.Battery, Address: 0x0010, Holding: true},
	})

	got, err := src.Read(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []bthome.Reading{
		{Object: object.Temperature, Value: 25.0},
		{Object: object.Dewpoint, Value: -5.0},
		{Object: object.Battery, Value: 93.0},
	}, got)
}

func TestReadErrors(t *testing.T) {
	t.Run("RegisterError", func(t *testing.T) {
		wantErr := errors.New("connection reset")
		src := New(&fakeRegisters{err: wantErr}, []Mapping{{Object: object.Temperature, Address: 7}})

		got, err := src.Read(context.Background())

		require.ErrorIs(t, err, wantErr)
		require.ErrorContains(t, err, "register 7")
		assert.Nil(t, got)
	})

	t.Run("ShortResponse", func(t *testing.T) {
		client := &fakeRegisters{input: map[uint16][]byte{0: {0x09}}}
		src := New(client, []Mapping{{Object: object.Temperature, Address: 0}})

		_, err := src.Read(context.Background())

		require.ErrorContains(t, err, "short response")
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		src := New(&fakeRegisters{}, []Mapping{{Object: object.Temperature, Address: 0}})

		_, err := src.Read(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClose(t *testing.T) {
	t.Run("NoConnection", func(t *testing.T) {
		src := New(&fakeRegisters{}, nil)

		require.NoError(t, src.Close())
	})

	t.Run("OwnedConnection", func(t *testing.T) {
		closed := false
		src := New(&fakeRegisters{}, nil)
		src.close = func() error {
			closed = true
			return nil
		}

		require.NoError(t, src.Close())
		assert.True(t, closed)
	})
}
