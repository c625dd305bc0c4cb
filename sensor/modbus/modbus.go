// Package modbus sources readings from a Modbus device: each configured register maps to one
// catalog object, scaled into the property's engineering unit before it reaches the codec.
package modbus

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"time"

	mb "github.com/goburrow/modbus"

	"github.com/nlowe/bthome"
	"github.com/nlowe/bthome/log"
	"github.com/nlowe/bthome/object"
	"github.com/nlowe/bthome/sensor"
)

// RegisterReader is the subset of the Modbus client used by Source. The goburrow client
// satisfies it; tests substitute a fake.
type RegisterReader interface {
	ReadInputRegisters(address, quantity uint16) ([]byte, error)
	ReadHoldingRegisters(address, quantity uint16) ([]byte, error)
}

// Mapping binds one register to one catalog object.
type Mapping struct {
	// Object is the catalog id the register value is advertised as.
	Object object.ID

	// Address is the zero-based register address.
	Address uint16

	// Holding reads from the holding register table instead of input registers.
	Holding bool

	// Signed interprets the register as a two's-complement int16.
	Signed bool

	// Factor converts the raw register value to the property's engineering unit (a register
	// holding tenths of a degree uses 0.1). Zero means 1.
	Factor float64
}

// Source reads every configured mapping per call, in mapping order. Any failing register aborts
// the whole read.
type Source struct {
	client   RegisterReader
	mappings []Mapping
	close    func() error

	log *slog.Logger
}

var _ sensor.Source = (*Source)(nil)

// New constructs a Source over an existing client connection.
func New(client RegisterReader, mappings []Mapping) *Source {
	return &Source{
		client:   client,
		mappings: mappings,

		log: log.ForComponent("sensor.modbus"),
	}
}

// NewTCP connects to a Modbus TCP device and constructs a Source for it. Close the Source to
// release the connection.
func NewTCP(endpoint string, unitID byte, timeout time.Duration, mappings []Mapping) (*Source, error) {
	handler := mb.NewTCPClientHandler(endpoint)
	handler.SlaveId = unitID
	handler.Timeout = timeout

	if err := handler.Connect(); err != nil {
		return nil, fmt.Errorf("modbus: connect %s: %w", endpoint, err)
	}

	s := New(mb.NewClient(handler), mappings)
	s.close = handler.Close
	s.log = s.log.With(slog.String("endpoint", endpoint))
	return s, nil
}

func (s *Source) Read(ctx context.Context) ([]bthome.Reading, error) {
	out := make([]bthome.Reading, 0, len(s.mappings))
	for _, m := range s.mappings {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		read := s.client.ReadInputRegisters
		if m.Holding {
			read = s.client.ReadHoldingRegisters
		}

		data, err := read(m.Address, 1)
		if err != nil {
			return nil, fmt.Errorf("modbus: read register %d: %w", m.Address, err)
		}

		if len(data) < 2 {
			return nil, fmt.Errorf("modbus: short response for register %d: %d bytes", m.Address, len(data))
		}

		raw := binary.BigEndian.Uint16(data)
		v := float64(raw)
		if m.Signed {
			v = float64(int16(raw))
		}

		factor := m.Factor
		if factor == 0 {
			factor = 1
		}

		s.log.With(slog.String("object", m.Object.String()), slog.Uint64("raw", uint64(raw))).Debug("Read register")
		out = append(out, bthome.Reading{Object: m.Object, Value: v * factor})
	}

	return out, nil
}

// Close releases the underlying connection, if this Source owns one.
func (s *Source) Close() error {
	if s.close == nil {
		return nil
	}

	return s.close()
}
