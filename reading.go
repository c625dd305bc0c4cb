package bthome

import (
	"github.com/nlowe/bthome/object"
)

// Reading selects one object id to advertise, optionally with an explicit value. A nil Value
// means "advertise the device's current Sensors slot for this id", the shorthand form. Both
// forms normalize to the same (id, value) pair before encoding.
type Reading struct {
	Object object.ID

	// Value overrides the device's current slot when non-nil. Accepted shapes depend on the
	// object's kind: numbers for scaled objects, integers and bools for raw objects, strings and
	// byte slices for text/raw.
	Value any
}

// Current selects the device's current value for the provided object id.
func Current(id object.ID) Reading {
	return Reading{Object: id}
}

// Currents selects the device's current value for each of the provided object ids, in order.
func Currents(ids ...object.ID) []Reading {
	out := make([]Reading, len(ids))
	for i, id := range ids {
		out[i] = Reading{Object: id}
	}

	return out
}

// Resolve normalizes readings into fully-specified (id, value) pairs: shorthand readings are
// filled from the device's Sensors slots (advancing the packet id counter when object.PacketID
// is selected) and every id is checked against the catalog. The input order is preserved
// exactly, including duplicates.
func (d *Device) Resolve(readings ...Reading) ([]Reading, error) {
	out := make([]Reading, len(readings))
	for i, r := range readings {
		desc, err := object.Lookup(r.Object)
		if err != nil {
			return nil, err
		}

		v := r.Value
		if v == nil {
			v = d.currentValue(desc.ID)
		}

		// Event helper types flatten to their wire integers here so the encoder only ever sees
		// plain integer shapes.
		if be, ok := v.(ButtonEvent); ok {
			v = uint8(be)
		}

		out[i] = Reading{Object: desc.ID, Value: v}
	}

	return out, nil
}
