// Package sensor sources readings for a bthome.Device from the outside world. The codec never
// polls anything itself; a Source is how a daemon feeds it.
package sensor

import (
	"context"

	"github.com/nlowe/bthome"
)

// Source supplies the current readings, in the order they should be advertised.
type Source interface {
	Read(ctx context.Context) ([]bthome.Reading, error)
}

// Static is a Source that always returns the same readings. Useful for tests and for devices
// whose slots are maintained elsewhere.
type Static []bthome.Reading

var _ Source = Static(nil)

func (s Static) Read(context.Context) ([]bthome.Reading, error) {
	out := make([]bthome.Reading, len(s))
	copy(out, s)
	return out, nil
}
