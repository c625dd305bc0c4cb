// Package broadcast defines the boundary between the payload codec and the radio. The codec
// produces bytes; a Broadcaster gets them on the air. Broadcast timing and repetition belong to
// the transport, never to the codec.
package broadcast

import (
	"context"
)

// Advertisement is the transport-facing view of an encoded BTHome advertisement. Transports that
// compose the advertisement themselves (BlueZ) consume the parts; raw transports can rebuild the
// full payload with the adv package.
type Advertisement struct {
	// LocalName is the advertised device name, already truncated to its wire length.
	LocalName string

	// ServiceUUID is the 16-bit UUID addressing the service data.
	ServiceUUID uint16

	// ServiceData is the service data payload after the UUID: the device information byte
	// followed by the encoded readings. See bthome.Device.ServiceData.
	ServiceData []byte
}

// Broadcaster periodically transmits the most recent advertisement handed to it.
type Broadcaster interface {
	// Advertise starts broadcasting a, or updates the payload in place if broadcasting already
	// started.
	Advertise(ctx context.Context, a Advertisement) error

	// Stop takes the advertisement off the air.
	Stop() error
}
