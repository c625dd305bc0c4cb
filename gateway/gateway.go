// Package gateway republishes packed advertisement frames over MQTT. BLE-proxy setups use this
// to hand payloads to a remote host that owns the radio, and it doubles as a tap for observing
// exactly what a device puts on the air.
package gateway

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nlowe/bthome/log"
)

// WriteOptions holds MQTT publish options. The zero value publishes at QoS 0 without retain.
type WriteOptions struct {
	QoS    byte
	Retain bool
}

// Writer is the minimum abstraction around publishing to MQTT. DialMQTT returns one backed by a
// real broker connection; tests substitute a fake.
type Writer interface {
	WriteTopic(ctx context.Context, topic string, options WriteOptions, payload []byte) error
}

// Frame is the JSON body published for each advertisement.
type Frame struct {
	// Device is the advertised local name.
	Device string `json:"device"`

	// Payload is the full advertisement, upper-case hex.
	Payload string `json:"payload"`

	// Length is the advertisement length in bytes.
	Length int `json:"length"`

	// Time is when the frame was packed, UTC.
	Time time.Time `json:"time"`
}

// Publisher writes advertisement frames to topics under a fixed prefix.
type Publisher struct {
	w      Writer
	prefix string
	opts   WriteOptions

	now func() time.Time

	log *slog.Logger
}

// NewPublisher constructs a Publisher writing below the provided topic prefix with the provided
// options.
func NewPublisher(w Writer, prefix string, opts WriteOptions) *Publisher {
	return &Publisher{
		w:      w,
		prefix: strings.Trim(prefix, "/"),
		opts:   opts,

		now: time.Now,

		log: log.ForComponent("gateway"),
	}
}

// Publish writes the advertisement for the named device to <prefix>/<device>/advertisement.
func (p *Publisher) Publish(ctx context.Context, device string, advertisement []byte) error {
	frame := Frame{
		Device:  device,
		Payload: strings.ToUpper(hex.EncodeToString(advertisement)),
		Length:  len(advertisement),
		Time:    p.now().UTC(),
	}

	body, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("gateway: marshal frame: %w", err)
	}

	topic := p.topicFor(device)
	p.log.With(slog.String("topic", topic), slog.Int("length", frame.Length)).Debug("Publishing advertisement frame")

	return p.w.WriteTopic(ctx, topic, p.opts, body)
}

func (p *Publisher) topicFor(device string) string {
	parts := make([]string, 0, 3)
	if p.prefix != "" {
		parts = append(parts, p.prefix)
	}

	return strings.Join(append(parts, strings.Trim(device, "/"), "advertisement"), "/")
}
