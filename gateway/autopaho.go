package gateway

import (
	"context"
	"fmt"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"

	"github.com/nlowe/bthome/log"
)

// pahoWriter adapts an autopaho connection manager to the Writer interface. The connection
// manager reconnects on its own; publishes block until the connection is up or the context ends.
type pahoWriter struct {
	conn *autopaho.ConnectionManager
}

var _ Writer = (*pahoWriter)(nil)

// DialMQTT connects to the broker described by config and returns a Writer plus a disconnect
// function. The returned Writer is safe for concurrent use.
func DialMQTT(ctx context.Context, config autopaho.ClientConfig) (Writer, func(ctx context.Context) error, error) {
	logger := log.ForComponent("gateway.mqtt")

	logger.Info("Connecting to mqtt broker")
	conn, err := autopaho.NewConnection(ctx, config)
	if err != nil {
		return nil, nil, err
	}

	if err := conn.AwaitConnection(ctx); err != nil {
		return nil, nil, fmt.Errorf("gateway: wait for mqtt connection: %w", err)
	}

	logger.Debug("Connected to mqtt broker")
	return &pahoWriter{conn: conn}, conn.Disconnect, nil
}

func (w *pahoWriter) WriteTopic(ctx context.Context, topic string, options WriteOptions, payload []byte) error {
	_, err := w.conn.Publish(ctx, &paho.Publish{
		QoS:     options.QoS,
		Retain:  options.Retain,
		Topic:   topic,
		Payload: payload,
	})

	return err
}
