// Package bluez broadcasts BTHome advertisements through the BlueZ daemon on Linux. It exports a
// LEAdvertisement1 object on the system bus and registers it with the adapter's advertising
// manager; BlueZ owns the radio schedule and keeps the payload on the air until Stop.
package bluez

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"

	"github.com/nlowe/bthome/broadcast"
	"github.com/nlowe/bthome/log"
)

const (
	// DefaultAdapter is the BlueZ id of the first Bluetooth controller.
	DefaultAdapter = "hci0"

	bluezService          = "org.bluez"
	adapterInterface      = "org.bluez.Adapter1"
	advertisingManager    = "org.bluez.LEAdvertisingManager1"
	advertisementIface    = "org.bluez.LEAdvertisement1"
	dbusErrUnknownObject  = "org.freedesktop.DBus.Error.UnknownObject"
	dbusErrAlreadyExists  = "org.bluez.Error.AlreadyExists"
	dbusErrDoesNotExist   = "org.bluez.Error.DoesNotExist"
	baseUUIDFormat        = "0000%04x-0000-1000-8000-00805f9b34fb"
	advertisementPathRoot = "/com/nlowe/bthome/advertisement"
)

var errAlreadyStarted = errors.New("bluez: advertisement is already started")

// advertisementID distinguishes the object paths of advertisements registered from the same
// process.
var advertisementID uint64

// Broadcaster implements broadcast.Broadcaster on top of a BlueZ adapter. The zero value is not
// usable; construct one with New. Broadcaster is not safe for concurrent use.
type Broadcaster struct {
	adapterID string

	conn    *dbus.Conn
	adapter dbus.BusObject

	path       dbus.ObjectPath
	props      *prop.Properties
	registered bool

	log *slog.Logger
}

var _ broadcast.Broadcaster = (*Broadcaster)(nil)

// New constructs a Broadcaster for the named adapter ("hci0", "hci1", ...). An empty id selects
// DefaultAdapter. The system bus connection is established lazily on the first Advertise call.
func New(adapterID string) *Broadcaster {
	if adapterID == "" {
		adapterID = DefaultAdapter
	}

	return &Broadcaster{
		adapterID: adapterID,
		log:       log.ForComponent("broadcast.bluez").With(slog.String("adapter", adapterID)),
	}
}

// enable connects to the system bus and probes the adapter. Probing the address property is how
// we distinguish a missing controller from other failures.
func (b *Broadcaster) enable() error {
	conn, err := dbus.SystemBus()
	if err != nil {
		return fmt.Errorf("bluez: connect to system bus: %w", err)
	}

	adapter := conn.Object(bluezService, dbus.ObjectPath("/org/bluez/"+b.adapterID))
	if _, err := adapter.GetProperty(adapterInterface + ".Address"); err != nil {
		var dbusErr dbus.Error
		if errors.As(err, &dbusErr) && dbusErr.Name == dbusErrUnknownObject {
			return fmt.Errorf("bluez: adapter %s does not exist", b.adapterID)
		}

		return fmt.Errorf("bluez: probe adapter %s: %w", b.adapterID, err)
	}

	b.conn = conn
	b.adapter = adapter
	return nil
}

// Advertise registers the advertisement with BlueZ on the first call, and updates the exported
// ServiceData property in place on subsequent calls so the new payload goes on the air without
// re-registering.
func (b *Broadcaster) Advertise(ctx context.Context, a broadcast.Advertisement) error {
	if b.conn == nil {
		if err := b.enable(); err != nil {
			return err
		}
	}

	serviceData := map[string]any{
		uuid16String(a.ServiceUUID): a.ServiceData,
	}

	if b.registered {
		if derr := b.props.Set(advertisementIface, "ServiceData", dbus.MakeVariant(serviceData)); derr != nil {
			return fmt.Errorf("bluez: update service data: %w", derr)
		}

		b.log.With(slog.Int("bytes", len(a.ServiceData))).Debug("Updated advertisement payload")
		return nil
	}

	id := atomic.AddUint64(&advertisementID, 1)
	b.path = dbus.ObjectPath(fmt.Sprintf("%s%d", advertisementPathRoot, id))

	propsSpec := map[string]map[string]*prop.Prop{
		advertisementIface: {
			"Type":        {Value: "broadcast"},
			"LocalName":   {Value: a.LocalName},
			"ServiceData": {Value: serviceData, Writable: true},
			"Timeout":     {Value: uint16(0)},
		},
	}

	props, err := prop.Export(b.conn, b.path, propsSpec)
	if err != nil {
		return fmt.Errorf("bluez: export advertisement: %w", err)
	}
	b.props = props

	call := b.adapter.CallWithContext(ctx, advertisingManager+".RegisterAdvertisement", 0, b.path, map[string]any{})
	if call.Err != nil {
		var dbusErr dbus.Error
		if errors.As(call.Err, &dbusErr) && dbusErr.Name == dbusErrAlreadyExists {
			return errAlreadyStarted
		}

		return fmt.Errorf("bluez: register advertisement: %w", call.Err)
	}

	b.registered = true
	b.log.With(slog.String("name", a.LocalName), slog.Int("bytes", len(a.ServiceData))).Info("Advertisement registered")
	return nil
}

// Stop unregisters the advertisement, taking it off the air. Stopping an advertisement that was
// never registered is a no-op.
func (b *Broadcaster) Stop() error {
	if b.conn == nil || !b.registered {
		return nil
	}

	call := b.adapter.Call(advertisingManager+".UnregisterAdvertisement", 0, b.path)
	if call.Err != nil {
		var dbusErr dbus.Error
		if errors.As(call.Err, &dbusErr) && dbusErr.Name == dbusErrDoesNotExist {
			b.registered = false
			return nil
		}

		return fmt.Errorf("bluez: unregister advertisement: %w", call.Err)
	}

	b.registered = false
	b.log.Info("Advertisement unregistered")
	return nil
}

// uuid16String expands a 16-bit UUID to the full 128-bit textual form BlueZ expects, using the
// Bluetooth base UUID.
func uuid16String(uuid uint16) string {
	return fmt.Sprintf(baseUUIDFormat, uuid)
}
