package bthome

import (
	"github.com/nlowe/bthome/adv"
)

// ServiceUUID is the 16-bit UUID assigned to the BTHome service data format.
const ServiceUUID uint16 = 0xFCD2

const (
	// deviceInfoVersion2 sets bits 5-7 of the device information byte to format version 2.
	deviceInfoVersion2 byte = 0x40
	// deviceInfoTriggerBased is bit 2 of the device information byte. Set for devices that
	// advertise on events rather than at a regular interval.
	deviceInfoTriggerBased byte = 0x04
)

// Device is a BTHome device identity plus the current value of every sensor property it can
// advertise. Construct one with New, update Sensors fields between packs, and call
// PackAdvertisement to encode.
//
// A Device is not safe for concurrent use: the caller must not mutate Sensors while a pack call
// is in progress. Distinct Devices are independent.
type Device struct {
	name         string
	triggerBased bool
	packetID     uint8

	// Sensors holds the value advertised for each catalog property when a Reading does not
	// supply one explicitly.
	Sensors Sensors
}

// New constructs a Device advertising under the provided name. Trigger-based devices advertise
// irregularly in response to events (a button, an opening) rather than on a fixed interval, and
// announce that to receivers via a flag bit in the service data.
//
// The name is validated at pack time: it must be non-empty ASCII and is silently truncated to
// adv.MaxLocalNameLength bytes on the wire.
func New(name string, triggerBased bool) *Device {
	return &Device{name: name, triggerBased: triggerBased}
}

// LocalName returns the device name as it appears on the wire, after truncation.
func (d *Device) LocalName() string {
	return adv.TruncateName(d.name)
}

// TriggerBased reports whether this device announces itself as trigger based.
func (d *Device) TriggerBased() bool {
	return d.triggerBased
}

// PackAdvertisement encodes the provided readings, in the order given, into a complete
// advertisement: flags field, name field, then the BTHome service data field. Duplicate object
// ids are kept as independent entries in the order given.
//
// Any invalid reading or an assembled payload over 31 bytes fails the whole call; no partial
// advertisement is ever returned.
func (d *Device) PackAdvertisement(readings ...Reading) ([]byte, error) {
	nameField, err := adv.LocalName(d.name)
	if err != nil {
		return nil, err
	}

	serviceDataField, err := d.serviceDataField(readings)
	if err != nil {
		return nil, err
	}

	return adv.Pack(nameField, serviceDataField)
}

// nextPacketID advances the 8-bit packet id counter. Readings that select object.PacketID
// without an explicit value advertise this counter, letting receivers spot dropped or duplicated
// advertisements.
func (d *Device) nextPacketID() uint8 {
	d.packetID++
	return d.packetID
}

// deviceInfo computes the device information byte: encryption unsupported (bit 0 clear), the
// trigger-based bit, and the format version in bits 5-7. Remaining bits are reserved and zero.
func (d *Device) deviceInfo() byte {
	info := deviceInfoVersion2
	if d.triggerBased {
		info |= deviceInfoTriggerBased
	}

	return info
}
