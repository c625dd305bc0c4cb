package bthome

import (
	"encoding/binary"

	"github.com/nlowe/bthome/adv"
	"github.com/nlowe/bthome/object"
)

// ServiceData encodes the provided readings into the BTHome service data payload: the device
// information byte followed by each reading's object id and encoded value, in caller order. This
// is the data addressed by ServiceUUID, as consumed by transports that carry the UUID separately
// (BlueZ's LEAdvertisement1 ServiceData property, for example).
//
// Any failing reading aborts the whole build with that reading's error; no partial payload is
// returned.
func (d *Device) ServiceData(readings ...Reading) ([]byte, error) {
	resolved, err := d.Resolve(readings...)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 1, 1+4*len(resolved))
	payload[0] = d.deviceInfo()

	for _, r := range resolved {
		desc, err := object.Lookup(r.Object)
		if err != nil {
			return nil, err
		}

		encoded, err := object.Encode(desc, r.Value)
		if err != nil {
			return nil, err
		}

		payload = append(payload, byte(desc.ID))
		payload = append(payload, encoded...)
	}

	return payload, nil
}

// serviceDataField wraps the service data payload in its AD structure: the computed length byte,
// the service-data-16 type indicator, the service UUID little-endian, then the payload.
func (d *Device) serviceDataField(readings []Reading) ([]byte, error) {
	payload, err := d.ServiceData(readings...)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, 2+len(payload))
	data = binary.LittleEndian.AppendUint16(data, ServiceUUID)
	data = append(data, payload...)

	return adv.Structure(adv.TypeServiceData16, data), nil
}
