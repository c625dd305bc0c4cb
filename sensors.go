package bthome

import (
	"github.com/nlowe/bthome/object"
)

// Sensors is the mutable configuration structure a Device advertises from: one named, typed slot
// per catalog property. The caller writes slots between pack calls; the codec only reads them
// while resolving shorthand readings, never asynchronously.
//
// Properties with more than one wire representation (temperature, humidity, count, volume, ...)
// share a slot; the chosen object id decides the width and precision on the wire. For the two
// distance representations the unit follows the id: object.DistanceMM advertises the slot as
// millimeters, object.DistanceM as meters.
type Sensors struct {
	// Measurements. Units follow the BTHome property definitions.
	Acceleration   float64 // m/s²
	Battery        float64 // %
	Channel        int
	CO2            int     // ppm
	Conductivity   float64 // µS/cm
	Count          int
	Current        float64 // A
	Dewpoint       float64 // °C
	Direction      float64 // °
	Distance       float64 // mm or m depending on the id
	Duration       float64 // s
	Energy         float64 // kWh
	Gas            float64 // m³
	Gyroscope      float64 // °/s
	Humidity       float64 // %
	Illuminance    float64 // lux
	Mass           float64 // kg or lb depending on the id
	Moisture       float64 // %
	PM10           float64 // µg/m³
	PM25           float64 // µg/m³
	Power          float64 // W
	Precipitation  float64 // mm
	Pressure       float64 // hPa
	Rotation       float64 // °
	Speed          float64 // m/s
	Temperature    float64 // °C
	Timestamp      int64   // epoch seconds
	TVOC           float64 // µg/m³
	UVIndex        float64
	Voltage        float64 // V
	Volume         float64 // L or mL depending on the id
	VolumeFlowRate float64 // m³/hr
	VolumeStorage  float64 // L
	Water          float64 // L

	// Binary sensors. The slot name describes the "true" condition where the property alone is
	// ambiguous (GasDetected vs the gas volume measurement, and so on).
	BatteryCharging  bool
	BatteryLow       bool
	CarbonMonoxide   bool
	Cold             bool
	Connectivity     bool
	Door             bool
	GarageDoor       bool
	GasDetected      bool
	GenericBoolean   bool
	Heat             bool
	LightDetected    bool
	Lock             bool
	MoistureDetected bool
	Motion           bool
	Moving           bool
	Occupancy        bool
	Opening          bool
	Plug             bool
	PowerOn          bool
	Presence         bool
	Problem          bool
	Running          bool
	Safety           bool
	Smoke            bool
	Sound            bool
	Tamper           bool
	Vibration        bool
	Window           bool

	// Events.
	Button ButtonEvent
	Dimmer int // signed rotation steps, see DimmerSteps

	// Variable-length values.
	Text string
	Raw  []byte
}

// currentValue reads the Sensors slot backing the provided catalog id. The id has already passed
// Lookup, so every catalog id must have a case here; catalog coverage is enforced by a test.
func (d *Device) currentValue(id object.ID) any {
	s := &d.Sensors

	switch id {
	case object.PacketID:
		return d.nextPacketID()
	case object.Battery:
		return s.Battery
	case object.Temperature, object.TemperatureCoarse, object.Temperature8:
		return s.Temperature
	case object.Humidity, object.HumidityCoarse:
		return s.Humidity
	case object.Pressure:
		return s.Pressure
	case object.Illuminance:
		return s.Illuminance
	case object.MassKilograms, object.MassPounds:
		return s.Mass
	case object.Dewpoint:
		return s.Dewpoint
	case object.Count8, object.Count16, object.Count32,
		object.CountSigned8, object.CountSigned16, object.CountSigned32:
		return s.Count
	case object.Energy, object.Energy32:
		return s.Energy
	case object.Power, object.PowerSigned:
		return s.Power
	case object.Voltage, object.VoltageCoarse:
		return s.Voltage
	case object.PM25:
		return s.PM25
	case object.PM10:
		return s.PM10
	case object.GenericBoolean:
		return s.GenericBoolean
	case object.PowerOn:
		return s.PowerOn
	case object.Opening:
		return s.Opening
	case object.CO2:
		return s.CO2
	case object.TVOC:
		return s.TVOC
	case object.Moisture, object.MoistureCoarse:
		return s.Moisture
	case object.BatteryLow:
		return s.BatteryLow
	case object.BatteryCharging:
		return s.BatteryCharging
	case object.CarbonMonoxide:
		return s.CarbonMonoxide
	case object.Cold:
		return s.Cold
	case object.Connectivity:
		return s.Connectivity
	case object.Door:
		return s.Door
	case object.GarageDoor:
		return s.GarageDoor
	case object.GasDetected:
		return s.GasDetected
	case object.Heat:
		return s.Heat
	case object.LightDetected:
		return s.LightDetected
	case object.Lock:
		return s.Lock
	case object.MoistureDetected:
		return s.MoistureDetected
	case object.Motion:
		return s.Motion
	case object.Moving:
		return s.Moving
	case object.Occupancy:
		return s.Occupancy
	case object.Plug:
		return s.Plug
	case object.Presence:
		return s.Presence
	case object.Problem:
		return s.Problem
	case object.Running:
		return s.Running
	case object.Safety:
		return s.Safety
	case object.Smoke:
		return s.Smoke
	case object.Sound:
		return s.Sound
	case object.Tamper:
		return s.Tamper
	case object.Vibration:
		return s.Vibration
	case object.Window:
		return s.Window
	case object.Button:
		return uint8(s.Button)
	case object.Dimmer:
		return DimmerSteps(s.Dimmer)
	case object.Rotation:
		return s.Rotation
	case object.DistanceMM, object.DistanceM:
		return s.Distance
	case object.Duration:
		return s.Duration
	case object.Current, object.CurrentSigned:
		return s.Current
	case object.Speed:
		return s.Speed
	case object.UVIndex:
		return s.UVIndex
	case object.VolumeLiters, object.VolumeMilliliters, object.Volume32:
		return s.Volume
	case object.VolumeFlowRate:
		return s.VolumeFlowRate
	case object.Gas, object.Gas32:
		return s.Gas
	case object.Water:
		return s.Water
	case object.Timestamp:
		return s.Timestamp
	case object.Acceleration:
		return s.Acceleration
	case object.Gyroscope:
		return s.Gyroscope
	case object.Text:
		return s.Text
	case object.Raw:
		return s.Raw
	case object.VolumeStorage:
		return s.VolumeStorage
	case object.Conductivity:
		return s.Conductivity
	case object.Direction:
		return s.Direction
	case object.Precipitation:
		return s.Precipitation
	case object.Channel:
		return s.Channel
	}

	return nil
}
