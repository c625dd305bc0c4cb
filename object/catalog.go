package object

// Object ids for the BTHome v2 "Sensor Data" table. Properties with more than one wire
// representation carry a precision or width suffix; the unsuffixed constant is the most common
// representation. Id 0x58 (temperature with a 0.35 factor) is deliberately absent, its factor is
// not an integer.
//
// See the "Sensor Data" table at https://bthome.io/format/ for details.
const (
	PacketID          ID = 0x00
	Battery           ID = 0x01 // %
	Temperature       ID = 0x02 // 0.01 °C
	Humidity          ID = 0x03 // 0.01 %
	Pressure          ID = 0x04 // 0.01 hPa
	Illuminance       ID = 0x05 // 0.01 lux
	MassKilograms     ID = 0x06 // 0.01 kg
	MassPounds        ID = 0x07 // 0.01 lb
	Dewpoint          ID = 0x08 // 0.01 °C
	Count8            ID = 0x09
	Energy            ID = 0x0A // 0.001 kWh
	Power             ID = 0x0B // 0.01 W
	Voltage           ID = 0x0C // 0.001 V
	PM25              ID = 0x0D // µg/m³
	PM10              ID = 0x0E // µg/m³
	GenericBoolean    ID = 0x0F
	PowerOn           ID = 0x10
	Opening           ID = 0x11
	CO2               ID = 0x12 // ppm
	TVOC              ID = 0x13 // µg/m³
	Moisture          ID = 0x14 // 0.01 %
	BatteryLow        ID = 0x15
	BatteryCharging   ID = 0x16
	CarbonMonoxide    ID = 0x17
	Cold              ID = 0x18
	Connectivity      ID = 0x19
	Door              ID = 0x1A
	GarageDoor        ID = 0x1B
	GasDetected       ID = 0x1C
	Heat              ID = 0x1D
	LightDetected     ID = 0x1E
	Lock              ID = 0x1F
	MoistureDetected  ID = 0x20
	Motion            ID = 0x21
	Moving            ID = 0x22
	Occupancy         ID = 0x23
	Plug              ID = 0x24
	Presence          ID = 0x25
	Problem           ID = 0x26
	Running           ID = 0x27
	Safety            ID = 0x28
	Smoke             ID = 0x29
	Sound             ID = 0x2A
	Tamper            ID = 0x2B
	Vibration         ID = 0x2C
	Window            ID = 0x2D
	HumidityCoarse    ID = 0x2E // 1 %
	MoistureCoarse    ID = 0x2F // 1 %
	Button            ID = 0x3A
	Dimmer            ID = 0x3C
	Count16           ID = 0x3D
	Count32           ID = 0x3E
	Rotation          ID = 0x3F // 0.1 °
	DistanceMM        ID = 0x40 // mm
	DistanceM         ID = 0x41 // 0.1 m
	Duration          ID = 0x42 // 0.001 s
	Current           ID = 0x43 // 0.001 A
	Speed             ID = 0x44 // 0.01 m/s
	TemperatureCoarse ID = 0x45 // 0.1 °C
	UVIndex           ID = 0x46 // 0.1
	VolumeLiters      ID = 0x47 // 0.1 L
	VolumeMilliliters ID = 0x48 // mL
	VolumeFlowRate    ID = 0x49 // 0.001 m³/hr
	VoltageCoarse     ID = 0x4A // 0.1 V
	Gas               ID = 0x4B // 0.001 m³
	Gas32             ID = 0x4C // 0.001 m³
	Energy32          ID = 0x4D // 0.001 kWh
	Volume32          ID = 0x4E // 0.001 L
	Water             ID = 0x4F // 0.001 L
	Timestamp         ID = 0x50 // epoch seconds
	Acceleration      ID = 0x51 // 0.001 m/s²
	Gyroscope         ID = 0x52 // 0.001 °/s
	Text              ID = 0x53
	Raw               ID = 0x54
	VolumeStorage     ID = 0x55 // 0.001 L
	Conductivity      ID = 0x56 // µS/cm
	Temperature8      ID = 0x57 // 1 °C
	CountSigned8      ID = 0x59
	CountSigned16     ID = 0x5A
	CountSigned32     ID = 0x5B
	PowerSigned       ID = 0x5C // 0.01 W
	CurrentSigned     ID = 0x5D // 0.001 A
	Direction         ID = 0x5E // 0.01 °
	Precipitation     ID = 0x5F // mm
	Channel           ID = 0x60
)

func unsigned(id ID, property string, width int, factor int64) Descriptor {
	return Descriptor{ID: id, Property: property, Kind: KindScaled, Width: width, Factor: factor}
}

func signed(id ID, property string, width int, factor int64) Descriptor {
	return Descriptor{ID: id, Property: property, Kind: KindScaled, Width: width, Signed: true, Factor: factor}
}

func binary(id ID, property string) Descriptor {
	return Descriptor{ID: id, Property: property, Kind: KindRaw, Width: 1, Factor: 1}
}

func event(id ID, property string, width int) Descriptor {
	return Descriptor{ID: id, Property: property, Kind: KindRaw, Width: width, Factor: 1}
}

func blob(id ID, property string) Descriptor {
	return Descriptor{ID: id, Property: property, Kind: KindBytes, Factor: 1}
}

var catalog = map[ID]Descriptor{
	PacketID:          unsigned(PacketID, "packet_id", 1, 1),
	Battery:           unsigned(Battery, "battery", 1, 1),
	Temperature:       signed(Temperature, "temperature", 2, 100),
	Humidity:          unsigned(Humidity, "humidity", 2, 100),
	Pressure:          unsigned(Pressure, "pressure", 3, 100),
	Illuminance:       unsigned(Illuminance, "illuminance", 3, 100),
	MassKilograms:     unsigned(MassKilograms, "mass", 2, 100),
	MassPounds:        unsigned(MassPounds, "mass_lb", 2, 100),
	Dewpoint:          signed(Dewpoint, "dewpoint", 2, 100),
	Count8:            unsigned(Count8, "count", 1, 1),
	Energy:            unsigned(Energy, "energy", 3, 1000),
	Power:             unsigned(Power, "power", 3, 100),
	Voltage:           unsigned(Voltage, "voltage", 2, 1000),
	PM25:              unsigned(PM25, "pm2.5", 2, 1),
	PM10:              unsigned(PM10, "pm10", 2, 1),
	GenericBoolean:    binary(GenericBoolean, "generic_boolean"),
	PowerOn:           binary(PowerOn, "power_on"),
	Opening:           binary(Opening, "opening"),
	CO2:               unsigned(CO2, "co2", 2, 1),
	TVOC:              unsigned(TVOC, "tvoc", 2, 1),
	Moisture:          unsigned(Moisture, "moisture", 2, 100),
	BatteryLow:        binary(BatteryLow, "battery_low"),
	BatteryCharging:   binary(BatteryCharging, "battery_charging"),
	CarbonMonoxide:    binary(CarbonMonoxide, "carbon_monoxide"),
	Cold:              binary(Cold, "cold"),
	Connectivity:      binary(Connectivity, "connectivity"),
	Door:              binary(Door, "door"),
	GarageDoor:        binary(GarageDoor, "garage_door"),
	GasDetected:       binary(GasDetected, "gas_detected"),
	Heat:              binary(Heat, "heat"),
	LightDetected:     binary(LightDetected, "light"),
	Lock:              binary(Lock, "lock"),
	MoistureDetected:  binary(MoistureDetected, "moisture_detected"),
	Motion:            binary(Motion, "motion"),
	Moving:            binary(Moving, "moving"),
	Occupancy:         binary(Occupancy, "occupancy"),
	Plug:              binary(Plug, "plug"),
	Presence:          binary(Presence, "presence"),
	Problem:           binary(Problem, "problem"),
	Running:           binary(Running, "running"),
	Safety:            binary(Safety, "safety"),
	Smoke:             binary(Smoke, "smoke"),
	Sound:             binary(Sound, "sound"),
	Tamper:            binary(Tamper, "tamper"),
	Vibration:         binary(Vibration, "vibration"),
	Window:            binary(Window, "window"),
	HumidityCoarse:    unsigned(HumidityCoarse, "humidity_coarse", 1, 1),
	MoistureCoarse:    unsigned(MoistureCoarse, "moisture_coarse", 1, 1),
	Button:            event(Button, "button", 1),
	Dimmer:            event(Dimmer, "dimmer", 2),
	Count16:           unsigned(Count16, "count_16", 2, 1),
	Count32:           unsigned(Count32, "count_32", 4, 1),
	Rotation:          signed(Rotation, "rotation", 2, 10),
	DistanceMM:        unsigned(DistanceMM, "distance_mm", 2, 1),
	DistanceM:         unsigned(DistanceM, "distance", 2, 10),
	Duration:          unsigned(Duration, "duration", 3, 1000),
	Current:           unsigned(Current, "current", 2, 1000),
	Speed:             unsigned(Speed, "speed", 2, 100),
	TemperatureCoarse: signed(TemperatureCoarse, "temperature_coarse", 2, 10),
	UVIndex:           unsigned(UVIndex, "uv_index", 1, 10),
	VolumeLiters:      unsigned(VolumeLiters, "volume", 2, 10),
	VolumeMilliliters: unsigned(VolumeMilliliters, "volume_ml", 2, 1),
	VolumeFlowRate:    unsigned(VolumeFlowRate, "volume_flow_rate", 2, 1000),
	VoltageCoarse:     unsigned(VoltageCoarse, "voltage_coarse", 2, 10),
	Gas:               unsigned(Gas, "gas", 3, 1000),
	Gas32:             unsigned(Gas32, "gas_32", 4, 1000),
	Energy32:          unsigned(Energy32, "energy_32", 4, 1000),
	Volume32:          unsigned(Volume32, "volume_32", 4, 1000),
	Water:             unsigned(Water, "water", 4, 1000),
	Timestamp:         unsigned(Timestamp, "timestamp", 6, 1),
	Acceleration:      unsigned(Acceleration, "acceleration", 2, 1000),
	Gyroscope:         unsigned(Gyroscope, "gyroscope", 2, 1000),
	Text:              blob(Text, "text"),
	Raw:               blob(Raw, "raw"),
	VolumeStorage:     unsigned(VolumeStorage, "volume_storage", 4, 1000),
	Conductivity:      unsigned(Conductivity, "conductivity", 2, 1),
	Temperature8:      signed(Temperature8, "temperature_8", 1, 1),
	CountSigned8:      signed(CountSigned8, "count_signed_8", 1, 1),
	CountSigned16:     signed(CountSigned16, "count_signed_16", 2, 1),
	CountSigned32:     signed(CountSigned32, "count_signed_32", 4, 1),
	PowerSigned:       signed(PowerSigned, "power_signed", 2, 100),
	CurrentSigned:     signed(CurrentSigned, "current_signed", 2, 1000),
	Direction:         unsigned(Direction, "direction", 2, 100),
	Precipitation:     unsigned(Precipitation, "precipitation", 2, 1),
	Channel:           unsigned(Channel, "channel", 1, 1),
}
