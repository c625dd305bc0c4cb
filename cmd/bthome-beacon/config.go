package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nlowe/bthome/object"
	modbussrc "github.com/nlowe/bthome/sensor/modbus"
)

// Config is the beacon daemon configuration, loaded from YAML.
type Config struct {
	Device    DeviceConfig    `yaml:"device"`
	Advertise AdvertiseConfig `yaml:"advertise"`
	Modbus    *ModbusConfig   `yaml:"modbus"`
	MQTT      *MQTTConfig     `yaml:"mqtt"`
}

type DeviceConfig struct {
	Name         string `yaml:"name"`
	TriggerBased bool   `yaml:"trigger_based"`
}

type AdvertiseConfig struct {
	// Adapter is the BlueZ adapter id, default hci0.
	Adapter string `yaml:"adapter"`

	// Objects lists the catalog objects to advertise from the device's slots, by property name
	// ("temperature") or id ("0x02"). Advertised after any Modbus readings, in the order given.
	Objects []string `yaml:"objects"`

	// PollIntervalMs is how often sensors are read and the payload rebuilt, default 60000.
	PollIntervalMs int `yaml:"poll_interval_ms"`

	// PacketID prepends the auto-incrementing packet id to every advertisement.
	PacketID bool `yaml:"packet_id"`

	objectIDs []object.ID
}

type ModbusConfig struct {
	Endpoint  string          `yaml:"endpoint"`
	UnitID    uint8           `yaml:"unit_id"`
	TimeoutMs int             `yaml:"timeout_ms"`
	Mappings  []MappingConfig `yaml:"mappings"`

	mappings []modbussrc.Mapping
}

type MappingConfig struct {
	Object  string  `yaml:"object"`
	Address uint16  `yaml:"address"`
	Holding bool    `yaml:"holding"`
	Signed  bool    `yaml:"signed"`
	Factor  float64 `yaml:"factor"`
}

type MQTTConfig struct {
	URL         string `yaml:"url"`
	ClientID    string `yaml:"client_id"`
	TopicPrefix string `yaml:"topic_prefix"`
	QoS         byte   `yaml:"qos"`
	Retain      bool   `yaml:"retain"`
}

// Load reads, defaults, and validates the configuration at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Advertise.Adapter == "" {
		c.Advertise.Adapter = "hci0"
	}

	if c.Advertise.PollIntervalMs <= 0 {
		c.Advertise.PollIntervalMs = 60_000
	}

	if c.Modbus != nil && c.Modbus.TimeoutMs <= 0 {
		c.Modbus.TimeoutMs = 5_000
	}

	if c.MQTT != nil {
		if c.MQTT.ClientID == "" {
			c.MQTT.ClientID = "bthome-beacon"
		}

		if c.MQTT.TopicPrefix == "" {
			c.MQTT.TopicPrefix = "bthome"
		}
	}
}

func (c *Config) validate() error {
	if c.Device.Name == "" {
		return errors.New("device.name is required")
	}

	if c.Modbus == nil && len(c.Advertise.Objects) == 0 {
		return errors.New("nothing to advertise: configure advertise.objects or a modbus source")
	}

	for _, o := range c.Advertise.Objects {
		id, err := object.ParseID(o)
		if err != nil {
			return fmt.Errorf("advertise.objects: %w", err)
		}

		c.Advertise.objectIDs = append(c.Advertise.objectIDs, id)
	}

	if c.Modbus != nil {
		if c.Modbus.Endpoint == "" {
			return errors.New("modbus.endpoint is required")
		}

		if len(c.Modbus.Mappings) == 0 {
			return errors.New("modbus.mappings is required")
		}

		for _, m := range c.Modbus.Mappings {
			id, err := object.ParseID(m.Object)
			if err != nil {
				return fmt.Errorf("modbus.mappings: %w", err)
			}

			c.Modbus.mappings = append(c.Modbus.mappings, modbussrc.Mapping{
				Object:  id,
				Address: m.Address,
				Holding: m.Holding,
				Signed:  m.Signed,
				Factor:  m.Factor,
			})
		}
	}

	if c.MQTT != nil && c.MQTT.URL == "" {
		return errors.New("mqtt.url is required")
	}

	return nil
}

// PollInterval returns the sensor poll interval.
func (c *AdvertiseConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// ObjectIDs returns the resolved ids from Objects. Valid after Load.
func (c *AdvertiseConfig) ObjectIDs() []object.ID {
	return c.objectIDs
}

// SourceMappings returns the resolved register mappings. Valid after Load.
func (c *ModbusConfig) SourceMappings() []modbussrc.Mapping {
	return c.mappings
}

// Timeout returns the Modbus request timeout.
func (c *ModbusConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
