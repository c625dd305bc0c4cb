// Command bthome-beacon advertises sensor readings as a BTHome v2 device. It polls a sensor
// source on an interval, rebuilds the advertisement payload, keeps it on the air through BlueZ,
// and optionally republishes each packed frame over MQTT.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"

	"github.com/nlowe/bthome"
	"github.com/nlowe/bthome/adv"
	"github.com/nlowe/bthome/broadcast"
	"github.com/nlowe/bthome/broadcast/bluez"
	"github.com/nlowe/bthome/gateway"
	bthomelog "github.com/nlowe/bthome/log"
	"github.com/nlowe/bthome/object"
	"github.com/nlowe/bthome/sensor"
	modbussrc "github.com/nlowe/bthome/sensor/modbus"
)

func main() {
	configPath := flag.String("config", "bthome-beacon.yaml", "path to the configuration file")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	bthomelog.To(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger := bthomelog.ForComponent("beacon")

	cfg, err := Load(*configPath)
	if err != nil {
		logger.With(bthomelog.Error(err)).Error("Failed to load configuration")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.With(bthomelog.Error(err)).Error("Beacon exited with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	device := bthome.New(cfg.Device.Name, cfg.Device.TriggerBased)
	logger = logger.With(slog.String("device", device.LocalName()))

	var source sensor.Source
	if cfg.Modbus != nil {
		src, err := modbussrc.NewTCP(cfg.Modbus.Endpoint, cfg.Modbus.UnitID, cfg.Modbus.Timeout(), cfg.Modbus.SourceMappings())
		if err != nil {
			return err
		}
		defer func() {
			if err := src.Close(); err != nil {
				logger.With(bthomelog.Error(err)).Warn("Failed to close modbus source")
			}
		}()

		source = src
	}

	broadcaster := bluez.New(cfg.Advertise.Adapter)
	defer func() {
		if err := broadcaster.Stop(); err != nil {
			logger.With(bthomelog.Error(err)).Warn("Failed to stop advertisement")
		}
	}()

	publisher, disconnect, err := connectGateway(ctx, cfg.MQTT)
	if err != nil {
		return err
	}
	if disconnect != nil {
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()

			logger.Info("Disconnecting from mqtt")
			if err := disconnect(shutdownCtx); err != nil {
				logger.With(bthomelog.Error(err)).Warn("Failed to disconnect from mqtt")
			}
		}()
	}

	logger.With(
		slog.Bool("trigger_based", device.TriggerBased()),
		slog.Duration("poll_interval", cfg.Advertise.PollInterval()),
	).Info("Starting beacon")

	ticker := time.NewTicker(cfg.Advertise.PollInterval())
	defer ticker.Stop()

	for {
		if err := advertiseOnce(ctx, cfg, device, source, broadcaster, publisher, logger); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}

			logger.With(bthomelog.Error(err)).Error("Failed to advertise readings")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// advertiseOnce polls the source, packs the payload once, and hands it to the transports. The
// readings are resolved up front so the advertisement and the MQTT frame encode the same values
// (and the packet id advances exactly once per cycle).
func advertiseOnce(
	ctx context.Context,
	cfg *Config,
	device *bthome.Device,
	source sensor.Source,
	broadcaster broadcast.Broadcaster,
	publisher *gateway.Publisher,
	logger *slog.Logger,
) error {
	var readings []bthome.Reading
	if cfg.Advertise.PacketID {
		readings = append(readings, bthome.Current(object.PacketID))
	}

	if source != nil {
		sourced, err := source.Read(ctx)
		if err != nil {
			return err
		}

		readings = append(readings, sourced...)
	}

	readings = append(readings, bthome.Currents(cfg.Advertise.ObjectIDs()...)...)

	resolved, err := device.Resolve(readings...)
	if err != nil {
		return err
	}

	packed, err := device.PackAdvertisement(resolved...)
	if err != nil {
		if errors.Is(err, adv.ErrTooLong) {
			return fmt.Errorf("%w; shorten the device name or advertise fewer objects", err)
		}

		return err
	}

	serviceData, err := device.ServiceData(resolved...)
	if err != nil {
		return err
	}

	logger.With(slog.Int("length", len(packed))).Debug("Packed advertisement")

	if err := broadcaster.Advertise(ctx, broadcast.Advertisement{
		LocalName:   device.LocalName(),
		ServiceUUID: bthome.ServiceUUID,
		ServiceData: serviceData,
	}); err != nil {
		return err
	}

	if publisher != nil {
		if err := publisher.Publish(ctx, device.LocalName(), packed); err != nil {
			return err
		}
	}

	return nil
}

func connectGateway(ctx context.Context, cfg *MQTTConfig) (*gateway.Publisher, func(ctx context.Context) error, error) {
	if cfg == nil {
		return nil, nil, nil
	}

	brokerURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse mqtt url: %w", err)
	}

	w, disconnect, err := gateway.DialMQTT(ctx, autopaho.ClientConfig{
		ServerUrls: []*url.URL{brokerURL},
		KeepAlive:  30,
		ClientConfig: paho.ClientConfig{
			ClientID: cfg.ClientID,
		},
	})
	if err != nil {
		return nil, nil, err
	}

	publisher := gateway.NewPublisher(w, cfg.TopicPrefix, gateway.WriteOptions{QoS: cfg.QoS, Retain: cfg.Retain})
	return publisher, disconnect, nil
}
