package main

import (
	"context"
	"encoding/hex"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/nlowe/bthome"
	"github.com/nlowe/bthome/broadcast"
	"github.com/nlowe/bthome/broadcast/bluez"
	bthomelog "github.com/nlowe/bthome/log"
	"github.com/nlowe/bthome/object"
)

func main() {
	bthomelog.To(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log := bthomelog.ForComponent("example")
	log.Info("Starting Up")

	d := bthome.New("DIY-sensor", false)
	d.Sensors.Temperature = 25.00
	d.Sensors.Humidity = 50.55

	packed, err := d.PackAdvertisement(bthome.Currents(object.Temperature, object.Humidity)...)
	if err != nil {
		panic(err)
	}

	log.With(slog.String("payload", hex.EncodeToString(packed))).Info("Packed advertisement")

	b := bluez.New("hci0")
	defer func() {
		if err := b.Stop(); err != nil {
			log.With(bthomelog.Error(err)).Error("Failed to stop advertisement")
		}
	}()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		serviceData, err := d.ServiceData(bthome.Currents(object.Temperature, object.Humidity)...)
		if err != nil {
			panic(err)
		}

		if err := b.Advertise(ctx, broadcast.Advertisement{
			LocalName:   d.LocalName(),
			ServiceUUID: bthome.ServiceUUID,
			ServiceData: serviceData,
		}); err != nil {
			panic(err)
		}

		select {
		case <-ctx.Done():
			log.Info("Goodbye!")
			return
		case <-ticker.C:
		}
	}
}
