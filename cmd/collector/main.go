// cmd/collector/main.go
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/umtools/um-collector/internal/config"
	"github.com/umtools/um-collector/internal/device"
	"github.com/umtools/um-collector/internal/logging"
	"github.com/umtools/um-collector/internal/session"
	"github.com/umtools/um-collector/internal/sink"
	"github.com/umtools/um-collector/internal/status"
	"github.com/umtools/um-collector/internal/transport/serialport"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: collector <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	logger, syncLogs, err := logging.New(cfg.Collector.Log)
	if err != nil {
		log.Fatalf("logger build failed: %v", err)
	}
	defer syncLogs()

	// --------------------
	// Open link + identify instrument
	// --------------------

	link, err := serialport.Open(serialport.Config{
		Device:   cfg.Collector.Serial.Device,
		BaudRate: cfg.Collector.Serial.BaudRate,
		DataBits: cfg.Collector.Serial.DataBits,
		Parity:   cfg.Collector.Serial.Parity,
		StopBits: cfg.Collector.Serial.StopBits,
	})
	if err != nil {
		logger.Fatal("serial open failed", zap.Error(err))
	}
	defer link.Close()

	profile, err := device.Probe(link, device.Candidates(), logger)
	if err != nil {
		logger.Fatal("instrument identification failed", zap.Error(err))
	}

	// --------------------
	// Build session + sink
	// --------------------

	sess, err := session.Build(
		session.Config{
			MaxSamples: cfg.Collector.Limits.MaxSamples,
			MaxElapsed: time.Duration(cfg.Collector.Limits.MaxTimeMs) * time.Millisecond,
		},
		profile,
		link,
		clock.New(),
		logger,
	)
	if err != nil {
		logger.Fatal("session build failed", zap.Error(err))
	}

	snk, closeSink, err := sink.Build(cfg.Collector.Sink, profile)
	if err != nil {
		logger.Fatal("sink build failed", zap.Error(err))
	}
	defer func() {
		if err := closeSink(); err != nil {
			logger.Error("sink close failed", zap.Error(err))
		}
	}()

	// --------------------
	// Run acquisition
	// --------------------

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	out := make(chan session.Reading)
	runErr := make(chan error, 1)

	go func() {
		runErr <- sess.Run(ctx, out)
		close(out)
	}()

	// Orchestrator (owns the status snapshot + 1Hz staleness ticker)
	var snap status.Snapshot
	snap.Health = status.HealthUnknown

	secTicker := time.NewTicker(time.Second)
	defer secTicker.Stop()

	var lastSamples uint64

loop:
	for {
		select {
		case r, ok := <-out:
			if !ok {
				break loop
			}

			if err := snk.Publish(r); err != nil {
				logger.Error("sink publish failed", zap.Error(err))
			}

			snap.Samples++
			if snap.Health != status.HealthOK {
				snap.Health = status.HealthOK
				snap.SecondsStale = 0
				logger.Info("acquisition healthy", status.Fields(snap)...)
			}

		case <-secTicker.C:
			// Tick 1 Hz while no readings arrive.
			if snap.Samples == lastSamples {
				snap.Health = status.HealthStale
				if snap.SecondsStale < status.SecondsStaleMax {
					snap.SecondsStale++
				}
				logger.Warn("no readings received", status.Fields(snap)...)
			} else {
				snap.SecondsStale = 0
			}
			lastSamples = snap.Samples
		}
	}

	if err := <-runErr; err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session ended with error", zap.Error(err))
	}

	// --------------------
	// Final status
	// --------------------

	final := sess.FinalStats()
	logger.Info("acquisition stopped", status.Fields(final)...)
}
