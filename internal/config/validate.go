// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	c := cfg.Collector

	// ------------------------------------------------------------
	// SERIAL
	// ------------------------------------------------------------

	if c.Serial.Device == "" {
		return errors.New("config: serial.device is required")
	}
	if c.Serial.BaudRate < 0 {
		return fmt.Errorf("config: serial.baud_rate %d is negative", c.Serial.BaudRate)
	}
	switch c.Serial.DataBits {
	case 0, 5, 6, 7, 8:
	default:
		return fmt.Errorf("config: serial.data_bits %d not in {5,6,7,8}", c.Serial.DataBits)
	}
	switch c.Serial.Parity {
	case "", "none", "odd", "even":
	default:
		return fmt.Errorf("config: serial.parity %q not in {none,odd,even}", c.Serial.Parity)
	}
	switch c.Serial.StopBits {
	case 0, 1, 2:
	default:
		return fmt.Errorf("config: serial.stop_bits %d not in {1,2}", c.Serial.StopBits)
	}

	// ------------------------------------------------------------
	// LIMITS
	// ------------------------------------------------------------

	if c.Limits.MaxTimeMs < 0 {
		return fmt.Errorf("config: limits.max_time_ms %d is negative", c.Limits.MaxTimeMs)
	}

	// ------------------------------------------------------------
	// SINK
	// ------------------------------------------------------------

	switch c.Sink.Format {
	case "", "jsonl", "csv":
	default:
		return fmt.Errorf("config: sink.format %q not in {jsonl,csv}", c.Sink.Format)
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q not in {debug,info,warn,error}", c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 {
		return fmt.Errorf("config: log.max_size_mb %d is negative", c.Log.MaxSizeMB)
	}
	if c.Log.MaxBackups < 0 {
		return fmt.Errorf("config: log.max_backups %d is negative", c.Log.MaxBackups)
	}

	return nil
}
