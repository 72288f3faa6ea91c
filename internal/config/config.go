// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Collector CollectorConfig `yaml:"collector"`
}

type CollectorConfig struct {
	Serial SerialConfig `yaml:"serial"`
	Limits LimitsConfig `yaml:"limits"`
	Sink   SinkConfig   `yaml:"sink"`
	Log    LogConfig    `yaml:"log"`
}

// ---- SERIAL ----

type SerialConfig struct {
	Device   string `yaml:"device"`
	BaudRate int    `yaml:"baud_rate"`
	DataBits int    `yaml:"data_bits"`
	Parity   string `yaml:"parity"` // none, odd, even
	StopBits int    `yaml:"stop_bits"`
}

// ---- LIMITS ----

type LimitsConfig struct {
	MaxSamples uint64 `yaml:"max_samples"` // 0 = unlimited
	MaxTimeMs  int    `yaml:"max_time_ms"` // 0 = unlimited
}

// ---- SINK ----

type SinkConfig struct {
	Format string `yaml:"format"` // jsonl (default) or csv
	Target string `yaml:"target"` // "stdout" (default) or a file path
}

// ---- LOG ----

type LogConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	File       string `yaml:"file"`        // empty = console on stderr
	MaxSizeMB  int    `yaml:"max_size_mb"` // rotation threshold
	MaxBackups int    `yaml:"max_backups"`
}

// Load reads and decodes a yaml configuration file.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return &cfg, nil
}
