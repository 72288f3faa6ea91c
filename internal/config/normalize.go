// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	c := &cfg.Collector

	// ------------------------------------------------------------
	// SERIAL DEFAULTS
	// ------------------------------------------------------------

	// 9600 8N1 is what the UM-series bluetooth-serial bridge speaks.
	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = 9600
	}
	if c.Serial.DataBits == 0 {
		c.Serial.DataBits = 8
	}
	if c.Serial.Parity == "" {
		c.Serial.Parity = "none"
	}
	if c.Serial.StopBits == 0 {
		c.Serial.StopBits = 1
	}

	// ------------------------------------------------------------
	// SINK DEFAULTS
	// ------------------------------------------------------------

	if c.Sink.Format == "" {
		c.Sink.Format = "jsonl"
	}
	if c.Sink.Target == "" {
		c.Sink.Target = "stdout"
	}

	// ------------------------------------------------------------
	// LOG DEFAULTS
	// ------------------------------------------------------------

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
}
