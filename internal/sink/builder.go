// internal/sink/builder.go
package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/umtools/um-collector/internal/config"
	"github.com/umtools/um-collector/internal/device"
)

// Build constructs the configured sink and its closer.
func Build(cfg config.SinkConfig, p *device.Profile) (Sink, func() error, error) {
	var w io.Writer = os.Stdout
	closer := func() error { return nil }

	if cfg.Target != "" && cfg.Target != "stdout" {
		f, err := os.OpenFile(cfg.Target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("sink: open %s: %w", cfg.Target, err)
		}
		w = f
		closer = f.Close
	}

	switch cfg.Format {
	case "", "jsonl":
		return NewJSONL(w), closer, nil
	case "csv":
		return NewCSV(w, p), closer, nil
	default:
		_ = closer()
		return nil, nil, fmt.Errorf("sink: unsupported format %q", cfg.Format)
	}
}
