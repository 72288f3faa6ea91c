// internal/logging/logging.go
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umtools/um-collector/internal/config"
)

// New builds the collector logger: console encoding to stderr by default,
// JSON to a size-rotated file when log.file is set.
func New(cfg config.LogConfig) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	var core zapcore.Core
	if cfg.File == "" {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core = zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)
	} else {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		core = zapcore.NewCore(enc, zapcore.AddSync(rotator), level)
	}

	logger := zap.New(core)
	return logger, func() { _ = logger.Sync() }, nil
}
