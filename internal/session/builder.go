// internal/session/builder.go
package session

import (
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/umtools/um-collector/internal/device"
)

// defaultReadSlice bounds each streaming read so the cadence check runs even
// when the instrument is silent. Must stay well under the poll period.
const defaultReadSlice = 20 * time.Millisecond

// Config is the runtime config the session needs.
type Config struct {
	// MaxSamples / MaxElapsed cap the session. Zero disables a cap.
	MaxSamples uint64
	MaxElapsed time.Duration

	// ReadSlice overrides the per-read timeout. Zero selects the default.
	ReadSlice time.Duration
}

// Build wires a session for one identified profile.
func Build(cfg Config, p *device.Profile, link device.Link, clk clock.Clock, log *zap.Logger) (*Session, error) {
	if p == nil {
		return nil, errors.New("session: profile required")
	}
	if link == nil {
		return nil, errors.New("session: link required")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	readSlice := cfg.ReadSlice
	if readSlice <= 0 {
		readSlice = defaultReadSlice
	}

	s := &Session{
		link:    link,
		profile: p,
		sched:   NewScheduler(link, p.PollPeriod, log),
		limits: &Limits{
			MaxSamples: cfg.MaxSamples,
			MaxElapsed: cfg.MaxElapsed,
		},
		clk:       clk,
		log:       log,
		readSlice: readSlice,
	}
	s.asm = device.NewAssembler(p, s.onFrame, log)

	return s, nil
}
