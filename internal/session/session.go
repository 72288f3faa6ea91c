// internal/session/session.go
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/umtools/um-collector/internal/device"
	"github.com/umtools/um-collector/internal/status"
)

// Reading is one decoded multi-channel sample.
type Reading struct {
	At           time.Time
	Model        string
	Measurements []device.Measurement
}

// Session owns one acquisition run against one identified instrument. All
// mutable state (assembly buffer, schedule, limits) lives on the session and
// is touched only from Run's goroutine. Nothing survives the run.
type Session struct {
	link      device.Link
	profile   *device.Profile
	sched     *Scheduler
	limits    *Limits
	asm       *device.Assembler
	clk       clock.Clock
	log       *zap.Logger
	readSlice time.Duration

	pending []Reading
}

// Run drives the acquisition loop until the context is canceled, a transport
// read fails, or a configured limit is reached. Within one turn, received
// bytes are processed in arrival order and a completed frame is decoded
// before the next byte is consumed.
func (s *Session) Run(ctx context.Context, out chan<- Reading) error {
	s.limits.Start(s.clk.Now())

	buf := make([]byte, 64)

	for {
		if ctx.Err() != nil {
			s.asm.Reset()
			return ctx.Err()
		}

		s.sched.MaybePoll(s.clk.Now())

		n, err := s.link.Read(buf, s.readSlice)
		if err != nil {
			return fmt.Errorf("session: stream read: %w", err)
		}
		if n > 0 {
			s.asm.Feed(buf[:n])
		}

		for _, r := range s.pending {
			select {
			case out <- r:
			case <-ctx.Done():
				s.asm.Reset()
				return ctx.Err()
			}
		}
		s.pending = s.pending[:0]

		if s.limits.Exceeded(s.clk.Now()) {
			s.log.Info("acquisition limit reached",
				zap.Uint64("samples", s.limits.Samples()))
			return nil
		}
	}
}

// onFrame is the assembler's dispatch target. It runs on Run's goroutine.
func (s *Session) onFrame(frame []byte) {
	s.pending = append(s.pending, Reading{
		At:           s.clk.Now(),
		Model:        s.profile.Model,
		Measurements: device.Decode(frame, s.profile),
	})
	s.limits.OnSample()
}

// FinalStats reports the session's protocol counters.
// Call only after Run has returned.
func (s *Session) FinalStats() status.Snapshot {
	return status.Snapshot{
		Health:        status.HealthStopped,
		Samples:       s.limits.Samples(),
		Resyncs:       s.asm.Resyncs(),
		Discards:      s.asm.Discards(),
		PollWrites:    s.sched.Writes(),
		WriteFailures: s.sched.Failures(),
	}
}
