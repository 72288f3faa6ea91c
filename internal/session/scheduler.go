// internal/session/scheduler.go
package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/umtools/um-collector/internal/device"
)

// Scheduler reissues the poll request on a fixed cadence, whether or not a
// response to the previous request was observed. Fire-and-forget: lost
// responses are tolerated because the next tick asks again.
type Scheduler struct {
	link   device.Link
	period time.Duration
	log    *zap.Logger

	lastPoll time.Time // zero until the first successful write
	writes   uint64
	failures uint64
}

// NewScheduler creates a scheduler. The first MaybePoll call always polls.
func NewScheduler(link device.Link, period time.Duration, log *zap.Logger) *Scheduler {
	return &Scheduler{
		link:   link,
		period: period,
		log:    log,
	}
}

// MaybePoll issues the poll request if a full period elapsed since the last
// issuance, and is a no-op otherwise. A failed write is not retried
// immediately; the timestamp stays put so the next tick attempts again.
func (s *Scheduler) MaybePoll(now time.Time) {
	if !s.lastPoll.IsZero() && now.Sub(s.lastPoll) < s.period {
		return
	}

	if err := s.link.Write([]byte{device.Request}, device.WriteTimeout); err != nil {
		s.failures++
		s.log.Warn("poll write failed", zap.Error(err))
		return
	}

	s.lastPoll = now
	s.writes++
}

// Writes counts successfully issued poll requests.
func (s *Scheduler) Writes() uint64 { return s.writes }

// Failures counts poll writes that did not complete.
func (s *Scheduler) Failures() uint64 { return s.failures }
