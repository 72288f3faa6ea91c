// internal/session/limits.go
package session

import "time"

// Limits enforces the sample-count and elapsed-time caps of one acquisition
// session. A zero value disables the corresponding cap.
type Limits struct {
	MaxSamples uint64
	MaxElapsed time.Duration

	samples  uint64
	started  time.Time
	signaled bool
}

// Start records the session start time for the elapsed-time cap.
func (l *Limits) Start(now time.Time) {
	l.started = now
}

// OnSample counts one completed multi-channel reading. A sample is one full
// decoded frame, not one channel value.
func (l *Limits) OnSample() {
	l.samples++
}

// Samples returns the number of readings counted so far.
func (l *Limits) Samples() uint64 { return l.samples }

// Exceeded reports whether a configured cap has been crossed. The signal
// latches: it is raised exactly once per session.
func (l *Limits) Exceeded(now time.Time) bool {
	if l.signaled {
		return false
	}

	hit := (l.MaxSamples > 0 && l.samples >= l.MaxSamples) ||
		(l.MaxElapsed > 0 && !l.started.IsZero() && now.Sub(l.started) >= l.MaxElapsed)

	if hit {
		l.signaled = true
	}

	return hit
}
