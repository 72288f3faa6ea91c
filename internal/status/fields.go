// internal/status/fields.go
package status

import "go.uber.org/zap"

// Fields converts a Snapshot into structured log fields.
// No IO. No side effects.
func Fields(s Snapshot) []zap.Field {
	return []zap.Field{
		zap.String("health", HealthName(s.Health)),
		zap.Uint16("seconds_stale", s.SecondsStale),
		zap.Uint64("samples", s.Samples),
		zap.Uint64("resyncs", s.Resyncs),
		zap.Uint64("discards", s.Discards),
		zap.Uint64("poll_writes", s.PollWrites),
		zap.Uint64("write_failures", s.WriteFailures),
	}
}
