// internal/status/snapshot.go
package status

// Snapshot represents exactly what the reporter is allowed to publish.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health       uint16
	SecondsStale uint16

	Samples       uint64
	Resyncs       uint64
	Discards      uint64
	PollWrites    uint64
	WriteFailures uint64
}
