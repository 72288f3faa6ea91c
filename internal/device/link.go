// internal/device/link.go
package device

import "time"

// Link is the exact transport contract the protocol core uses: an opaque
// byte stream with per-call timeouts. Implementations live outside the core.
// IMPORTANT: There must be NO other version of this interface anywhere.
type Link interface {
	// Write writes all of p or fails within timeout.
	Write(p []byte, timeout time.Duration) error

	// Read fills as much of p as arrives before timeout expires. Returning
	// 0 with a nil error means the timeout lapsed with nothing received.
	Read(p []byte, timeout time.Duration) (int, error)
}
