// internal/device/errors.go
package device

import (
	"errors"
	"fmt"
)

// Failure kinds reported by the probe and the streaming path.
var (
	// ErrShortRead means a probe response held fewer bytes than the
	// candidate's frame length.
	ErrShortRead = errors.New("device: short probe response")

	// ErrBadStartMarker / ErrBadEndMarker mean the marker bytes did not
	// match at the expected position.
	ErrBadStartMarker = errors.New("device: bad start marker")
	ErrBadEndMarker   = errors.New("device: bad end marker")

	// ErrNoProfileMatched means no candidate identified the instrument.
	ErrNoProfileMatched = errors.New("device: no profile matched")
)

// WriteError wraps a failed or incomplete transport write.
type WriteError struct {
	Op  string // "probe" or "poll"
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("device: %s write failed: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
