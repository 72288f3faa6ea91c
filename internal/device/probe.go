// internal/device/probe.go
package device

import (
	"bytes"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Probe identifies the attached instrument. It performs exactly one blocking
// request/response exchange per candidate, in priority order, and returns
// the first profile whose response geometry matches. No retries.
//
// Marker mismatches reject the candidate and move on; a dead transport or a
// short response fails identification outright.
func Probe(link Link, candidates []*Profile, log *zap.Logger) (*Profile, error) {
	for _, p := range candidates {
		err := probeOne(link, p)
		switch {
		case err == nil:
			log.Info("instrument identified", zap.String("model", p.Model))
			return p, nil

		case errors.Is(err, ErrBadStartMarker), errors.Is(err, ErrBadEndMarker):
			log.Debug("probe response rejected",
				zap.String("model", p.Model),
				zap.Error(err))
			continue

		default:
			return nil, err
		}
	}

	return nil, ErrNoProfileMatched
}

func probeOne(link Link, p *Profile) error {
	if err := link.Write([]byte{Request}, WriteTimeout); err != nil {
		return &WriteError{Op: "probe", Err: err}
	}

	buf := make([]byte, p.FrameLen)
	n, err := link.Read(buf, p.Timeout)
	if err != nil {
		return fmt.Errorf("device: probe read: %w", err)
	}
	if n != p.FrameLen {
		return fmt.Errorf("%w: got %d of %d bytes", ErrShortRead, n, p.FrameLen)
	}

	if len(p.StartMarker) > 0 && !bytes.HasPrefix(buf, p.StartMarker) {
		return ErrBadStartMarker
	}
	if len(p.EndMarker) > 0 && !bytes.HasSuffix(buf, p.EndMarker) {
		return ErrBadEndMarker
	}

	return nil
}
