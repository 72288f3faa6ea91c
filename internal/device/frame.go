// internal/device/frame.go
package device

import (
	"bytes"

	"go.uber.org/zap"
)

// Assembler rebuilds fixed-length frames from an unframed byte stream.
//
// A start-marker mismatch shifts the window by exactly one byte so the
// stream realigns on the next possible marker occurrence. An end-marker
// mismatch discards the whole buffer. The two behaviors are intentionally
// asymmetric; tests pin both.
type Assembler struct {
	profile  *Profile
	buf      []byte
	dispatch func(frame []byte)
	log      *zap.Logger

	resyncs  uint64
	discards uint64
}

// NewAssembler creates an assembler for one acquisition session. dispatch is
// called with each completed, validated frame; the slice passed to it is the
// caller's to keep.
func NewAssembler(p *Profile, dispatch func(frame []byte), log *zap.Logger) *Assembler {
	return &Assembler{
		profile:  p,
		buf:      make([]byte, 0, p.FrameLen),
		dispatch: dispatch,
		log:      log,
	}
}

// Feed consumes newly received bytes, one at a time. A completed frame is
// validated and dispatched before the next byte is consumed.
func (a *Assembler) Feed(data []byte) {
	for _, b := range data {
		a.feedByte(b)
	}
}

func (a *Assembler) feedByte(b byte) {
	p := a.profile
	a.buf = append(a.buf, b)

	// Re-check the leading marker every time the buffer grows back to the
	// marker length. One byte is dropped per mismatch.
	if n := len(p.StartMarker); n > 0 && len(a.buf) == n && !bytes.Equal(a.buf, p.StartMarker) {
		a.log.Debug("start marker mismatch, dropping one byte",
			zap.Uint8("dropped", a.buf[0]))
		a.buf = a.buf[:copy(a.buf, a.buf[1:])]
		a.resyncs++
		return
	}

	if len(a.buf) < p.FrameLen {
		return
	}

	// End-marker failure throws the whole buffer away. No shifted resync
	// is attempted here.
	if n := len(p.EndMarker); n > 0 && !bytes.Equal(a.buf[p.FrameLen-n:], p.EndMarker) {
		a.log.Warn("end marker mismatch, discarding frame",
			zap.Int("len", len(a.buf)))
		a.buf = a.buf[:0]
		a.discards++
		return
	}

	frame := make([]byte, p.FrameLen)
	copy(frame, a.buf)
	a.buf = a.buf[:0]
	a.dispatch(frame)
}

// Reset discards any partially assembled frame.
func (a *Assembler) Reset() {
	a.buf = a.buf[:0]
}

// Resyncs counts single-byte start-marker realignments.
func (a *Assembler) Resyncs() uint64 { return a.resyncs }

// Discards counts whole-buffer end-marker rejections.
func (a *Assembler) Discards() uint64 { return a.discards }
