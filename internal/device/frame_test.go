// internal/device/frame_test.go
package device

import (
	"bytes"
	"testing"
	"time"

	"go.uber.org/zap"
)

// testProfile is a small frame geometry so streams stay readable.
func testProfile() *Profile {
	return &Profile{
		Model:       "test",
		PollPeriod:  100 * time.Millisecond,
		Timeout:     time.Second,
		FrameLen:    8,
		StartMarker: []byte{0x09, 0x63},
		EndMarker:   []byte{0xFF, 0xF1},
		Channels: []Channel{
			{Name: "V", Offset: 2, Enc: U16{}, Scale: 0.01, Digits: 2, Quantity: Voltage, Unit: Volt},
		},
	}
}

func validFrame() []byte {
	return []byte{0x09, 0x63, 0x00, 0x96, 0xAA, 0xBB, 0xFF, 0xF1}
}

func collect(frames *[][]byte) func([]byte) {
	return func(f []byte) {
		*frames = append(*frames, f)
	}
}

func TestAssembler_DispatchesWellFormedFrame(t *testing.T) {
	var frames [][]byte
	a := NewAssembler(testProfile(), collect(&frames), zap.NewNop())

	// One byte at a time: the strictest arrival pattern.
	for _, b := range validFrame() {
		a.Feed([]byte{b})
	}

	if len(frames) != 1 {
		t.Fatalf("expected 1 dispatched frame, got %d", len(frames))
	}
	if !bytes.Equal(frames[0], validFrame()) {
		t.Fatalf("dispatched frame mismatch: %x", frames[0])
	}
}

func TestAssembler_DispatchesAcrossChunkBoundaries(t *testing.T) {
	var frames [][]byte
	a := NewAssembler(testProfile(), collect(&frames), zap.NewNop())

	stream := append(validFrame(), validFrame()...)
	a.Feed(stream[:5])
	a.Feed(stream[5:11])
	a.Feed(stream[11:])

	if len(frames) != 2 {
		t.Fatalf("expected 2 dispatched frames, got %d", len(frames))
	}
	for i, f := range frames {
		if !bytes.Equal(f, validFrame()) {
			t.Fatalf("frame %d mismatch: %x", i, f)
		}
	}
}

func TestAssembler_ResyncDropsExactlyLeadingGarbage(t *testing.T) {
	var frames [][]byte
	a := NewAssembler(testProfile(), collect(&frames), zap.NewNop())

	// None of the garbage bytes belongs to the start marker.
	garbage := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	a.Feed(append(append([]byte{}, garbage...), validFrame()...))

	if got := a.Resyncs(); got != uint64(len(garbage)) {
		t.Fatalf("expected %d resyncs, got %d", len(garbage), got)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 dispatched frame, got %d", len(frames))
	}
	if !bytes.Equal(frames[0], validFrame()) {
		t.Fatalf("dispatched frame mismatch: %x", frames[0])
	}
}

func TestAssembler_ResyncRealignsOnPartialMarkerOverlap(t *testing.T) {
	var frames [][]byte
	a := NewAssembler(testProfile(), collect(&frames), zap.NewNop())

	// 0x09 is the first marker byte; the assembler must keep it while
	// dropping the byte before it.
	a.Feed(append([]byte{0x42}, validFrame()...))

	if got := a.Resyncs(); got != 1 {
		t.Fatalf("expected 1 resync, got %d", got)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 dispatched frame, got %d", len(frames))
	}
}

// End-marker mismatches discard the entire buffer instead of shifting one
// byte, unlike start-marker handling. The asymmetry is deliberate.
func TestAssembler_EndMarkerMismatchDiscardsWholeBuffer(t *testing.T) {
	var frames [][]byte
	a := NewAssembler(testProfile(), collect(&frames), zap.NewNop())

	corrupted := validFrame()
	corrupted[7] = 0x00

	a.Feed(corrupted)
	a.Feed(validFrame())

	if got := a.Discards(); got != 1 {
		t.Fatalf("expected 1 discard, got %d", got)
	}
	if len(frames) != 1 {
		t.Fatalf("expected only the second frame dispatched, got %d", len(frames))
	}
	if !bytes.Equal(frames[0], validFrame()) {
		t.Fatalf("dispatched frame mismatch: %x", frames[0])
	}
}

func TestAssembler_MarkerlessProfileDispatchesEveryFrameLen(t *testing.T) {
	p := testProfile()
	p.StartMarker = nil
	p.EndMarker = nil

	var frames [][]byte
	a := NewAssembler(p, collect(&frames), zap.NewNop())

	stream := make([]byte, 3*p.FrameLen)
	for i := range stream {
		stream[i] = byte(i)
	}
	a.Feed(stream)

	if len(frames) != 3 {
		t.Fatalf("expected 3 dispatched frames, got %d", len(frames))
	}
	if !bytes.Equal(frames[1], stream[8:16]) {
		t.Fatalf("second frame mismatch: %x", frames[1])
	}
}

func TestAssembler_ResetDropsPartialFrame(t *testing.T) {
	var frames [][]byte
	a := NewAssembler(testProfile(), collect(&frames), zap.NewNop())

	a.Feed(validFrame()[:5])
	a.Reset()
	a.Feed(validFrame())

	if len(frames) != 1 {
		t.Fatalf("expected 1 dispatched frame, got %d", len(frames))
	}
}
