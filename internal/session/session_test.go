// internal/session/session_test.go
package session

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/umtools/um-collector/internal/device"
)

func streamProfile() *device.Profile {
	return &device.Profile{
		Model:       "test",
		PollPeriod:  100 * time.Millisecond,
		Timeout:     time.Second,
		FrameLen:    8,
		StartMarker: []byte{0x09, 0x63},
		EndMarker:   []byte{0xFF, 0xF1},
		Channels: []device.Channel{
			{Name: "V", Offset: 2, Enc: device.U16{}, Scale: 0.01, Digits: 2, Quantity: device.Voltage, Unit: device.Volt},
		},
	}
}

func frameWithVoltage(hi, lo byte) []byte {
	return []byte{0x09, 0x63, hi, lo, 0x00, 0x00, 0xFF, 0xF1}
}

func TestSession_StreamsGarbageThenTwoFrames(t *testing.T) {
	link := &fakeLink{
		chunks: [][]byte{
			{0x11, 0x22},                // leading garbage, resynced away
			frameWithVoltage(0x00, 0x96), // 1.50 V
			frameWithVoltage(0x01, 0x2C), // 3.00 V
		},
	}

	s, err := Build(
		Config{MaxSamples: 2, ReadSlice: time.Millisecond},
		streamProfile(),
		link,
		clock.New(),
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("Build() err=%v", err)
	}

	out := make(chan Reading, 4)
	done := make(chan error, 1)
	go func() {
		done <- s.Run(context.Background(), out)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() err=%v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("session did not stop at the sample cap")
	}
	close(out)

	var readings []Reading
	for r := range out {
		readings = append(readings, r)
	}

	if len(readings) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(readings))
	}

	want := []float64{1.50, 3.00}
	for i, r := range readings {
		if len(r.Measurements) != 1 {
			t.Fatalf("reading %d: expected 1 measurement, got %d", i, len(r.Measurements))
		}
		if math.Abs(r.Measurements[0].Value-want[i]) > 1e-9 {
			t.Fatalf("reading %d: expected %v, got %v", i, want[i], r.Measurements[0].Value)
		}
		if r.Model != "test" {
			t.Fatalf("reading %d: unexpected model %q", i, r.Model)
		}
	}

	// The cadence was driven while streaming.
	if link.writes < 1 {
		t.Fatalf("expected at least one poll write")
	}

	stats := s.FinalStats()
	if stats.Samples != 2 {
		t.Fatalf("expected 2 samples in final stats, got %d", stats.Samples)
	}
	if stats.Resyncs != 2 {
		t.Fatalf("expected 2 resyncs for 2 garbage bytes, got %d", stats.Resyncs)
	}
}

func TestSession_CancelStopsRun(t *testing.T) {
	link := &fakeLink{}

	s, err := Build(
		Config{ReadSlice: time.Millisecond},
		streamProfile(),
		link,
		clock.New(),
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("Build() err=%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan Reading, 1)
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, out)
	}()

	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("session did not stop on cancel")
	}
}

func TestBuild_RejectsInvalidProfile(t *testing.T) {
	p := streamProfile()
	p.FrameLen = 2 // shorter than the markers

	if _, err := Build(Config{}, p, &fakeLink{}, clock.New(), zap.NewNop()); err == nil {
		t.Fatalf("expected build error for invalid profile")
	}
}

func TestBuild_RequiresLink(t *testing.T) {
	if _, err := Build(Config{}, streamProfile(), nil, clock.New(), zap.NewNop()); err == nil {
		t.Fatalf("expected build error for nil link")
	}
}
