// internal/device/profile.go
package device

import (
	"fmt"
	"time"
)

// Quantity tags the physical quantity a channel measures.
type Quantity string

const (
	Voltage     Quantity = "voltage"
	Current     Quantity = "current"
	Temperature Quantity = "temperature"
	Energy      Quantity = "energy"
)

// Unit tags the unit a channel reports in.
type Unit string

const (
	Volt     Unit = "V"
	Ampere   Unit = "A"
	Celsius  Unit = "degC"
	WattHour Unit = "Wh"
)

// Channel describes one value extracted from a fixed offset in a frame.
type Channel struct {
	Name     string
	Offset   int
	Enc      Encoding
	Scale    float64
	Digits   int
	Quantity Quantity
	Unit     Unit
}

// Profile is the immutable description of one device model.
// Instances are process-wide constants selected once at probe time.
type Profile struct {
	Model       string
	PollPeriod  time.Duration
	Timeout     time.Duration // probe response timeout
	FrameLen    int
	StartMarker []byte
	EndMarker   []byte

	// Channels lists every exposed channel, in declaration order.
	// Downstream consumers rely on this order.
	Channels []Channel
}

// Request is the single byte that triggers both the probe and the poll
// response.
const Request byte = 0xF0

// WriteTimeout bounds probe and poll writes. A slower transport is reported
// as a write failure, not treated as fatal.
const WriteTimeout = time.Millisecond

var um24c = &Profile{
	Model:       "UM24C",
	PollPeriod:  100 * time.Millisecond,
	Timeout:     time.Second,
	FrameLen:    0x82,
	StartMarker: []byte{0x09, 0x63},
	EndMarker:   []byte{0xFF, 0xF1},
	Channels: []Channel{
		{Name: "V", Offset: 0x02, Enc: U16{}, Scale: 0.01, Digits: 2, Quantity: Voltage, Unit: Volt},
		{Name: "I", Offset: 0x04, Enc: U16{}, Scale: 0.001, Digits: 3, Quantity: Current, Unit: Ampere},
		{Name: "D+", Offset: 0x60, Enc: U16{}, Scale: 0.01, Digits: 2, Quantity: Voltage, Unit: Volt},
		{Name: "D-", Offset: 0x62, Enc: U16{}, Scale: 0.01, Digits: 2, Quantity: Voltage, Unit: Volt},
		{Name: "Temp", Offset: 0x0A, Enc: U16{}, Scale: 1.0, Digits: 0, Quantity: Temperature, Unit: Celsius},
		// Threshold-based recording total (mWh on the wire).
		{Name: "Consumption", Offset: 0x6A, Enc: U32{}, Scale: 0.001, Digits: 3, Quantity: Energy, Unit: WattHour},
	},
}

// Candidates returns the device profiles the probe tries, in priority order.
// The first profile whose response matches wins.
func Candidates() []*Profile {
	return []*Profile{um24c}
}

// Validate checks the profile's geometry invariants.
func (p *Profile) Validate() error {
	if p.FrameLen < len(p.StartMarker)+len(p.EndMarker) {
		return fmt.Errorf(
			"profile %s: frame length %d shorter than markers (%d+%d)",
			p.Model, p.FrameLen, len(p.StartMarker), len(p.EndMarker),
		)
	}

	for _, ch := range p.Channels {
		if ch.Offset < 0 || ch.Offset+ch.Enc.ByteLen() > p.FrameLen {
			return fmt.Errorf(
				"profile %s: channel %q at offset %d (%d bytes) outside frame of %d bytes",
				p.Model, ch.Name, ch.Offset, ch.Enc.ByteLen(), p.FrameLen,
			)
		}
	}

	return nil
}
