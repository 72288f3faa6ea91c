// internal/device/decode.go
package device

// Measurement is one decoded channel value with its display metadata.
type Measurement struct {
	Channel  string
	Value    float64
	Digits   int
	Quantity Quantity
	Unit     Unit
}

// Decode extracts exactly one Measurement per channel from a complete,
// validated frame, in channel-table order.
// No IO. No side effects.
func Decode(frame []byte, p *Profile) []Measurement {
	out := make([]Measurement, 0, len(p.Channels))

	for _, ch := range p.Channels {
		raw := ch.Enc.extract(frame[ch.Offset:])

		out = append(out, Measurement{
			Channel:  ch.Name,
			Value:    float64(raw) * ch.Scale,
			Digits:   ch.Digits,
			Quantity: ch.Quantity,
			Unit:     ch.Unit,
		})
	}

	return out
}
