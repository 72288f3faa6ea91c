// internal/transport/serialport/port.go
package serialport

import (
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
)

// Config is the minimal transport config for one serial device.
type Config struct {
	Device   string
	BaudRate int
	DataBits int
	Parity   string // none, odd, even
	StopBits int
}

// Port adapts a physical serial port to the device.Link contract.
// The per-call read timeout maps onto the driver's read timeout, so the same
// open port serves the blocking probe and the short-slice streaming loop.
type Port struct {
	port serial.Port
}

// Open opens and configures the serial device.
func Open(cfg Config) (*Port, error) {
	mode, err := cfg.mode()
	if err != nil {
		return nil, err
	}

	p, err := serial.Open(cfg.Device, mode)
	if err != nil {
		return nil, fmt.Errorf("serialport: open %s: %w", cfg.Device, err)
	}

	return &Port{port: p}, nil
}

// Write writes all of p. The driver queues serial writes synchronously; a
// partial write is reported as an error so the caller can skip the attempt.
func (p *Port) Write(b []byte, _ time.Duration) error {
	n, err := p.port.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return fmt.Errorf("serialport: short write: %d of %d bytes", n, len(b))
	}
	return nil
}

// Read fills as much of b as arrives before timeout expires. It returns the
// number of bytes read; 0 with a nil error means the timeout lapsed first.
func (p *Port) Read(b []byte, timeout time.Duration) (int, error) {
	deadline := time.Now().Add(timeout)
	total := 0

	for total < len(b) {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		if err := p.port.SetReadTimeout(remaining); err != nil {
			return total, err
		}

		n, err := p.port.Read(b[total:])
		if err != nil {
			return total, err
		}
		if n == 0 {
			// Driver timeout, nothing more arrived.
			break
		}
		total += n
	}

	return total, nil
}

// Close closes the serial device.
func (p *Port) Close() error {
	if p == nil || p.port == nil {
		return nil
	}
	return p.port.Close()
}

func (c Config) mode() (*serial.Mode, error) {
	mode := &serial.Mode{
		BaudRate: c.BaudRate,
		DataBits: c.DataBits,
	}

	switch c.Parity {
	case "", "none":
		mode.Parity = serial.NoParity
	case "odd":
		mode.Parity = serial.OddParity
	case "even":
		mode.Parity = serial.EvenParity
	default:
		return nil, fmt.Errorf("serialport: unsupported parity %q", c.Parity)
	}

	switch c.StopBits {
	case 0, 1:
		mode.StopBits = serial.OneStopBit
	case 2:
		mode.StopBits = serial.TwoStopBits
	default:
		return nil, errors.New("serialport: stop bits must be 1 or 2")
	}

	return mode, nil
}
