// internal/sink/csv.go
package sink

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/umtools/um-collector/internal/device"
	"github.com/umtools/um-collector/internal/session"
)

// csvSink writes one row per reading, columns fixed by the channel table.
type csvSink struct {
	w           *csv.Writer
	profile     *device.Profile
	wroteHeader bool
}

// NewCSV creates a CSV sink over w. The header row is derived from the
// profile's channel table and written before the first reading.
func NewCSV(w io.Writer, p *device.Profile) Sink {
	return &csvSink{
		w:       csv.NewWriter(w),
		profile: p,
	}
}

func (s *csvSink) Publish(r session.Reading) error {
	if !s.wroteHeader {
		header := make([]string, 0, len(s.profile.Channels)+1)
		header = append(header, "at")
		for _, ch := range s.profile.Channels {
			header = append(header, ch.Name)
		}
		if err := s.w.Write(header); err != nil {
			return err
		}
		s.wroteHeader = true
	}

	row := make([]string, 0, len(r.Measurements)+1)
	row = append(row, r.At.Format(time.RFC3339Nano))
	for _, m := range r.Measurements {
		// Digit count comes from the channel metadata, so 1.5 V prints
		// as "1.50" and 25 degC as "25".
		row = append(row, strconv.FormatFloat(m.Value, 'f', m.Digits, 64))
	}

	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()

	return s.w.Error()
}
