// internal/sink/jsonl.go
package sink

import (
	"encoding/json"
	"io"
	"time"

	"github.com/umtools/um-collector/internal/session"
)

// jsonlSink writes one JSON object per reading.
type jsonlSink struct {
	enc *json.Encoder
}

// NewJSONL creates a JSON-lines sink over w.
func NewJSONL(w io.Writer) Sink {
	return &jsonlSink{enc: json.NewEncoder(w)}
}

type jsonlRecord struct {
	At     time.Time    `json:"at"`
	Model  string       `json:"model"`
	Values []jsonlValue `json:"values"`
}

type jsonlValue struct {
	Channel  string  `json:"channel"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	Quantity string  `json:"quantity"`
}

func (s *jsonlSink) Publish(r session.Reading) error {
	rec := jsonlRecord{
		At:     r.At,
		Model:  r.Model,
		Values: make([]jsonlValue, 0, len(r.Measurements)),
	}

	for _, m := range r.Measurements {
		rec.Values = append(rec.Values, jsonlValue{
			Channel:  m.Channel,
			Value:    m.Value,
			Unit:     string(m.Unit),
			Quantity: string(m.Quantity),
		})
	}

	return s.enc.Encode(rec)
}
