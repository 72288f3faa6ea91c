// internal/sink/types.go
package sink

import "github.com/umtools/um-collector/internal/session"

// Sink publishes decoded readings downstream.
type Sink interface {
	Publish(r session.Reading) error
}
