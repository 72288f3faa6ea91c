// internal/status/constants.go
package status

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state, before any reading arrived.
const HealthUnknown uint16 = 0

// HealthOK represents a link that is delivering readings.
const HealthOK uint16 = 1

// HealthStale represents a link that stopped delivering readings.
const HealthStale uint16 = 2

// HealthStopped represents an ended acquisition session.
const HealthStopped uint16 = 3

// ---- LIMITS ----

// SecondsStaleMax caps the staleness counter.
const SecondsStaleMax = 65535

// HealthName maps a health code to its log label.
func HealthName(h uint16) string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthStale:
		return "stale"
	case HealthStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
