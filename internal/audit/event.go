package audit

import "time"

// Level grades an audit event. Sinks filter on it.
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// rank orders levels for sink filtering. Unknown levels sort lowest.
func (l Level) rank() int {
	switch l {
	case LevelError:
		return 2
	case LevelWarn:
		return 1
	default:
		return 0
	}
}

// Event is a single structured audit record. Immutable once emitted; sinks
// append it in emission order.
type Event struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Message   string         `json:"message"`
	Service   string         `json:"service"`
	Meta      map[string]any `json:"meta,omitempty"`
}
