package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

// ANSI colors matching each level, for development consoles.
var levelColors = map[Level]string{
	LevelInfo:  "\033[32m", // green
	LevelWarn:  "\033[33m", // yellow
	LevelError: "\033[31m", // red
}

const colorReset = "\033[0m"

// ConsoleSink prints events in a human-readable line format with per-level
// coloring. It keeps all levels.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleSink writes to stdout.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{out: os.Stdout}
}

// Write prints "TIMESTAMP [level]: message {meta}".
func (s *ConsoleSink) Write(e Event) error {
	color := levelColors[e.Level]
	line := fmt.Sprintf("%s %s[%s]%s: %s",
		e.Timestamp.Format("2006-01-02 15:04:05"), color, e.Level, colorReset, e.Message)
	if len(e.Meta) > 0 {
		if meta, err := json.Marshal(e.Meta); err == nil {
			line += " " + string(meta)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.out, line)
	return err
}

// Close is a no-op; stdout outlives the logger.
func (s *ConsoleSink) Close() error { return nil }
