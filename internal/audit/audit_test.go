package audit

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Logger_FileSinks_LevelRouting(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(Config{Dir: dir, Service: "cases-system"})
	require.NoError(t, err)

	logger.Info("Incoming Request: GET /api/cases", map[string]any{"ip": "127.0.0.1"})
	logger.Warn("Case Deleted", map[string]any{"caseId": "7"})
	logger.Error("Database Error (Get Cases)", map[string]any{"error": "connection refused"})
	logger.Close()

	combined := readEvents(t, filepath.Join(dir, "combined.log"))
	require.Len(t, combined, 3)
	assert.Equal(t, LevelInfo, combined[0].Level)
	assert.Equal(t, LevelWarn, combined[1].Level)
	assert.Equal(t, LevelError, combined[2].Level)
	for _, e := range combined {
		assert.Equal(t, "cases-system", e.Service)
		assert.False(t, e.Timestamp.IsZero())
	}

	errOnly := readEvents(t, filepath.Join(dir, "error.log"))
	require.Len(t, errOnly, 1)
	assert.Equal(t, "Database Error (Get Cases)", errOnly[0].Message)
	assert.Equal(t, "connection refused", errOnly[0].Meta["error"])
}

func Test_Logger_SinkFailureIsSwallowed(t *testing.T) {
	logger := NewWithSinks("cases-system", failingSink{})

	// Must not panic or propagate.
	logger.Error("Create Case Failed", map[string]any{"caseId": "1"})
	logger.Close()
}

func Test_MemorySink_OrderAndLookup(t *testing.T) {
	sink := NewMemorySink()
	logger := NewWithSinks("cases-system", sink)

	logger.Info("Login Successful", map[string]any{"role": "admin"})
	logger.Warn("Login Failed: Wrong password", nil)

	events := sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "Login Successful", events[0].Message)

	last, ok := sink.LastWithLevel(LevelWarn)
	require.True(t, ok)
	assert.Equal(t, "Login Failed: Wrong password", last.Message)

	_, ok = sink.LastWithLevel(LevelError)
	assert.False(t, ok)
}

func Test_FileSink_DropsBelowMinLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	sink, err := NewFileSink(path, LevelError)
	require.NoError(t, err)

	require.NoError(t, sink.Write(Event{Level: LevelInfo, Message: "noise"}))
	require.NoError(t, sink.Write(Event{Level: LevelWarn, Message: "still noise"}))
	require.NoError(t, sink.Write(Event{Level: LevelError, Message: "kept"}))
	require.NoError(t, sink.Close())

	events := readEvents(t, path)
	require.Len(t, events, 1)
	assert.Equal(t, "kept", events[0].Message)
}

func readEvents(t *testing.T, path string) []Event {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		events = append(events, e)
	}
	require.NoError(t, scanner.Err())
	return events
}

type failingSink struct{}

func (failingSink) Write(Event) error { return errors.New("disk full") }
func (failingSink) Close() error      { return nil }
