package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCLIModeWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("Test", "hidden %d", 1)
	Info("Test", "visible %d", 2)
	Error("Test", errors.New("boom"), "failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "visible 2")
	assert.Contains(t, out, "subsystem=Test")
	assert.Contains(t, out, "error=boom")
}

func TestTUIModeDeliversEntries(t *testing.T) {
	ch := Initcommon("tui", LevelInfo, nil, 4)
	defer CloseTUIChannel()

	Debug("Fetcher", "filtered")
	Warn("Fetcher", "slow response from %s", "boards")

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "Fetcher", entry.Subsystem)
		assert.Equal(t, "slow response from boards", entry.Message)
	case <-time.After(time.Second):
		t.Fatal("expected a log entry on the TUI channel")
	}
}

func TestTUIModeDropsWhenFull(t *testing.T) {
	Initcommon("tui", LevelDebug, nil, 1)
	defer CloseTUIChannel()

	Info("Test", "one")
	Info("Test", "two")
	Info("Test", "three")

	assert.Equal(t, int64(2), Dropped())
}

func TestLogEntryFormat(t *testing.T) {
	entry := LogEntry{
		Timestamp: time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC),
		Level:     LevelError,
		Subsystem: "Session",
		Message:   "fetch failed",
		Err:       errors.New("timeout"),
	}
	line := entry.Format()
	assert.True(t, strings.HasPrefix(line, "13:04:05 [ERROR] [Session]"))
	assert.True(t, strings.HasSuffix(line, "fetch failed: timeout"))
}
