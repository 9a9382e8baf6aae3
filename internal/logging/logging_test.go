package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tt.level, "snake")
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			logger.Debug("debug line")
			logger.Info("info line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, expected %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "info line"); got != tt.wantInfo {
				t.Errorf("info logged = %v, expected %v", got, tt.wantInfo)
			}
		})
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud", ""); err == nil {
		t.Error("New(loud) expected error")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")
	logger, closeFn, err := Open(path, "info", "snake")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	logger.Info("hello", "tick", 3)
	if err := closeFn(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected it to contain hello", data)
	}
}

func TestOpenDiscard(t *testing.T) {
	logger, closeFn, err := Open("", "debug", "")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	logger.Debug("dropped")
	if err := closeFn(); err != nil {
		t.Errorf("close error = %v", err)
	}
}
