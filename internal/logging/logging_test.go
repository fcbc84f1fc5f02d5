package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{" INFO ", log.InfoLevel},
		{"error", log.ErrorLevel},
		{"warn", log.WarnLevel},
		{"", log.WarnLevel},
		{"verbose", log.WarnLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, DefaultOptions())

	l.Info("hidden")
	l.Warn("shown", "key", "flowdo-items-v1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, Prefix) {
		t.Errorf("warn line missing message or prefix: %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowdo.log")
	l, closer, err := OpenFile(path, log.DebugLevel)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	l.Debug("reloaded", "count", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "reloaded") || !strings.Contains(string(data), "count=3") {
		t.Errorf("log file = %q", data)
	}
}
