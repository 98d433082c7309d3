package logging

import (
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWriterLoggerLevelFilter(t *testing.T) {
	var buf strings.Builder
	log := New(Config{Level: LevelWarn, Output: &buf})

	log.Debugf("hidden %d", 1)
	log.Infof("hidden %d", 2)
	log.Warnf("shown %d", 3)
	log.Errorf("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "shown 3") || !strings.Contains(out, "shown 4") {
		t.Errorf("output missing expected messages: %q", out)
	}
}

func TestWriterLoggerPrefix(t *testing.T) {
	var buf strings.Builder
	log := New(Config{Level: LevelDebug, Output: &buf, Prefix: "engine"})

	log.Infof("ready")

	if !strings.Contains(buf.String(), "engine: ready") {
		t.Errorf("output missing prefix: %q", buf.String())
	}
}

func TestNopDoesNothing(t *testing.T) {
	// Must not panic.
	log := Nop()
	log.Debugf("a")
	log.Infof("b %d", 1)
	log.Warnf("c")
	log.Errorf("d")
}
