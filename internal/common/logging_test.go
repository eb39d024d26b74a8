package common

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNewLoggerWithOutput_FiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput("warn", &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Str("code", "no_period_row").Msg("shown")

	out := buf.String()
	if bytes.Contains(buf.Bytes(), []byte("hidden")) {
		t.Errorf("info message written at warn level: %s", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"code":"no_period_row"`)) {
		t.Errorf("warn message missing field: %s", out)
	}
}

func TestNewSilentLogger(t *testing.T) {
	logger := NewSilentLogger()
	logger.Error().Msg("dropped")
	if logger.Zerolog() == nil {
		t.Error("Zerolog() returned nil")
	}
}
