package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/dpa-navigator/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"", zapcore.InfoLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		logger, err := New(config.LoggingConfig{Level: "error", Format: "console"}, "debug")
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if !logger.Core().Enabled(zapcore.DebugLevel) {
			t.Error("expected the override to enable debug logging")
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		if _, err := New(config.LoggingConfig{Format: "xml"}, ""); err == nil {
			t.Error("expected an error for an unknown format")
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		if _, err := New(config.LoggingConfig{Level: "loud"}, ""); err == nil {
			t.Error("expected an error for an unknown level")
		}
	})

	t.Run("output file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "navigator.log")
		logger, err := New(config.LoggingConfig{Level: "info", OutputFile: path}, "")
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		logger.Info("hello")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		if len(data) == 0 {
			t.Error("expected the log line to be written to the file")
		}
	})
}
