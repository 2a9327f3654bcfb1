package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"planreport/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		verbose bool
		want    zapcore.Level
	}{
		{"production info", config.LoggingConfig{Level: "info"}, false, zapcore.InfoLevel},
		{"development warn", config.LoggingConfig{Level: "warn", Development: true}, false, zapcore.WarnLevel},
		{"verbose overrides level", config.LoggingConfig{Level: "error"}, true, zapcore.DebugLevel},
		{"empty level is info", config.LoggingConfig{}, false, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg, tt.verbose)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := logger.Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(config.LoggingConfig{Level: "loud"}, false); err == nil {
		t.Error("New() expected error for unknown level")
	}
}
