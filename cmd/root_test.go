package cmd

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/minhokang/baeum/internal/config"
)

func TestNewLogger_Formats(t *testing.T) {
	tests := []struct {
		format   string
		wantJSON bool
	}{
		{"text", false},
		{"json", true},
		{"", false},
	}
	for _, tt := range tests {
		cfg := &config.Config{}
		cfg.Log.Level = "debug"
		cfg.Log.Format = tt.format

		logger := newLogger(cfg)
		if logger.Level != logrus.DebugLevel {
			t.Errorf("format %q: level = %v, want debug", tt.format, logger.Level)
		}
		_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
		if isJSON != tt.wantJSON {
			t.Errorf("format %q: json formatter = %v, want %v", tt.format, isJSON, tt.wantJSON)
		}
	}
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "shouting"

	if logger := newLogger(cfg); logger.Level != logrus.InfoLevel {
		t.Errorf("level = %v, want info", logger.Level)
	}
}
