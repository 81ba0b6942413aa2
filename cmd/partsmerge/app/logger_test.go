package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		want   string
	}{
		{"default", &Config{LogLevel: "info"}, "info"},
		{"explicit level wins", &Config{LogLevel: "error", Verbose: true}, "error"},
		{"verbose", &Config{LogLevel: "info", Verbose: true}, "debug"},
		{"quiet", &Config{LogLevel: "info", Quiet: true}, "warn"},
		{"both prefers quiet", &Config{LogLevel: "info", Verbose: true, Quiet: true}, "warn"},
		{"invalid level falls back", &Config{LogLevel: "loud"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(tt.config))
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	logger := NewLogger(&Config{LogLevel: "warn", LogFormat: "json"})
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}
