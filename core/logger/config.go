package logger

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level logged: debug, info, warn or error.
	Level string `mapstructure:"level" default:"info"`
	// Format is the log encoding: console or json.
	Format string `mapstructure:"format" default:"console"`
}

// ParseLevel converts a configured level into a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return level, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// ValidateFormat checks a configured encoding. Empty means console.
func ValidateFormat(s string) error {
	switch s {
	case "", "console", "json":
		return nil
	default:
		return fmt.Errorf("log format %q: must be console or json", s)
	}
}
