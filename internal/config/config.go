// Package config provides configuration for fengate.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/fengate/internal/errors"
	"github.com/lgbarn/fengate/internal/notation"
)

// Config holds all program configuration.
type Config struct {
	// LogLevel is the logrus level applied at startup.
	LogLevel logrus.Level

	// StartPosition is the notation decoded when a game is set up.
	StartPosition string

	// SpriteDir is prepended to every piece sprite name.
	SpriteDir string

	// Workers is the number of goroutines used by batch processing.
	Workers int

	// Output holds settings related to output formatting.
	Output *OutputConfig

	// LogFile receives diagnostics that are not part of the command output.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		LogLevel:      logrus.InfoLevel,
		StartPosition: notation.InitialPlacement,
		Workers:       4,
		Output:        NewOutputConfig(),
		LogFile:       os.Stderr,
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if issues := notation.Validate(c.StartPosition); len(issues) > 0 {
		return fmt.Errorf("start position %q: %v: %w", c.StartPosition, issues[0], errors.ErrInvalidConfig)
	}
	if c.Output == nil {
		return fmt.Errorf("missing output settings: %w", errors.ErrInvalidConfig)
	}
	return nil
}
