// Package logging builds the application's zap loggers from a
// schema-friendly configuration.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config provides a JSON-schema friendly configuration for logging that can
// be converted to a zap.Config when needed.
type Config struct {
	// Level is the minimum enabled logging level (debug, info, warn, error, dpanic, panic, fatal)
	Level string `json:"level,omitempty"`
	// Development puts the logger in development mode
	Development bool `json:"development,omitempty"`
	// DisableCaller stops annotating logs with the calling function's file name and line number
	DisableCaller bool `json:"disableCaller,omitempty"`
	// DisableStacktrace completely disables automatic stacktrace capturing
	DisableStacktrace bool `json:"disableStacktrace,omitempty"`
	// Encoding sets the logger's encoding ("json" or "console")
	Encoding string `json:"encoding,omitempty"`
	// OutputPaths is a list of URLs or file paths to write logging output to
	OutputPaths []string `json:"outputPaths,omitempty"`
	// ErrorOutputPaths is a list of URLs to write internal logger errors to
	ErrorOutputPaths []string `json:"errorOutputPaths,omitempty"`
	// InitialFields is a collection of fields to add to the root logger
	InitialFields map[string]interface{} `json:"initialFields,omitempty"`
}

// toZapConfig converts the schema-friendly Config to a zap.Config
func (c *Config) toZapConfig() (zap.Config, error) {
	var config zap.Config

	// Console encoding implies the development preset, which reads better in
	// a terminal
	switch c.Encoding {
	case "console":
		config = zap.NewDevelopmentConfig()
	default:
		config = zap.NewProductionConfig()
	}

	if c.Level != "" {
		level, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return config, fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}
		config.Level = zap.NewAtomicLevelAt(level)
	}

	if c.Encoding != "" {
		config.Encoding = c.Encoding
	}

	config.Development = c.Development
	config.DisableCaller = c.DisableCaller
	config.DisableStacktrace = c.DisableStacktrace

	if len(c.OutputPaths) > 0 {
		config.OutputPaths = c.OutputPaths
	}

	if len(c.ErrorOutputPaths) > 0 {
		config.ErrorOutputPaths = c.ErrorOutputPaths
	}

	if c.InitialFields != nil {
		config.InitialFields = c.InitialFields
	}

	return config, nil
}

// Build creates a logger from the configuration. This should be called once
// at application startup and the resulting logger reused for the
// application's lifetime.
func (c *Config) Build() (*zap.Logger, error) {
	config, err := c.toZapConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to convert to zap config: %w", err)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return logger, nil
}
