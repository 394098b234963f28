// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the command line tools.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FormatConsole is the human-readable development encoder.
	FormatConsole = "console"
	// FormatJSON is the production JSON encoder.
	FormatJSON = "json"
)

// New returns a logger writing to stderr at level in the given format.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	var cfg zap.Config
	switch strings.ToLower(format) {
	case FormatConsole, "":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case FormatJSON:
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }
