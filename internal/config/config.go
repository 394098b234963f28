// SPDX-License-Identifier: MIT

// Package config loads matcalc settings from a TOML file.
//
// Lookup order for the file:
//  1. the explicit path (--config),
//  2. $MATCALC_CONFIG,
//  3. ./matcalc.toml,
//  4. $HOME/.config/matcalc/config.toml.
//
// An explicit or environment path must exist. When neither is set and no
// default file is found, Default() is used. Keys missing from the file keep
// their default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/matcalc/format"
	"github.com/katalvlaran/matcalc/matrix"
)

// EnvPath names the environment variable holding a config path.
const EnvPath = "MATCALC_CONFIG"

const (
	localFile = "matcalc.toml"
	userDir   = ".config/matcalc"
	userFile  = "config.toml"
)

// ErrInvalid marks a configuration that decoded but failed Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the complete application configuration.
type Config struct {
	Calc    CalcConfig    `toml:"calc"`
	Log     LogConfig     `toml:"log"`
	Display DisplayConfig `toml:"display"`

	// Path is the file the configuration was read from ("" for defaults).
	Path string `toml:"-"`
}

// CalcConfig holds the defaults of a computation.
type CalcConfig struct {
	Operation   matrix.Operation `toml:"operation"`
	Mode        format.Mode      `toml:"mode"`
	StrictParse bool             `toml:"strict_parse"`
	MaxExponent int              `toml:"max_exponent"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DisplayConfig holds presenter settings.
type DisplayConfig struct {
	Color     bool `toml:"color"`
	ShowTrace bool `toml:"show_trace"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Calc: CalcConfig{
			Operation:   matrix.OpAdd,
			Mode:        format.Decimal,
			MaxExponent: 64,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Display: DisplayConfig{
			Color:     true,
			ShowTrace: true,
		},
	}
}

// Load reads the configuration from path, layered over Default().
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve finds the configuration file for explicit. ok is false when no
// file applies and defaults should be used.
func Resolve(explicit string) (path string, ok bool, err error) {
	for _, p := range []string{explicit, os.Getenv(EnvPath)} {
		if p == "" {
			continue
		}
		p = os.ExpandEnv(p)
		if _, err := os.Stat(p); err != nil {
			return "", false, fmt.Errorf("config: %w", err)
		}
		return p, true, nil
	}

	candidates := []string{localFile}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, userDir, userFile))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, true, nil
		}
	}

	return "", false, nil
}

// Discover resolves and loads the configuration, falling back to Default().
func Discover(explicit string) (*Config, error) {
	path, ok, err := Resolve(explicit)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}

	return Load(path)
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	var errs []error
	if !c.Calc.Operation.Valid() {
		errs = append(errs, fmt.Errorf("%w: calc.operation %v", ErrInvalid, c.Calc.Operation))
	}
	if _, err := c.Calc.Mode.MarshalText(); err != nil {
		errs = append(errs, fmt.Errorf("%w: calc.mode %v", ErrInvalid, c.Calc.Mode))
	}
	if c.Calc.MaxExponent < 0 {
		errs = append(errs, fmt.Errorf("%w: calc.max_exponent %d < 0", ErrInvalid, c.Calc.MaxExponent))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format))
	}

	return errors.Join(errs...)
}
