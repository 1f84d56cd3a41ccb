// Package config loads the sortviz command-line defaults from an optional
// TOML file and SORTVIZ_* environment variables.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/sortviz/gen"
	"github.com/katalvlaran/sortviz/sorting"
	"github.com/katalvlaran/sortviz/trace"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables that override file values.
const (
	EnvAlgorithm = "SORTVIZ_ALGORITHM"
	EnvDelay     = "SORTVIZ_DELAY"
	EnvWidth     = "SORTVIZ_WIDTH"
	EnvColor     = "SORTVIZ_COLOR"
)

// Config holds the defaults a command falls back to when a flag is unset.
type Config struct {
	Algorithm string
	Delay     time.Duration
	Width     int
	Color     bool
	Format    string
	Generator string
	Size      int
	Seed      int64
}

// file is the on-disk TOML shape; nil fields keep the current value.
type file struct {
	Algorithm *string `toml:"algorithm"`
	Delay     *string `toml:"delay"`
	Width     *int    `toml:"width"`
	Color     *bool   `toml:"color"`
	Format    *string `toml:"format"`
	Generator *string `toml:"generator"`
	Size      *int    `toml:"size"`
	Seed      *int64  `toml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Algorithm: string(sorting.BubbleSort),
		Delay:     100 * time.Millisecond,
		Width:     0,
		Color:     true,
		Format:    string(trace.Text),
		Generator: string(gen.Random),
		Size:      16,
		Seed:      1,
	}
}

// Load returns Default() overlaid with the TOML file at path (if path is
// non-empty and the file exists) and then with the environment.
// The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return Config{}, errors.Wrapf(err, "read config %s", path)
		default:
			if err := decode(data, &cfg); err != nil {
				return Config{}, errors.Wrapf(err, "parse config %s", path)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode strictly unmarshals TOML and overlays the keys present onto cfg.
// Unknown keys are errors.
func decode(data []byte, cfg *Config) error {
	var f file
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return err
	}

	if f.Algorithm != nil {
		cfg.Algorithm = *f.Algorithm
	}
	if f.Delay != nil {
		d, err := time.ParseDuration(*f.Delay)
		if err != nil {
			return errors.Wrap(err, "delay")
		}
		cfg.Delay = d
	}
	if f.Width != nil {
		cfg.Width = *f.Width
	}
	if f.Color != nil {
		cfg.Color = *f.Color
	}
	if f.Format != nil {
		cfg.Format = *f.Format
	}
	if f.Generator != nil {
		cfg.Generator = *f.Generator
	}
	if f.Size != nil {
		cfg.Size = *f.Size
	}
	if f.Seed != nil {
		cfg.Seed = *f.Seed
	}
	return nil
}

// applyEnv overrides fields from lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAlgorithm); ok && v != "" {
		c.Algorithm = v
	}
	if v, ok := lookup(EnvDelay); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvDelay)
		}
		c.Delay = d
	}
	if v, ok := lookup(EnvWidth); ok && v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvWidth)
		}
		c.Width = w
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvColor)
		}
		c.Color = b
	}
	return nil
}

// Validate checks every field and reports the first problem wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := sorting.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: algorithm: %v", ErrInvalidConfig, err)
	}
	if _, err := trace.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %v", ErrInvalidConfig, err)
	}
	if _, err := gen.ParseKind(c.Generator); err != nil {
		return fmt.Errorf("%w: generator: %v", ErrInvalidConfig, err)
	}
	switch {
	case c.Delay < 0:
		return fmt.Errorf("%w: delay %s is negative", ErrInvalidConfig, c.Delay)
	case c.Width < 0:
		return fmt.Errorf("%w: width %d is negative", ErrInvalidConfig, c.Width)
	case c.Size < 0:
		return fmt.Errorf("%w: size %d is negative", ErrInvalidConfig, c.Size)
	}
	return nil
}
