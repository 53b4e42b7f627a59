// Package config loads the run parameters of the thuemorse CLI from a YAML
// file and validates them.
//
// File format:
//
//	k: 5              # window length
//	render_length: 20 # symbols to render, 0 to skip
//	format: text      # text | yaml | mermaid
//	log_level: info   # debug | info | warn | error
//
// A missing file yields Default(). Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thuemorse/internal/logging"
)

// ErrInvalidConfig indicates a value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Output formats understood by the report package.
const (
	FormatText    = "text"
	FormatYAML    = "yaml"
	FormatMermaid = "mermaid"
)

// Defaults.
const (
	DefaultK            = 5
	DefaultRenderLength = 0
	DefaultFormat       = FormatText
	DefaultLogLevel     = "info"
)

// Config is the full set of run parameters.
type Config struct {
	K            int    `yaml:"k"`
	RenderLength int    `yaml:"render_length"`
	Format       string `yaml:"format"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		K:            DefaultK,
		RenderLength: DefaultRenderLength,
		Format:       DefaultFormat,
		LogLevel:     DefaultLogLevel,
	}
}

// Load reads path over Default(). A missing file is not an error.
// Unknown keys are rejected so typos surface early.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field and returns ErrInvalidConfig on the first violation.
func (c Config) Validate() error {
	if c.K < 0 {
		return fmt.Errorf("%w: k must be ≥ 0, got %d", ErrInvalidConfig, c.K)
	}
	if c.RenderLength < 0 {
		return fmt.Errorf("%w: render_length must be ≥ 0, got %d", ErrInvalidConfig, c.RenderLength)
	}
	switch c.Format {
	case FormatText, FormatYAML, FormatMermaid:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
