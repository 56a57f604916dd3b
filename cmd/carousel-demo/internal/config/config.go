// Package config loads the optional carousel.yaml configuration for
// the demo bootstrap.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/carousel/pkg/carousel"
)

// Config represents the optional carousel.yaml file. Pointer fields
// distinguish "absent" from an explicit false, so absent keys keep the
// widget defaults.
type Config struct {
	Container  string `yaml:"container,omitempty"`
	Slides     string `yaml:"slides,omitempty"`
	Controls   *bool  `yaml:"controls,omitempty"`
	Pagination *bool  `yaml:"pagination,omitempty"`
	Autoplay   *bool  `yaml:"autoplay,omitempty"`
	IntervalMS int    `yaml:"interval_ms,omitempty"`
}

// Default selectors for the embedded demo page.
const (
	DefaultContainer = "#carousel"
	DefaultSlides    = ".slide"
)

// LoadOptional reads a carousel.yaml if present. A missing file yields
// an empty config.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve loads the file (if present) and applies it on top of the
// widget defaults.
func Resolve(path string) (carousel.Config, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return carousel.Config{}, err
	}

	out := carousel.DefaultConfig()
	out.Container = DefaultContainer
	out.Slides = DefaultSlides

	if cfg.Container != "" {
		out.Container = cfg.Container
	}
	if cfg.Slides != "" {
		out.Slides = cfg.Slides
	}
	if cfg.Controls != nil {
		out.Controls = *cfg.Controls
	}
	if cfg.Pagination != nil {
		out.Pagination = *cfg.Pagination
	}
	if cfg.Autoplay != nil {
		out.Autoplay = *cfg.Autoplay
	}
	if cfg.IntervalMS > 0 {
		out.Interval = time.Duration(cfg.IntervalMS) * time.Millisecond
	}
	return out, nil
}
