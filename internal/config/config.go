// Package config loads fieldfft settings from embedded defaults and an
// optional YAML overlay.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-field/field/fft2d"
	"github.com/cwbudde/algo-field/field/view"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all fieldfft settings.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Transform TransformConfig `yaml:"transform"`
	View      ViewConfig      `yaml:"view"`
	Filter    FilterConfig    `yaml:"filter"`
	Output    OutputConfig    `yaml:"output"`
}

// InputConfig selects the source field. A non-empty Path loads a PNG;
// otherwise Pattern is synthesized at Width x Height.
type InputConfig struct {
	Path      string  `yaml:"path"`
	Pattern   string  `yaml:"pattern"` // impulse, noise, plane, ramp
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Seed      int64   `yaml:"seed"`
	Frequency float64 `yaml:"frequency"` // cycles per field for the plane pattern
}

// TransformConfig selects the FFT backend.
type TransformConfig struct {
	Backend string `yaml:"backend"`
}

// ViewConfig controls what is displayed and how.
type ViewConfig struct {
	Mode         string `yaml:"mode"`
	Normalize    bool   `yaml:"normalize"`
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
}

// FilterConfig describes an optional spectral mask.
type FilterConfig struct {
	Kind    string  `yaml:"kind"`    // none, lowpass, highpass, bandpass
	Profile string  `yaml:"profile"` // ideal, gaussian
	Low     float64 `yaml:"low"`     // band-pass inner radius
	High    float64 `yaml:"high"`    // cutoff radius, or band-pass outer radius
}

// OutputConfig controls written files.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Prefix    string `yaml:"prefix"`
	PNG       bool   `yaml:"png"`
	CSV       bool   `yaml:"csv"`
	Timestamp bool   `yaml:"timestamp"`
}

// Patterns lists the synthesizable input patterns.
var Patterns = []string{"impulse", "noise", "plane", "ramp"}

// FilterKinds lists the accepted filter kinds.
var FilterKinds = []string{"none", "lowpass", "highpass", "bandpass"}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load reads a YAML file over the embedded defaults and validates the result.
// If path is empty, only the defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks names and ranges.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		if !contains(Patterns, c.Input.Pattern) {
			return fmt.Errorf("config: unknown input pattern %q", c.Input.Pattern)
		}
		if c.Input.Width <= 0 || c.Input.Height <= 0 {
			return fmt.Errorf("config: input size must be > 0: %dx%d", c.Input.Width, c.Input.Height)
		}
	}
	if _, err := fft2d.ParseBackend(c.Transform.Backend); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := view.ParseMode(c.View.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.View.ScreenWidth <= 0 || c.View.ScreenHeight <= 0 {
		return fmt.Errorf("config: screen size must be > 0: %dx%d", c.View.ScreenWidth, c.View.ScreenHeight)
	}
	if !contains(FilterKinds, c.Filter.Kind) {
		return fmt.Errorf("config: unknown filter kind %q", c.Filter.Kind)
	}
	if c.Filter.Profile != "ideal" && c.Filter.Profile != "gaussian" {
		return fmt.Errorf("config: unknown filter profile %q", c.Filter.Profile)
	}
	if c.Filter.Low < 0 || c.Filter.High < 0 {
		return fmt.Errorf("config: filter radii must be >= 0: low=%f high=%f", c.Filter.Low, c.Filter.High)
	}
	if c.Filter.Kind == "bandpass" && c.Filter.Low > c.Filter.High {
		return fmt.Errorf("config: band-pass low %f exceeds high %f", c.Filter.Low, c.Filter.High)
	}
	return nil
}

// Backend returns the parsed FFT backend. Call after Validate.
func (c *Config) Backend() fft2d.Backend {
	b, _ := fft2d.ParseBackend(c.Transform.Backend)
	return b
}

// Mode returns the parsed view mode. Call after Validate.
func (c *Config) Mode() view.Mode {
	m, _ := view.ParseMode(c.View.Mode)
	return m
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
