// YAML configuration for the earclip command.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Canvas  Canvas `yaml:"canvas"`
	Shading bool   `yaml:"shading"`
	Gasket  Gasket `yaml:"gasket"`
	Output  Output `yaml:"output"`
}

type Canvas struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	PointSize float64 `yaml:"point_size"`

	// Hex colors, "#rrggbb"
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

type Gasket struct {
	Points int `yaml:"points"`

	// Zero means seed from the clock
	Seed int64 `yaml:"seed"`
}

type Output struct {
	PNG     string `yaml:"png"`
	GeoJSON string `yaml:"geojson"`
	Preview bool   `yaml:"preview"`
}

func Default() *Config {
	return &Config{
		Canvas: Canvas{
			Width:      512,
			Height:     512,
			PointSize:  3,
			Background: "#000000",
			Foreground: "#00ffff",
		},
		Shading: true,
		Gasket: Gasket{
			Points: 5000,
		},
		Output: Output{
			PNG: "earclip.png",
		},
	}
}

// Load a config file over the defaults. Fields missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.PointSize <= 0 {
		return errors.Errorf("point size must be positive, got %g", c.Canvas.PointSize)
	}
	if c.Gasket.Points < 0 {
		return errors.Errorf("gasket point count must not be negative, got %d", c.Gasket.Points)
	}
	return nil
}

// Marshal the config back to YAML, for `earclip config`.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "marshal config")
	}
	return data, nil
}
