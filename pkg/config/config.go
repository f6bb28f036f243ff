package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/willbeason/escape-time/pkg/escape"
)

// Config holds the settings shared by the escape-time tools.
type Config struct {
	// Environment selects the logger setup. Only "development" enables debug output.
	Environment string `env:"ENVIRONMENT" env-default:"production" yaml:"environment"`

	Escape struct {
		// RadiusSquared is the threshold on |z|^2 past which a point has diverged.
		RadiusSquared float64 `env:"ESCAPE_RADIUS_SQUARED" env-default:"4.0" yaml:"radiusSquared"`
		// MaxIterations caps the number of recurrence steps per point.
		MaxIterations int `env:"ESCAPE_MAX_ITERATIONS" env-default:"1000" yaml:"maxIterations"`
	} `yaml:"escape"`
}

// Load reads the yaml config file at configPath, then applies environment
// overrides. An empty path reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// Params returns the escape section as evaluator parameters.
func (c *Config) Params() escape.Params {
	return escape.Params{
		EscapeRadiusSquared: c.Escape.RadiusSquared,
		MaxIterations:       c.Escape.MaxIterations,
	}
}
