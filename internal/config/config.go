// Package config loads dashboard settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SumitKSinghDev/india-growth-dashboard/internal/format"
	"github.com/SumitKSinghDev/india-growth-dashboard/internal/logging"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/generator"
)

// Config is the dashboard's runtime configuration.
type Config struct {
	// Seed fixes the generator. 0 draws fresh data on every run.
	Seed int64 `yaml:"seed"`
	// Catalog is a catalog YAML path; empty uses the built-in catalog.
	Catalog string    `yaml:"catalog"`
	Years   YearRange `yaml:"years"`
	Horizon int       `yaml:"horizon"`
	Log     LogConfig `yaml:"log"`
	Output  string    `yaml:"output"`
}

// YearRange is the inclusive span of the generated time series.
type YearRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	years := generator.DefaultYears
	return Config{
		Years:   YearRange{Start: years[0], End: years[len(years)-1]},
		Horizon: 3,
		Log:     LogConfig{Level: "info", Format: "text"},
		Output:  "ascii",
	}
}

// Load reads path over Default. A missing file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Years.End < c.Years.Start {
		errs = append(errs, fmt.Errorf("years: end %d is before start %d", c.Years.End, c.Years.Start))
	}
	if c.Horizon < 1 {
		errs = append(errs, fmt.Errorf("horizon: %d must be at least 1", c.Horizon))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Format != "" && c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format: %q must be text or json", c.Log.Format))
	}
	if _, err := format.ParseMode(c.Output); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}
	return errors.Join(errs...)
}

// YearList expands Years.
func (c Config) YearList() []int {
	return generator.YearsBetween(c.Years.Start, c.Years.End)
}
