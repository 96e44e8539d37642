// Package config loads a pricing scenario from a file, with environment
// overrides. It is one face of the parameter-source boundary: nothing leaves
// this package without passing params validation.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/william92380/option-models-comparison/internal/compare"
	"github.com/william92380/option-models-comparison/internal/params"
)

// Config represents a complete pricing scenario file.
type Config struct {
	Option     OptionConfig     `mapstructure:"option"`
	Comparison ComparisonConfig `mapstructure:"comparison"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// OptionConfig holds the raw pricing inputs as they appear in the file.
type OptionConfig struct {
	Spot       float64 `mapstructure:"spot"`
	Strike     float64 `mapstructure:"strike"`
	Maturity   float64 `mapstructure:"maturity"`
	Rate       float64 `mapstructure:"rate"`
	Volatility float64 `mapstructure:"volatility"`
	Steps      int     `mapstructure:"steps"`
	Kind       string  `mapstructure:"kind"`
	Style      string  `mapstructure:"style"`
}

// ComparisonConfig holds the benchmark comparison settings.
type ComparisonConfig struct {
	ThresholdPct float64 `mapstructure:"threshold_pct"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Verbosity int `mapstructure:"verbosity"`
}

// Load reads a scenario from path. Environment variables prefixed with
// OPTION_PRICER_ override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	v.SetEnvPrefix("OPTION_PRICER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("option.kind", "call")
	v.SetDefault("option.style", "european")
	v.SetDefault("option.steps", 100)
	v.SetDefault("comparison.threshold_pct", compare.DefaultThresholdPct)
	v.SetDefault("logging.verbosity", 1)
}

// Parameters converts the option section into a validated core value.
func (c *Config) Parameters() (params.Parameters, error) {
	kind, err := params.ParseKind(c.Option.Kind)
	if err != nil {
		return params.Parameters{}, err
	}
	style, err := params.ParseStyle(c.Option.Style)
	if err != nil {
		return params.Parameters{}, err
	}
	p := params.Parameters{
		Spot:       c.Option.Spot,
		Strike:     c.Option.Strike,
		Maturity:   c.Option.Maturity,
		Rate:       c.Option.Rate,
		Volatility: c.Option.Volatility,
		Steps:      c.Option.Steps,
		Kind:       kind,
		Style:      style,
	}
	if err := p.Validate(); err != nil {
		return params.Parameters{}, err
	}
	return p, nil
}
