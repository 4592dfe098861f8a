// Package config loads basins configuration from a YAML file, environment
// variables and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/basins/basin"
	"github.com/katalvlaran/basins/heightmap"
	"github.com/katalvlaran/basins/logging"
)

// Sentinel validation errors.
var (
	ErrInvalidFrontier = errors.New("invalid frontier")
	ErrInvalidWorkers  = errors.New("workers must not be negative")
	ErrInvalidTopN     = errors.New("top_n must be positive")
	ErrInvalidRidge    = errors.New("ridge must be in [1,9]")
	ErrInvalidFormat   = errors.New("invalid output format")
	ErrInvalidScale    = errors.New("png_scale must be positive")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidLogFmt   = errors.New("invalid log format")
)

// EnvPrefix prefixes environment overrides, e.g. BASINS_ANALYSIS_TOP_N.
const EnvPrefix = "BASINS"

// Output formats of the analyze command.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Default configuration values.
const (
	defaultFrontier = "stack"
	defaultWorkers  = 0
	defaultTopN     = 3
	defaultPNGScale = 16
)

// Config holds all configuration for a basins run.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// AnalysisConfig tunes low-point and basin discovery.
type AnalysisConfig struct {
	Frontier string `mapstructure:"frontier"`
	Workers  int    `mapstructure:"workers"`
	TopN     int    `mapstructure:"top_n"`
	Ridge    int    `mapstructure:"ridge"`
}

// OutputConfig selects what the analyze command produces.
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Color     bool   `mapstructure:"color"`
	Map       bool   `mapstructure:"map"`
	PNG       string `mapstructure:"png"`
	PNGScale  int    `mapstructure:"png_scale"`
	Histogram string `mapstructure:"histogram"`
	Metrics   string `mapstructure:"metrics"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from configPath, or from basins.yaml in the
// current directory, ./config or $HOME/.config/basins when configPath is
// empty. A missing default file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("basins")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.config/basins")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Frontier: defaultFrontier,
			Workers:  defaultWorkers,
			TopN:     defaultTopN,
			Ridge:    heightmap.Ridge,
		},
		Output: OutputConfig{
			Format:   FormatTable,
			Color:    true,
			PNGScale: defaultPNGScale,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("analysis.frontier", d.Analysis.Frontier)
	v.SetDefault("analysis.workers", d.Analysis.Workers)
	v.SetDefault("analysis.top_n", d.Analysis.TopN)
	v.SetDefault("analysis.ridge", d.Analysis.Ridge)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("output.map", d.Output.Map)
	v.SetDefault("output.png", d.Output.PNG)
	v.SetDefault("output.png_scale", d.Output.PNGScale)
	v.SetDefault("output.histogram", d.Output.Histogram)
	v.SetDefault("output.metrics", d.Output.Metrics)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := basin.ParseFrontier(c.Analysis.Frontier); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFrontier, c.Analysis.Frontier)
	}
	if c.Analysis.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Analysis.Workers)
	}
	if c.Analysis.TopN <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTopN, c.Analysis.TopN)
	}
	if c.Analysis.Ridge <= heightmap.MinElevation || c.Analysis.Ridge > heightmap.MaxElevation {
		return fmt.Errorf("%w: %d", ErrInvalidRidge, c.Analysis.Ridge)
	}
	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}
	if c.Output.PNGScale <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidScale, c.Output.PNGScale)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	switch c.Logging.Format {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFmt, c.Logging.Format)
	}

	return nil
}

// BasinOptions converts the analysis section into explorer options.
// The config must already be valid.
func (c *Config) BasinOptions() []basin.Option {
	f, _ := basin.ParseFrontier(c.Analysis.Frontier)

	return []basin.Option{
		basin.WithFrontier(f),
		basin.WithWorkers(c.Analysis.Workers),
		basin.WithRidge(c.Analysis.Ridge),
	}
}
