// Package config loads the panel build configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/BenjaNor/FinalProject/internal/ingestion"
	"github.com/BenjaNor/FinalProject/internal/pipeline"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the panel build configuration.
type Config struct {
	Inputs  InputsConfig  `toml:"inputs"`
	Parsing ParsingConfig `toml:"parsing"`
	Output  OutputConfig  `toml:"output"`
	Logging LoggingConfig `toml:"logging"`
}

// InputsConfig names the six input CSV files.
type InputsConfig struct {
	Assets  string `toml:"assets"`
	Cash    string `toml:"cash"`
	Equity  string `toml:"equity"`
	Profit  string `toml:"profit"`
	Revenue string `toml:"revenue"`
	Prices  string `toml:"prices"`
}

// ParsingConfig controls year anchoring and numeric parsing.
type ParsingConfig struct {
	AnchorYear int    `toml:"anchor_year"` // year of the first value column
	Mode       string `toml:"mode"`        // "lenient" or "strict"
}

// OutputConfig lists optional output files. Empty paths are not written.
type OutputConfig struct {
	FeaturesCSV     string `toml:"features_csv"`
	SummaryMarkdown string `toml:"summary_markdown"`
	MetricsTextfile string `toml:"metrics_textfile"` // node-exporter textfile format
}

// LoggingConfig sets the CLI log level and output format.
type LoggingConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "console" or "json"
}

// Default returns the configuration used when no file is given.
// Input paths match the file names of the original exports.
func Default() *Config {
	return &Config{
		Inputs: InputsConfig{
			Assets:  "data_assets.csv",
			Cash:    "data_cash.csv",
			Equity:  "data_equity.csv",
			Profit:  "data_profit.csv",
			Revenue: "data_revenue.csv",
			Prices:  "stock_prices.csv",
		},
		Parsing: ParsingConfig{
			AnchorYear: ingestion.DefaultAnchorYear,
			Mode:       ingestion.ParseLenient.String(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if err := c.Paths().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Parsing.AnchorYear <= 0 {
		return fmt.Errorf("%w: anchor_year must be positive, got %d", ErrInvalidConfig, c.Parsing.AnchorYear)
	}
	if _, err := c.ParseMode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// Paths converts the inputs section into pipeline paths.
func (c *Config) Paths() pipeline.Paths {
	return pipeline.Paths{
		Assets:  c.Inputs.Assets,
		Cash:    c.Inputs.Cash,
		Equity:  c.Inputs.Equity,
		Profit:  c.Inputs.Profit,
		Revenue: c.Inputs.Revenue,
		Prices:  c.Inputs.Prices,
	}
}

// ParseMode returns the configured ingestion.ParseMode.
func (c *Config) ParseMode() (ingestion.ParseMode, error) {
	return ingestion.ParseParseMode(c.Parsing.Mode)
}

// LogLevel returns the configured zerolog level. Empty means info.
func (c *Config) LogLevel() (zerolog.Level, error) {
	if c.Logging.Level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(c.Logging.Level)
}
