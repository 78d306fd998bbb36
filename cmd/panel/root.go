package main

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BenjaNor/FinalProject/internal/config"
)

// envPrefix prefixes every environment override, e.g. PANEL_INPUTS_ASSETS.
const envPrefix = "PANEL"

var rootCmd = &cobra.Command{
	Use:           "panel",
	Version:       version,
	Short:         "Build a fundamentals feature panel from wide financial CSV exports",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	rootCmd.PersistentFlags().String("config", "", "Path to a panel TOML config file")
	bindFlag(rootCmd, "config", "config")

	// Logging configuration
	rootCmd.PersistentFlags().String("log-level", "", "Logging level: debug, info, warn, error")
	bindFlag(rootCmd, "log-level", "logging.level")

	rootCmd.PersistentFlags().String("log-format", "", "Log output format: console or json")
	bindFlag(rootCmd, "log-format", "logging.format")
}

// bindFlag binds the named flag of cmd and its PANEL_* environment
// variable to the viper key.
func bindFlag(cmd *cobra.Command, name, key string) {
	_ = viper.BindEnv(key)

	flag := cmd.PersistentFlags().Lookup(name)
	if flag == nil {
		flag = cmd.Flags().Lookup(name)
	}
	_ = viper.BindPFlag(key, flag)
}

// loadConfig reads the config file named by --config and applies flag and
// environment overrides on top. Priority: flags > env > file > defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, err
	}

	overrideString := func(key string, dst *string) {
		if viper.IsSet(key) && viper.GetString(key) != "" {
			*dst = viper.GetString(key)
		}
	}

	overrideString("inputs.assets", &cfg.Inputs.Assets)
	overrideString("inputs.cash", &cfg.Inputs.Cash)
	overrideString("inputs.equity", &cfg.Inputs.Equity)
	overrideString("inputs.profit", &cfg.Inputs.Profit)
	overrideString("inputs.revenue", &cfg.Inputs.Revenue)
	overrideString("inputs.prices", &cfg.Inputs.Prices)
	overrideString("parsing.mode", &cfg.Parsing.Mode)
	overrideString("output.features_csv", &cfg.Output.FeaturesCSV)
	overrideString("output.summary_markdown", &cfg.Output.SummaryMarkdown)
	overrideString("output.metrics_textfile", &cfg.Output.MetricsTextfile)
	overrideString("logging.level", &cfg.Logging.Level)
	overrideString("logging.format", &cfg.Logging.Format)

	if viper.IsSet("parsing.anchor_year") && viper.GetInt("parsing.anchor_year") != 0 {
		cfg.Parsing.AnchorYear = viper.GetInt("parsing.anchor_year")
	}
	if viper.GetBool("parsing.strict") {
		cfg.Parsing.Mode = "strict"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the CLI logger. Console output is human readable,
// json output is one event per line.
func newLogger(cfg config.LoggingConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
