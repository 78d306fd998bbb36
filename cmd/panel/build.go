package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BenjaNor/FinalProject/internal/observability"
	"github.com/BenjaNor/FinalProject/internal/pipeline"
	"github.com/BenjaNor/FinalProject/internal/reporting"
)

func init() {
	rootCmd.AddCommand(buildCmd)

	flags := buildCmd.Flags()

	// Inputs
	flags.String("assets", "", "Wide CSV of total assets per ticker and year")
	bindFlag(buildCmd, "assets", "inputs.assets")
	flags.String("cash", "", "Wide CSV of cash per ticker and year")
	bindFlag(buildCmd, "cash", "inputs.cash")
	flags.String("equity", "", "Wide CSV of equity per ticker and year")
	bindFlag(buildCmd, "equity", "inputs.equity")
	flags.String("profit", "", "Wide CSV of profit per ticker and year")
	bindFlag(buildCmd, "profit", "inputs.profit")
	flags.String("revenue", "", "Wide CSV of revenue per ticker and year")
	bindFlag(buildCmd, "revenue", "inputs.revenue")
	flags.String("prices", "", "Monthly price history CSV (index, Date, one column per ticker)")
	bindFlag(buildCmd, "prices", "inputs.prices")

	// Parsing
	flags.Int("anchor-year", 0, "Fiscal year of the first value column (default 2022)")
	bindFlag(buildCmd, "anchor-year", "parsing.anchor_year")
	flags.Bool("strict", false, "Fail on malformed numbers and treat empty cells as missing")
	bindFlag(buildCmd, "strict", "parsing.strict")

	// Outputs
	flags.String("out", "", "Write the feature matrix and labels as CSV (default stdout)")
	bindFlag(buildCmd, "out", "output.features_csv")
	flags.String("summary", "", "Write a Markdown run summary")
	bindFlag(buildCmd, "summary", "output.summary_markdown")
	flags.String("metrics-file", "", "Write run metrics in node-exporter textfile format")
	bindFlag(buildCmd, "metrics-file", "output.metrics_textfile")
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the feature matrix and label vector",
	Long: `Load the five wide financial CSVs and the price history, join them per
ticker and year, compute year-over-year deltas and emit one labelled feature
row per ticker-year with enough history.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Logging, cmd.ErrOrStderr())

	mode, err := cfg.ParseMode()
	if err != nil {
		return err
	}
	metrics := observability.NewMetrics("", nil)

	logger.Info().
		Str("config", viper.GetString("config")).
		Int("anchor_year", cfg.Parsing.AnchorYear).
		Str("mode", mode.String()).
		Msg("starting panel build")

	result, runErr := pipeline.New(cfg.Paths(), pipeline.Options{
		AnchorYear: cfg.Parsing.AnchorYear,
		Mode:       mode,
		Logger:     &logger,
		Metrics:    metrics,
	}).Run(cmd.Context())

	// Metrics are exported for failed runs too
	if path := cfg.Output.MetricsTextfile; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("could not write metrics textfile")
		}
	}
	if runErr != nil {
		return fmt.Errorf("panel build: %w", runErr)
	}

	if path := cfg.Output.FeaturesCSV; path != "" {
		if err := reporting.WriteFeatureCSV(path, result.Features); err != nil {
			return err
		}
		logger.Info().Str("path", path).Int("rows", result.Features.Len()).Msg("wrote feature csv")
	} else {
		fmt.Fprint(cmd.OutOrStdout(), reporting.RenderFeatureCSV(result.Features))
	}

	if path := cfg.Output.SummaryMarkdown; path != "" {
		summary := reporting.NewGenerator().Generate(result)
		if err := reporting.WriteSummaryMarkdown(path, summary); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("wrote run summary")
	}

	return nil
}
