package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/BenjaNor/FinalProject/internal/config"
	"github.com/BenjaNor/FinalProject/internal/pipeline"
)

// sampleConfigFile is written next to the sample inputs.
const sampleConfigFile = "panel.toml"

func init() {
	rootCmd.AddCommand(sampleCmd)
}

var sampleCmd = &cobra.Command{
	Use:   "sample DIR",
	Short: "Write sample input CSVs and a matching config file into DIR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		paths, err := pipeline.WriteSampleInputs(dir)
		if err != nil {
			return err
		}

		cfg := config.Default()
		cfg.Inputs = config.InputsConfig{
			Assets:  paths.Assets,
			Cash:    paths.Cash,
			Equity:  paths.Equity,
			Profit:  paths.Profit,
			Revenue: paths.Revenue,
			Prices:  paths.Prices,
		}
		cfg.Output.FeaturesCSV = filepath.Join(dir, "features.csv")
		cfg.Output.SummaryMarkdown = filepath.Join(dir, "summary.md")

		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encode sample config: %w", err)
		}
		cfgPath := filepath.Join(dir, sampleConfigFile)
		if err := os.WriteFile(cfgPath, data, 0644); err != nil {
			return fmt.Errorf("write sample config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Sample inputs written to %s\nRun: panel build --config %s\n", dir, cfgPath)
		return nil
	},
}
