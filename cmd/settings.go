package cmd

import (
	"fmt"

	"github.com/ethpandaops/spike-report/internal/config"
	"github.com/spf13/cobra"
)

type reportFlags struct {
	input      string
	outputDir  string
	configFile string
	workers    int
	dpi        int
	verbose    bool
}

func addReportFlags(cmd *cobra.Command, f *reportFlags) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.input, "input", "i", config.DefaultInput, "k6 summary JSON to read")
	flags.StringVarP(&f.outputDir, "output-dir", "o", config.DefaultOutputDir, "directory charts are written to")
	flags.StringVarP(&f.configFile, "config", "c", "", "optional YAML file with report settings")
	flags.IntVarP(&f.workers, "workers", "w", config.DefaultWorkers, "charts rendered in parallel")
	flags.IntVar(&f.dpi, "dpi", config.DefaultDPI, "chart resolution")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
}

// loadSettings merges environment, YAML file and explicitly set flags, in
// that order, and validates the result.
func loadSettings(cmd *cobra.Command, f *reportFlags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if f.configFile != "" {
		if err := cfg.MergeFile(f.configFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = f.input
	}

	if flags.Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}

	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}

	if flags.Changed("dpi") {
		cfg.DPI = f.dpi
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
