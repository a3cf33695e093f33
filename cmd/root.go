// Package cmd contains CLI command definitions
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethpandaops/spike-report/internal/actions"
	"github.com/ethpandaops/spike-report/internal/pipeline"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Logger is the shared logger instance for all commands
	Logger *logrus.Logger

	opts reportFlags

	rootCmd = &cobra.Command{
		Use:   "spike-report",
		Short: "Spike Report - charts and summary for k6 spike tests",
		Long: `Spike Report turns a k6 end-of-test summary (spike_results.json) into six
PNG charts and a console performance summary.

Run without arguments to render every chart and print the summary, or use
subcommands for a single part of the report.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setVerbose(Logger, opts.verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, pipeline.ModeAll, nil)
		},
	}
)

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	// Load .env file if it exists
	_ = godotenv.Load()

	InitLogger()

	addReportFlags(rootCmd, &opts)
}

// runReport resolves settings for cmd and runs the pipeline. A non-empty
// charts slice replaces the configured selection.
func runReport(cmd *cobra.Command, mode pipeline.Mode, charts []string) error {
	cfg, err := loadSettings(cmd, &opts)
	if err != nil {
		return err
	}

	if len(charts) > 0 {
		cfg.Charts = charts
	}

	return actions.Report(cmd.Context(), Logger, cfg, cmd.OutOrStdout(), opts.verbose, mode)
}
