package cmd

import (
	"github.com/ethpandaops/spike-report/internal/pipeline"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the console performance summary",
	Long:  `Prints the spike test performance summary without rendering any charts.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runReport(cmd, pipeline.ModeSummary, nil)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
