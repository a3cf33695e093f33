package cmd

import (
	"strings"

	"github.com/ethpandaops/spike-report/internal/chart"
	"github.com/ethpandaops/spike-report/internal/pipeline"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [chart...]",
	Short: "Render charts without the console summary",
	Long: `Render some or all of the report charts.

Valid chart names: ` + strings.Join(chart.Names(), ", ") + `

With no names every chart is rendered, unless the config file or
SPIKE_REPORT_CHARTS selects a subset.

Examples:
  spike-report render
  spike-report render percentiles curve --dpi 150`,
	ValidArgs: chart.Names(),
	Args:      cobra.OnlyValidArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, pipeline.ModeRender, args)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
