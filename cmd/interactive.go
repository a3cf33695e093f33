package cmd

import (
	"errors"
	"fmt"

	"github.com/ethpandaops/spike-report/internal/actions"
	"github.com/ethpandaops/spike-report/internal/interactive"
	"github.com/ethpandaops/spike-report/internal/pipeline"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive mode",
	Long:  `Launches a terminal menu for picking which charts to render and viewing the summary.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runInteractive(cmd)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command) error {
	cfg, err := loadSettings(cmd, &opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Spike Report - Interactive Mode")
	fmt.Fprintln(out, "===============================")
	fmt.Fprintln(out)

	report := func(mode pipeline.Mode) error {
		if err := actions.Report(cmd.Context(), Logger, cfg, out, opts.verbose, mode); err != nil {
			fmt.Fprintf(out, "\n❌ Error: %v\n", err)
		}
		interactive.PauseForEnter()
		return nil
	}

	for {
		options := []interactive.MenuOption{
			{
				Name:        "📊 Full Report",
				Description: "Render every chart and print the summary",
				Action: func() error {
					cfg.Charts = nil
					return report(pipeline.ModeAll)
				},
			},
			{
				Name:        "🖼️  Pick Charts",
				Description: "Choose which charts to render",
				Action: func() error {
					names, err := interactive.SelectCharts(actions.ChartOptions(cfg))
					if err != nil {
						if errors.Is(err, interactive.ErrNothingSelected) {
							fmt.Fprintln(out, "No charts selected.")
						}
						return nil
					}

					existing, err := actions.ExistingCharts(cfg, names)
					if err != nil {
						fmt.Fprintf(out, "\n❌ Error: %v\n", err)
						return nil
					}

					if len(existing) > 0 {
						msg := fmt.Sprintf("Overwrite %d existing chart(s) in %s?", len(existing), cfg.OutputDir)
						if !interactive.Confirm(msg) {
							fmt.Fprintln(out, "Render canceled.")
							return nil
						}
					}

					cfg.Charts = names
					return report(pipeline.ModeRender)
				},
			},
			{
				Name:        "📋 Summary",
				Description: "Print the console performance summary",
				Action: func() error {
					return report(pipeline.ModeSummary)
				},
			},
			{
				Name:        "⚙️  Show Config",
				Description: "Display current configuration",
				Action: func() error {
					if err := actions.ShowConfig(out, cfg); err != nil {
						fmt.Fprintf(out, "\n❌ Error: %v\n", err)
					}
					interactive.PauseForEnter()
					return nil
				},
			},
		}

		if err := interactive.ShowMainMenu(options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Fprintln(out, "Goodbye!")
				return nil
			}
			return err
		}

		fmt.Fprintln(out)
	}
}
