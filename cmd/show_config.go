package cmd

import (
	"fmt"

	"github.com/ethpandaops/spike-report/internal/actions"
	"github.com/spf13/cobra"
)

var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Display current configuration",
	Long:  `Shows the effective configuration after merging environment variables, .env file, config file and flags.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadSettings(cmd, &opts)
		if err != nil {
			return err
		}

		if err := actions.ShowConfig(cmd.OutOrStdout(), cfg); err != nil {
			return fmt.Errorf("failed to show config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showConfigCmd)
}
