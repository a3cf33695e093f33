// Package actions holds the operations shared by the CLI subcommands and
// the interactive menu.
package actions

import (
	"fmt"
	"io"

	"github.com/ethpandaops/spike-report/internal/config"
)

// ShowConfig displays the current configuration
func ShowConfig(w io.Writer, cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("failed to show config: %w", config.ErrInvalidConfig)
	}

	if _, err := fmt.Fprintln(w, cfg.String()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
