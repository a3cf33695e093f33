package table

import (
	"fmt"

	"github.com/ethpandaops/spike-report/internal/artifacts"
	"github.com/fatih/color"
)

// ColorHelper provides utilities for coloring report output
type ColorHelper struct {
	enabled bool
}

// NewColorHelper creates a new color helper
// Colors are enabled only when outputting to a terminal
func NewColorHelper() *ColorHelper {
	return &ColorHelper{
		enabled: !color.NoColor,
	}
}

// Success returns green colored text
func (c *ColorHelper) Success(text string) string {
	if !c.enabled {
		return text
	}
	return color.GreenString(text)
}

// Failure returns red colored text
func (c *ColorHelper) Failure(text string) string {
	if !c.enabled {
		return text
	}
	return color.RedString(text)
}

// Warning returns yellow colored text
func (c *ColorHelper) Warning(text string) string {
	if !c.enabled {
		return text
	}
	return color.YellowString(text)
}

// Info returns cyan colored text
func (c *ColorHelper) Info(text string) string {
	if !c.enabled {
		return text
	}
	return color.CyanString(text)
}

// Muted returns gray colored text
func (c *ColorHelper) Muted(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgHiBlack).Sprint(text)
}

// Bold returns bold text
func (c *ColorHelper) Bold(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.Bold).Sprint(text)
}

// Header returns bold cyan text for section headers
func (c *ColorHelper) Header(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgCyan, color.Bold).Sprint(text)
}

// FormatStatus returns appropriately colored artifact status text
func (c *ColorHelper) FormatStatus(status artifacts.Status) string {
	switch status {
	case artifacts.StatusGenerated:
		return c.Success("✓ generated")
	case artifacts.StatusSkipped:
		return c.Warning("- skipped")
	default:
		return c.Failure("✗ failed")
	}
}

// FormatSuccessRate colors a fraction rendered as a percentage: green at or
// above 99%, yellow at or above 95%, red below.
func (c *ColorHelper) FormatSuccessRate(fraction float64) string {
	text := fmt.Sprintf("%.2f%%", fraction*100)
	if fraction >= 0.99 {
		return c.Success(text)
	}
	if fraction >= 0.95 {
		return c.Warning(text)
	}
	return c.Failure(text)
}

// FormatErrorRate colors an error fraction: green at or below 1%, yellow at
// or below 5%, red above.
func (c *ColorHelper) FormatErrorRate(fraction float64) string {
	text := fmt.Sprintf("%.2f%%", fraction*100)
	if fraction <= 0.01 {
		return c.Success(text)
	}
	if fraction <= 0.05 {
		return c.Warning(text)
	}
	return c.Failure(text)
}
