// Package format provides shared formatting utilities for human-readable output.
package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Duration formats a duration for human-readable output.
// Handles microseconds, milliseconds, seconds, and minutes.
func Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.0fµs", float64(d.Microseconds()))
	}
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d.Milliseconds()))
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	return fmt.Sprintf("%.1fm", d.Minutes())
}

// Bytes converts bytes to human-readable format (KiB, MiB, GiB, etc.)
func Bytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// Count renders a count rounded to an integer with thousands separators.
func Count(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// Millis renders a latency rounded to whole milliseconds with separators,
// e.g. "1,234ms".
func Millis(v float64) string {
	return printer.Sprintf("%.0fms", v)
}

// MillisPrecise renders a latency with two decimals, e.g. "12.35ms".
func MillisPrecise(v float64) string {
	return fmt.Sprintf("%.2fms", v)
}

// Percent renders a fraction as a percentage with two decimals.
func Percent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}

// Rate renders a per-second throughput with one decimal.
func Rate(v float64) string {
	return fmt.Sprintf("%.1f req/s", v)
}
