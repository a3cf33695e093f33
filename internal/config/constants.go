package config

const (
	// EnvPrefix is prepended to every environment variable the tool reads.
	EnvPrefix = "SPIKE_REPORT_"
	// DefaultInput is the k6 summary file read when nothing else is set.
	DefaultInput = "spike_results.json"
	// DefaultOutputDir is where chart files are written.
	DefaultOutputDir = "."
	// DefaultDPI is the chart resolution.
	DefaultDPI = 300
	// DefaultScale multiplies every chart's base size in inches.
	DefaultScale = 1.0
	// DefaultLabelThreshold hides endpoint bar labels at or below this value (ms).
	DefaultLabelThreshold = 100.0
	// DefaultTopEndpoints is the length of the slowest-endpoints table.
	DefaultTopEndpoints = 5
	// DefaultWorkers renders charts sequentially.
	DefaultWorkers = 1
)
