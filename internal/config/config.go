// Package config handles configuration loading and management
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ethpandaops/spike-report/internal/chart"
	"github.com/ethpandaops/spike-report/internal/metrics"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrConfigFile is returned when the YAML file cannot be read or parsed.
	ErrConfigFile = errors.New("config file")
)

// Config holds the effective settings. Precedence, lowest first: defaults,
// environment, YAML file, command line flags.
type Config struct {
	Input          string   `yaml:"input"`
	OutputDir      string   `yaml:"output_dir"`
	DPI            int      `yaml:"dpi"`
	Scale          float64  `yaml:"scale"`
	LabelThreshold float64  `yaml:"label_threshold"`
	TopEndpoints   int      `yaml:"top_endpoints"`
	EndpointPrefix string   `yaml:"endpoint_prefix"`
	Workers        int      `yaml:"workers"`
	Charts         []string `yaml:"charts"`

	// File is the YAML file the settings were merged from, if any.
	File string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Input:          DefaultInput,
		OutputDir:      DefaultOutputDir,
		DPI:            DefaultDPI,
		Scale:          DefaultScale,
		LabelThreshold: DefaultLabelThreshold,
		TopEndpoints:   DefaultTopEndpoints,
		EndpointPrefix: metrics.DefaultEndpointPrefix,
		Workers:        DefaultWorkers,
	}
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := Default()
	cfg.Input = getEnv("INPUT", cfg.Input)
	cfg.OutputDir = getEnv("OUTPUT_DIR", cfg.OutputDir)
	cfg.EndpointPrefix = getEnv("ENDPOINT_PREFIX", cfg.EndpointPrefix)

	if charts := getEnv("CHARTS", ""); charts != "" {
		cfg.Charts = splitList(charts)
	}

	var err error

	if cfg.DPI, err = getEnvInt("DPI", cfg.DPI); err != nil {
		return nil, err
	}

	if cfg.TopEndpoints, err = getEnvInt("TOP_ENDPOINTS", cfg.TopEndpoints); err != nil {
		return nil, err
	}

	if cfg.Workers, err = getEnvInt("WORKERS", cfg.Workers); err != nil {
		return nil, err
	}

	if cfg.Scale, err = getEnvFloat("SCALE", cfg.Scale); err != nil {
		return nil, err
	}

	if cfg.LabelThreshold, err = getEnvFloat("LABEL_THRESHOLD", cfg.LabelThreshold); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MergeFile overlays the keys present in a YAML file onto c. Keys missing
// from the file keep their current value.
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrConfigFile, path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w %s: %w", ErrConfigFile, path, err)
	}

	c.File = path

	return nil
}

// Validate rejects settings no chart can be rendered with.
func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input path is empty", ErrInvalidConfig)
	case c.OutputDir == "":
		return fmt.Errorf("%w: output directory is empty", ErrInvalidConfig)
	case c.DPI <= 0:
		return fmt.Errorf("%w: dpi must be positive, got %d", ErrInvalidConfig, c.DPI)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidConfig, c.Scale)
	case c.TopEndpoints <= 0:
		return fmt.Errorf("%w: top endpoints must be positive, got %d", ErrInvalidConfig, c.TopEndpoints)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	case c.EndpointPrefix == "":
		return fmt.Errorf("%w: endpoint prefix is empty", ErrInvalidConfig)
	}

	return nil
}

// ChartOptions converts the settings into renderer options.
func (c *Config) ChartOptions() chart.Options {
	return chart.Options{
		DPI:            c.DPI,
		Scale:          c.Scale,
		LabelThreshold: c.LabelThreshold,
		EndpointPrefix: c.EndpointPrefix,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
	}

	return v, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
	}

	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func (c *Config) String() string {
	fileDisplay := c.File
	if fileDisplay == "" {
		fileDisplay = "(not set)"
	}

	chartsDisplay := strings.Join(c.Charts, ", ")
	if chartsDisplay == "" {
		chartsDisplay = "(all)"
	}

	return fmt.Sprintf(`Current Configuration:
======================
Input:            %s
Output Dir:       %s
Config File:      %s
Charts:           %s
DPI:              %d
Scale:            %g
Label Threshold:  %gms
Top Endpoints:    %d
Endpoint Prefix:  %s
Workers:          %d`,
		c.Input,
		c.OutputDir,
		fileDisplay,
		chartsDisplay,
		c.DPI,
		c.Scale,
		c.LabelThreshold,
		c.TopEndpoints,
		c.EndpointPrefix,
		c.Workers,
	)
}
