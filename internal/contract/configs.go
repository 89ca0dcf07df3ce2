package contract

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/unc-data110/hoopstats/schema"
)

// Default values for configuration.
const (
	DefaultPrecision       = 3
	MaxPrecision           = 6
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = "10s"
	DefaultChartWidth      = 800
	DefaultChartHeight     = 400
	MinChartSize           = 200
	MaxChartSize           = 4000
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration.
// This struct is the "final, validated" config.
type Config struct {
	Tab    schema.Tab
	Metric schema.Metric

	// Seed fixes the random source of every render. Zero draws fresh noise each render.
	Seed uint64

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)

	Addr            string
	ShutdownTimeout time.Duration

	ChartWidth  int
	ChartHeight int
	ChartFormat schema.ChartFormat

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Seed       uint64 `mapstructure:"seed"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`

	// --- Fields from viewCmd.Flags() and the sample commands ---
	Tab    string `mapstructure:"tab"`
	Metric string `mapstructure:"metric"`

	// --- Fields from serveCmd.Flags() ---
	Addr            string `mapstructure:"addr"`
	ShutdownTimeout string `mapstructure:"shutdown-timeout"`

	// --- Fields from chartCmd.Flags() and serveCmd.Flags() ---
	ChartWidth  int    `mapstructure:"chart-width"`
	ChartHeight int    `mapstructure:"chart-height"`
	ChartFormat string `mapstructure:"chart-format"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ChartOptions returns the chart settings of the config.
func (c *Config) ChartOptions() ChartOptions {
	return ChartOptions{Width: c.ChartWidth, Height: c.ChartHeight, Format: c.ChartFormat}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSelection(cfg, input); err != nil {
		return err
	}
	if err := processServer(cfg, input); err != nil {
		return err
	}
	if err := processChart(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Seed = input.Seed

	// Parse emoji flag
	emojis, err := ParseBoolString(defaultString(input.Emoji, "yes"))
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(defaultString(input.Color, "yes"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(defaultString(input.Output, string(schema.TextOut))))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	return nil
}

// processSelection resolves the initial tab and metric.
func processSelection(cfg *Config, input *ConfigRawInput) error {
	tab, err := schema.ParseTab(input.Tab)
	if err != nil {
		return fmt.Errorf("invalid --tab value: %w", err)
	}
	metric, err := schema.ParseMetric(input.Metric)
	if err != nil {
		return fmt.Errorf("invalid --metric value: %w", err)
	}
	cfg.Tab = tab
	cfg.Metric = metric
	return nil
}

// processServer validates the listen address and shutdown timeout.
func processServer(cfg *Config, input *ConfigRawInput) error {
	cfg.Addr = defaultString(input.Addr, DefaultAddr)
	if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
		return fmt.Errorf("invalid --addr value %q: %w", cfg.Addr, err)
	}

	timeout, err := time.ParseDuration(defaultString(input.ShutdownTimeout, DefaultShutdownTimeout))
	if err != nil {
		return fmt.Errorf("invalid --shutdown-timeout value: %w", err)
	}
	if timeout <= 0 {
		return fmt.Errorf("shutdown-timeout must be positive (received %s)", timeout)
	}
	cfg.ShutdownTimeout = timeout
	return nil
}

// processChart validates chart dimensions and encoding.
func processChart(cfg *Config, input *ConfigRawInput) error {
	width := defaultInt(input.ChartWidth, DefaultChartWidth)
	height := defaultInt(input.ChartHeight, DefaultChartHeight)
	if width < MinChartSize || width > MaxChartSize {
		return fmt.Errorf("chart-width must be between %d and %d (received %d)", MinChartSize, MaxChartSize, width)
	}
	if height < MinChartSize || height > MaxChartSize {
		return fmt.Errorf("chart-height must be between %d and %d (received %d)", MinChartSize, MaxChartSize, height)
	}
	cfg.ChartWidth = width
	cfg.ChartHeight = height

	cfg.ChartFormat = schema.ChartFormat(strings.ToLower(defaultString(input.ChartFormat, string(schema.SVGChart))))
	if _, ok := schema.ValidChartFormats[cfg.ChartFormat]; !ok {
		return fmt.Errorf("invalid chart format '%s'. must be svg, png", cfg.ChartFormat)
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func defaultInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
