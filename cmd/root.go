package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// prof owns the profile files of the current run.
var prof = &profiler{}

// profiler writes a CPU profile for the whole run and a heap profile at exit.
type profiler struct {
	settings contract.ProfileConfig
	cpuFile  *os.File
}

// start begins CPU profiling when a prefix is configured. It is a no-op when
// profiling is disabled or already running.
func (p *profiler) start(prefix string) error {
	if err := contract.ProcessProfilingConfig(&p.settings, prefix); err != nil {
		return fmt.Errorf("failed to process profiling config: %w", err)
	}
	if !p.settings.Enabled || p.cpuFile != nil {
		return nil
	}

	f, err := os.Create(p.settings.Prefix + ".cpu.prof")
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("could not start CPU profiling: %w", err)
	}
	p.cpuFile = f
	contract.LogInfo("⏱️  Profiling to %s.cpu.prof and %s.mem.prof", p.settings.Prefix, p.settings.Prefix)
	return nil
}

// stop flushes the CPU profile and writes the heap profile.
func (p *profiler) stop() error {
	if p.cpuFile == nil {
		return nil
	}
	pprof.StopCPUProfile()
	cpuErr := p.cpuFile.Close()
	p.cpuFile = nil

	memFile, err := os.Create(p.settings.Prefix + ".mem.prof")
	if err != nil {
		return errors.Join(cpuErr, fmt.Errorf("could not create memory profile: %w", err))
	}
	defer func() { _ = memFile.Close() }()
	if err := pprof.WriteHeapProfile(memFile); err != nil {
		return errors.Join(cpuErr, fmt.Errorf("could not write memory profile: %w", err))
	}

	contract.LogInfo("Profiling complete. Use 'go tool pprof %s.cpu.prof' to analyze.", p.settings.Prefix)
	return cpuErr
}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "hoopstats",
	Short: "Explore the NCAA basketball offense vs defense efficiency study.",
	Long: `Hoopstats presents a study of whether offensive or defensive efficiency
matters more for winning NCAA Division I men's basketball games.

Serve the interactive dashboard with 'hoopstats serve', print a tab with
'hoopstats view', or export samples, tables and charts.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig points viper at the config file and the HOOPSTATS_ environment.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".hoopstats")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// HOOPSTATS_CHART_WIDTH sets chart-width and so on
	viper.SetEnvPrefix("HOOPSTATS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	defaults := map[string]any{
		"tab":              string(schema.OverviewTab),
		"metric":           string(schema.ADJOE),
		"output":           string(schema.TextOut),
		"precision":        contract.DefaultPrecision,
		"addr":             contract.DefaultAddr,
		"shutdown-timeout": contract.DefaultShutdownTimeout,
		"chart-width":      contract.DefaultChartWidth,
		"chart-height":     contract.DefaultChartHeight,
		"chart-format":     string(schema.SVGChart),
		"emoji":            "yes",
		"color":            "yes",
	}
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
}

// readConfigFile loads the config file; a missing file is not an error.
func readConfigFile() error {
	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("error reading config file: %w", err)
}

// sharedSetup resolves defaults, file, env and flags into the validated cfg.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	if err := prof.start(viper.GetString("profile")); err != nil {
		return err
	}
	if err := readConfigFile(); err != nil {
		return err
	}
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// StopProfiling stops profiling if enabled.
func StopProfiling() error {
	return prof.stop()
}
