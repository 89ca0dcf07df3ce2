// Package cmd defines the command-line interface for hoopstats.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/unc-data110/hoopstats/core"
	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/internal/outwriter"
	"github.com/unc-data110/hoopstats/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the sample subcommands to the parent sample command
	sampleCmd.AddCommand(sampleScatterCmd)
	sampleCmd.AddCommand(sampleResidualsCmd)
	sampleCmd.AddCommand(samplePermutationCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("tab", string(schema.OverviewTab), "Dashboard tab: overview or exploration or model or results")
	rootCmd.PersistentFlags().String("metric", string(schema.ADJOE), "Scatter metric: ADJOE or ADJDE")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed for the illustrative samples (0 = fresh noise per render)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Int("chart-width", contract.DefaultChartWidth, "Chart width in pixels")
	rootCmd.PersistentFlags().Int("chart-height", contract.DefaultChartHeight, "Chart height in pixels")
	rootCmd.PersistentFlags().String("chart-format", string(schema.SVGChart), "Chart encoding: svg or png")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultAddr, "Listen address of the dashboard server")
	serveCmd.Flags().String("shutdown-timeout", contract.DefaultShutdownTimeout, "Grace period for in-flight requests on shutdown")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}
}

// runExecutor adapts a core executor to a cobra Run function.
func runExecutor(action string, exec core.ExecutorFunc) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		if err := exec(rootCtx, cfg, outwriter.NewOutWriter()); err != nil {
			contract.LogFatal("Cannot "+action, err)
		}
	}
}
