package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unc-data110/hoopstats/core"
)

// sampleCmd groups the illustrative sample generators.
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate the illustrative chart samples.",
	Long: `Generate the synthetic data behind the dashboard charts.

These samples reproduce the shape of the study's results for display.
They are not the study's data.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// sampleScatterCmd writes an efficiency vs win percentage sample.
var sampleScatterCmd = &cobra.Command{
	Use:   "scatter",
	Short: "Generate 200 efficiency vs win % points.",
	Long: `Generate the efficiency vs win percentage scatter sample.

Examples:
  # Offensive sample as a table
  hoopstats sample scatter

  # Reproducible defensive sample as CSV
  hoopstats sample scatter --metric ADJDE --seed 7 --output csv`,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("generate scatter sample", core.ExecuteScatter),
}

// sampleResidualsCmd writes a residual diagnostics sample.
var sampleResidualsCmd = &cobra.Command{
	Use:     "residuals",
	Short:   "Generate 150 predicted vs residual points.",
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("generate residual sample", core.ExecuteResiduals),
}

// samplePermutationCmd writes the permutation null distribution curve.
var samplePermutationCmd = &cobra.Command{
	Use:   "permutation",
	Short: "Print the 100-point permutation null distribution curve.",
	Long: `Print the permutation test null distribution curve.

The curve is deterministic; --seed has no effect on it.

Examples:
  hoopstats sample permutation --output parquet --output-file curve.parquet`,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("generate permutation curve", core.ExecutePermutation),
}
