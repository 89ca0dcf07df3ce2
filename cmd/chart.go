package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unc-data110/hoopstats/core"
	"github.com/unc-data110/hoopstats/internal/chart"
	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/schema"
)

// chartCmd draws one dashboard chart as an image.
var chartCmd = &cobra.Command{
	Use:   "chart <name>",
	Short: "Draw one dashboard chart as SVG or PNG.",
	Long: `Draw a dashboard chart.

Charts: styles, scatter, winpct, coefficients, residuals, permutation

Examples:
  # Defensive scatter as SVG on stdout
  hoopstats chart scatter --metric ADJDE > scatter.svg

  # Large PNG of the coefficients
  hoopstats chart coefficients --chart-format png --chart-width 1600 --chart-height 800 --output-file coefficients.png`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := schema.ParseChart(args[0]); err != nil {
			return err
		}
		return sharedSetup(rootCtx, cmd, args)
	},
	Run: func(_ *cobra.Command, args []string) {
		name, _ := schema.ParseChart(args[0])
		out, err := contract.SelectOutputFile(cfg.OutputFile)
		if err != nil {
			contract.LogFatal("Cannot open chart output", err)
		}
		if err := core.ExecuteChart(rootCtx, cfg, name, chart.NewRenderer(), out); err != nil {
			contract.LogFatal("Cannot draw chart", err)
		}
		if cfg.OutputFile != "" {
			if err := out.Close(); err != nil {
				contract.LogFatal("Cannot close chart output", err)
			}
			contract.LogInfo("💾 Wrote %s chart to %s", name, cfg.OutputFile)
		}
	},
}
