package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unc-data110/hoopstats/core"
)

// viewCmd prints one dashboard tab.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print one dashboard tab.",
	Long: `Render a dashboard tab in the terminal or export it.

Tabs:
- overview: research question, headline figures and key findings
- exploration: style distribution, efficiency scatter and win % by style
- model: regression setup, coefficients and residual diagnostics
- results: permutation test, evidence and conclusions

Examples:
  # Show the overview
  hoopstats view

  # Show the exploration tab with the defensive scatter
  hoopstats view --tab exploration --metric ADJDE

  # Export the whole model tab as JSON
  hoopstats view --tab model --output json --output-file model.json`,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("render view", core.ExecuteView),
}
