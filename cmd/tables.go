package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unc-data110/hoopstats/core"
)

// tablesCmd prints the static summary tables.
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the coefficient, style and win % tables.",
	Long: `Print the static tables behind the dashboard:
- regression coefficients with strength labels
- distribution of team-seasons by playing style
- mean win percentage of offense-heavy and defense-heavy teams

Examples:
  hoopstats tables
  hoopstats tables --output csv --output-file tables.csv`,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("print tables", core.ExecuteTables),
}
