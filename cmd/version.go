package cmd

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/unc-data110/hoopstats/schema"
)

// versionCmd shows the build and dataset details.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hoopstats.",
	Long: `Display the release, build details and the dataset the dashboard describes.

Include this output when reporting a bug.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("hoopstats %s (commit %s, built %s)\n", version, commit, date)
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
			cmd.Printf("  Module:  %s %s\n", info.Main.Path, info.Main.Version)
		}
		cmd.Printf("  Runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		cmd.Printf("  Dataset: %d team-seasons, %s, %s\n", schema.TeamSeasonRecords, schema.DataYears, schema.DataSource)
	},
}
