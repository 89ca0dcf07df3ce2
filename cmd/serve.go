package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/unc-data110/hoopstats/internal/chart"
	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/internal/server"
)

// serveCmd runs the interactive dashboard over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard over HTTP.",
	Long: `Start the dashboard web server.

Every page view builds its own dashboard state from the query string, so
the tab bar and the metric dropdown are plain links and forms:
  /?tab=exploration&metric=ADJDE

Charts are inlined as SVG and also available on their own:
  /charts/scatter.svg?metric=ADJDE
  /charts/permutation.png

The same data is exposed as JSON under /api/view, /api/scatter,
/api/residuals, /api/permutation and /api/tables.

Examples:
  # Serve on the default address
  hoopstats serve

  # Serve on another port with reproducible samples
  hoopstats serve --addr :9000 --seed 42`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		srv, err := server.New(cfg, chart.NewRenderer())
		if err != nil {
			contract.LogFatal("Cannot create dashboard server", err)
		}
		ctx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := srv.Run(ctx); err != nil {
			contract.LogFatal("Cannot serve dashboard", err)
		}
	},
}
