package core

import (
	"context"
	"fmt"
	"os"

	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/schema"
)

// logHeader prints a concise, 2-line header to stderr so stdout stays machine readable.
func logHeader(ctx context.Context, cfg *contract.Config, subject string) {
	if shouldSuppressHeader(ctx) {
		return
	}
	if cfg.UseEmojis {
		_, _ = fmt.Fprintf(os.Stderr, "🏀 %s (%s)\n", schema.Title, subject)
		_, _ = fmt.Fprintf(os.Stderr, "📅 Data: %s from %s\n", schema.DataYears, schema.DataSource)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s (%s)\n", schema.Title, subject)
	_, _ = fmt.Fprintf(os.Stderr, "Data: %s from %s\n", schema.DataYears, schema.DataSource)
}
