package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/internal/parquet"
	"github.com/unc-data110/hoopstats/schema"
)

// WriteTableResults outputs the static summary tables, dispatching based on the output format configured.
func WriteTableResults(tables schema.SummaryTables, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, tables)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTablesCSV(w, tables, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, func(path string) error {
			return parquet.WriteTablesParquet(tables, path)
		})
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTablesText(w, tables, cfg, fmtFloat, intFmt)
		}, "Wrote table")
	}
}

// writeTablesCSV writes all tables in the same long format as the parquet export.
func writeTablesCSV(w io.Writer, tables schema.SummaryTables, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"table", "name", "label", "value", "count", "color"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range parquet.ConvertTables(tables) {
			count := ""
			if r.Count != nil {
				count = fmt.Sprintf(intFmt, *r.Count)
			}
			if err := cw.Write([]string{r.Table, r.Name, r.Label, fmtFloat(r.Value), count, r.Color}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeTablesText(w io.Writer, tables schema.SummaryTables, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	if err := section(w, cfg, "📐", "Regression Coefficients"); err != nil {
		return err
	}
	if err := writeCoefficientTable(w, schema.RateCoefficients(tables.Coefficients), cfg, fmtFloat); err != nil {
		return err
	}

	if err := section(w, cfg, "🏀", "Team Style Distribution"); err != nil {
		return err
	}
	if err := writeStyleTable(w, tables.StyleDistribution, intFmt); err != nil {
		return err
	}

	if err := section(w, cfg, "🏆", "Win % by Team Style"); err != nil {
		return err
	}
	return writeWinPctTable(w, tables.WinPctComparison, fmtFloat)
}

func writeCoefficientTable(w io.Writer, coefs []schema.RatedCoefficient, cfg *contract.Config, fmtFloat func(float64) string) error {
	noteWidth := GetTextWidth(cfg) / 2
	data := make([][]string, len(coefs))
	for i, c := range coefs {
		data[i] = []string{
			c.Name,
			c.Label,
			fmtFloat(c.Value),
			strengthLabel(c.Value, cfg),
			contract.TruncateText(c.Note, noteWidth),
		}
	}
	return renderTable(w, []string{"Feature", "Label", "Coef", "Strength", "Note"}, data)
}

func writeStyleTable(w io.Writer, styles []schema.StyleBucket, intFmt string) error {
	data := make([][]string, 0, len(styles)+1)
	total := 0
	for _, s := range styles {
		total += s.Count
		data = append(data, []string{s.Name, fmt.Sprintf(intFmt, s.Count), fmt.Sprintf("%.1f%%", s.Pct)})
	}
	data = append(data, []string{"Total", fmt.Sprintf(intFmt, total), ""})
	return renderTable(w, []string{"Style", "Team-Seasons", "Share"}, data)
}

func writeWinPctTable(w io.Writer, rows []schema.StyleWinPct, fmtFloat func(float64) string) error {
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{r.TeamStyle, fmtFloat(r.WinPct)}
	}
	return renderTable(w, []string{"Team Style", "Win %"}, data)
}
