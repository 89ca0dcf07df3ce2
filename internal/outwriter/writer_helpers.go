package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeParquetFile runs a parquet export and reports the written file.
func writeParquetFile(outputFile string, export func(string) error) error {
	if outputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if err := export(outputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", outputFile)
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// renderTable writes a right-aligned table with the given header and rows.
func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// section prints a section heading, with an emoji prefix when enabled.
func section(w io.Writer, cfg *contract.Config, emoji, title string) error {
	heading := title
	if cfg.UseEmojis {
		heading = emoji + " " + title
	}
	if cfg.UseColors {
		heading = contract.HeaderColor.Sprint(heading)
	}
	_, err := fmt.Fprintf(w, "\n%s\n", heading)
	return err
}

// paragraph prints text wrapped to the output width.
func paragraph(w io.Writer, cfg *contract.Config, text string) error {
	lines := contract.WrapText(text, GetTextWidth(cfg))
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// strengthLabel returns the coefficient label, colored when enabled.
func strengthLabel(value float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(value)
	}
	return contract.GetPlainLabel(value)
}

// decisionLabel returns the hypothesis decision, colored when enabled.
func decisionLabel(pValue float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorDecisionLabel(pValue)
	}
	return contract.GetDecisionLabel(pValue)
}

// trendGlyph returns the indicator of a finding.
func trendGlyph(t schema.Trend, useEmojis bool) string {
	if !useEmojis {
		switch t {
		case schema.TrendUp:
			return "+"
		case schema.TrendDown:
			return "-"
		default:
			return "="
		}
	}
	switch t {
	case schema.TrendUp:
		return "📈"
	case schema.TrendDown:
		return "📉"
	default:
		return "⚖️"
	}
}
