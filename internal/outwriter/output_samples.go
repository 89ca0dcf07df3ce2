package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/unc-data110/hoopstats/internal/contract"
	"github.com/unc-data110/hoopstats/internal/parquet"
	"github.com/unc-data110/hoopstats/schema"
)

// WriteScatterResults outputs a scatter sample, dispatching based on the output format configured.
func WriteScatterResults(points []schema.ScatterPoint, metric schema.Metric, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, struct {
				Metric schema.Metric         `json:"metric"`
				Points []schema.ScatterPoint `json:"points"`
			}{metric, points})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScatterCSV(w, points, metric, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, func(path string) error {
			return parquet.WriteScatterParquet(points, metric, path)
		})
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScatterTable(w, points, metric, fmtFloat)
		}, "Wrote table")
	}
}

// WriteResidualResults outputs a residual sample, dispatching based on the output format configured.
func WriteResidualResults(points []schema.ResidualPoint, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, points)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResidualCSV(w, points, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, func(path string) error {
			return parquet.WriteResidualsParquet(points, path)
		})
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResidualTable(w, points, fmtFloat)
		}, "Wrote table")
	}
}

// WriteCurveResults outputs the permutation curve, dispatching based on the output format configured.
func WriteCurveResults(points []schema.CurvePoint, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, points)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCurveCSV(w, points, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, func(path string) error {
			return parquet.WriteCurveParquet(points, path)
		})
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCurveTable(w, points, fmtFloat)
		}, "Wrote table")
	}
}

func writeScatterCSV(w io.Writer, points []schema.ScatterPoint, metric schema.Metric, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{"metric", "efficiency", "win_pct"}, func(cw *csv.Writer) error {
		for _, p := range points {
			if err := cw.Write([]string{string(metric), fmtFloat(p.X), fmtFloat(p.Y)}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeResidualCSV(w io.Writer, points []schema.ResidualPoint, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{"predicted", "residual"}, func(cw *csv.Writer) error {
		for _, p := range points {
			if err := cw.Write([]string{fmtFloat(p.Predicted), fmtFloat(p.Residual)}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCurveCSV(w io.Writer, points []schema.CurvePoint, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{"difference", "frequency"}, func(cw *csv.Writer) error {
		for _, p := range points {
			if err := cw.Write([]string{fmtFloat(p.X), fmtFloat(p.Y)}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeScatterTable(w io.Writer, points []schema.ScatterPoint, metric schema.Metric, fmtFloat func(float64) string) error {
	data := make([][]string, len(points))
	for i, p := range points {
		data[i] = []string{strconv.Itoa(i + 1), fmtFloat(p.X), fmtFloat(p.Y)}
	}
	if err := renderTable(w, []string{"#", string(metric), "Win %"}, data); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d sampled team-seasons. %s\n", len(points), schema.MetricCaption(metric))
	return err
}

func writeResidualTable(w io.Writer, points []schema.ResidualPoint, fmtFloat func(float64) string) error {
	data := make([][]string, len(points))
	for i, p := range points {
		data[i] = []string{strconv.Itoa(i + 1), fmtFloat(p.Predicted), fmtFloat(p.Residual)}
	}
	if err := renderTable(w, []string{"#", "Predicted", "Residual"}, data); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d fitted observations.\n", len(points))
	return err
}

func writeCurveTable(w io.Writer, points []schema.CurvePoint, fmtFloat func(float64) string) error {
	data := make([][]string, len(points))
	for i, p := range points {
		data[i] = []string{strconv.Itoa(i + 1), fmtFloat(p.X), fmtFloat(p.Y)}
	}
	if err := renderTable(w, []string{"#", "Difference", "Frequency"}, data); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Null distribution over %d permutations (observed difference: %.3f).\n", schema.Permutations, schema.ObservedDifference)
	return err
}
