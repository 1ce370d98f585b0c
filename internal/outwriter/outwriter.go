// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/cardstats/internal/contract"
	"github.com/huangsam/cardstats/schema"
)

// view bundles the writers for one slice of a report.
type view struct {
	name    string
	data    func(schema.Report) any
	header  []string
	rows    func(schema.Report, func(float64) string) [][]string
	table   func(io.Writer, schema.Report, *contract.Config, func(float64) string) error
	parquet func(schema.Report, string) error
}

// PrintReport outputs every dataset of the report.
func PrintReport(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	return printView(reportView, report, cfg, duration)
}

// PrintStreak outputs the daily series with streak and rolling average.
func PrintStreak(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	return printView(streakView, report, cfg, duration)
}

// PrintWeekly outputs the weekly category buckets.
func PrintWeekly(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	return printView(weeklyView, report, cfg, duration)
}

// PrintHours outputs the hour of day histogram.
func PrintHours(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	return printView(hoursView, report, cfg, duration)
}

// PrintCurve outputs the contribution chart geometry.
func PrintCurve(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	return printView(curveView, report, cfg, duration)
}

// PrintDonut outputs the time distribution segments.
func PrintDonut(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	return printView(donutView, report, cfg, duration)
}

// printView dispatches based on the output format configured.
func printView(v view, report schema.Report, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		if err := v.parquet(report, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet %s to %s\n", v.name, cfg.OutputFile)
		return nil
	}

	msg := fmt.Sprintf("Wrote %s %s", formatLabel(cfg.Output), v.name)
	if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeView(w, v, report, cfg, duration)
	}, msg); err != nil {
		return fmt.Errorf("error writing %s output: %w", formatLabel(cfg.Output), err)
	}
	return nil
}

// writeView renders one view in any of the stream formats.
func writeView(w io.Writer, v view, report schema.Report, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, v.data(report))
	case schema.YAMLOut:
		return writeYAML(w, v.data(report))
	case schema.CSVOut:
		return writeCSVWithHeader(w, v.header, func(cw *csv.Writer) error {
			return cw.WriteAll(v.rows(report, fmtFloat))
		})
	case schema.ParquetOut:
		return fmt.Errorf("parquet output needs a file, not a stream")
	default:
		// Default to human-readable table
		if err := v.table(w, report, cfg, fmtFloat); err != nil {
			return err
		}
		return writeFooter(w, report, duration)
	}
}

func formatLabel(mode schema.OutputMode) string {
	switch mode {
	case schema.JSONOut:
		return "JSON"
	case schema.YAMLOut:
		return "YAML"
	case schema.CSVOut:
		return "CSV"
	default:
		return "table"
	}
}
