// Package parquet provides row types and functions for exporting report
// datasets to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/cardstats/schema"
	"github.com/parquet-go/parquet-go"
)

// DailyRow is one day of the contribution window.
type DailyRow struct {
	// ReportID ties rows of one export together
	ReportID string `parquet:"report_id,snappy"`

	// Date is local midnight of the day (stored as TIMESTAMP with nanosecond precision)
	Date time.Time `parquet:"date,snappy"`

	Count int32 `parquet:"count,snappy"`

	// Rolling is the trailing average ending at this day
	Rolling float64 `parquet:"rolling,snappy"`

	// Intensity is the count as a percentage of the window peak
	Intensity float64 `parquet:"intensity,snappy"`

	// Label is High, Moderate, Low or None
	Label string `parquet:"label,snappy"`
}

// WeeklyRow is one week bucket.
type WeeklyRow struct {
	ReportID     string    `parquet:"report_id,snappy"`
	WeekStart    time.Time `parquet:"week_start,snappy"`
	Commits      int32     `parquet:"commits,snappy"`
	PullRequests int32     `parquet:"pull_requests,snappy"`
	Issues       int32     `parquet:"issues,snappy"`
	Total        int32     `parquet:"total,snappy"`
}

// HourRow is one hour of the day histogram.
type HourRow struct {
	ReportID string `parquet:"report_id,snappy"`
	Hour     int32  `parquet:"hour,snappy"`
	Count    int32  `parquet:"count,snappy"`
}

// SegmentRow is one wedge of the time distribution ring.
type SegmentRow struct {
	ReportID   string  `parquet:"report_id,snappy"`
	Label      string  `parquet:"label,snappy"`
	Color      string  `parquet:"color,snappy"`
	Count      int32   `parquet:"count,snappy"`
	Percent    float64 `parquet:"percent,snappy"`
	StartAngle float64 `parquet:"start_angle,snappy"`
	EndAngle   float64 `parquet:"end_angle,snappy"`

	// Path is null for segments too thin to draw
	Path *string `parquet:"path,optional,snappy"`
}

// CurveRow is one plotted point of the contribution chart.
type CurveRow struct {
	ReportID string    `parquet:"report_id,snappy"`
	Date     time.Time `parquet:"date,snappy"`
	Count    int32     `parquet:"count,snappy"`
	X        float64   `parquet:"x,snappy"`
	Y        float64   `parquet:"y,snappy"`
}

// Write encodes rows as one Parquet file into w. The schema is derived
// from the struct tags of T.
func Write[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// WriteFile writes rows to a new Parquet file at outputPath.
func WriteFile[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Write(file, rows)
}

// DailyRows flattens the daily series with its rolling average and labels.
func DailyRows(report schema.Report) []DailyRow {
	rows := make([]DailyRow, len(report.Daily))
	for i, d := range schema.EnrichDaily(report.Daily) {
		rows[i] = DailyRow{
			ReportID:  report.ID,
			Date:      d.Date,
			Count:     int32(d.Count),
			Intensity: d.Intensity,
			Label:     d.Label,
		}
		if i < len(report.Rolling) {
			rows[i].Rolling = report.Rolling[i]
		}
	}
	return rows
}

// WeeklyRows flattens the weekly buckets.
func WeeklyRows(report schema.Report) []WeeklyRow {
	rows := make([]WeeklyRow, len(report.Weekly))
	for i, w := range report.Weekly {
		rows[i] = WeeklyRow{
			ReportID:     report.ID,
			WeekStart:    w.WeekStart,
			Commits:      int32(w.Commits),
			PullRequests: int32(w.PullRequests),
			Issues:       int32(w.Issues),
			Total:        int32(w.Total()),
		}
	}
	return rows
}

// HourRows flattens the hour histogram.
func HourRows(report schema.Report) []HourRow {
	rows := make([]HourRow, len(report.Hours))
	for h, c := range report.Hours {
		rows[h] = HourRow{ReportID: report.ID, Hour: int32(h), Count: int32(c)}
	}
	return rows
}

// SegmentRows flattens the time distribution ring.
func SegmentRows(report schema.Report) []SegmentRow {
	rows := make([]SegmentRow, len(report.TimeDistribution))
	for i, s := range report.TimeDistribution {
		rows[i] = SegmentRow{
			ReportID:   report.ID,
			Label:      s.Label,
			Color:      s.Color,
			Count:      int32(s.Count),
			Percent:    s.Percent,
			StartAngle: s.StartAngle,
			EndAngle:   s.EndAngle,
		}
		if s.Path != "" {
			path := s.Path
			rows[i].Path = &path
		}
	}
	return rows
}

// CurveRows pairs each day with its plotted coordinate.
func CurveRows(report schema.Report) []CurveRow {
	coords := report.Contributions.Coordinates
	rows := make([]CurveRow, 0, len(coords))
	for i, p := range coords {
		if i >= len(report.Daily) {
			break
		}
		rows = append(rows, CurveRow{
			ReportID: report.ID,
			Date:     report.Daily[i].Date,
			Count:    int32(report.Daily[i].Count),
			X:        p.X,
			Y:        p.Y,
		})
	}
	return rows
}
