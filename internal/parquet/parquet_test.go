package parquet

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/cardstats/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() schema.Report {
	day := func(d int) time.Time { return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC) }
	report := schema.Report{
		ID:      "c0ffee00-0000-4000-8000-000000000001",
		Daily:   schema.TimeSeries{{Date: day(10), Count: 0}, {Date: day(11), Count: 4}, {Date: day(12), Count: 2}},
		Rolling: []float64{0, 2, 2},
		Weekly: []schema.WeekBucket{
			{WeekStart: day(2), Commits: 1},
			{WeekStart: day(9), Commits: 3, PullRequests: 2, Issues: 1},
		},
		Contributions: schema.CurvePath{
			Coordinates: []schema.Point{{X: 50, Y: 170}, {X: 400, Y: 50}, {X: 750, Y: 110}},
		},
		TimeDistribution: []schema.DonutSegment{
			{Label: "Morning", Color: "#B186D6", Count: 3, Percent: 1, StartAngle: 0, EndAngle: 360, Path: "M 0 0 Z"},
			{Label: "Night", Color: "#9B5FC0"},
		},
	}
	report.Hours[9] = 3
	return report
}

// readAll decodes every row of a Parquet document.
func readAll[T any](t *testing.T, r io.ReaderAt, size int64) []T {
	t.Helper()
	file, err := parquet.OpenFile(r, size)
	require.NoError(t, err)
	reader := parquet.NewGenericReader[T](file)
	defer func() { _ = reader.Close() }()

	rows := make([]T, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	return rows[:n]
}

func TestRowStructTags(t *testing.T) {
	tests := []struct {
		name    string
		schema  *parquet.Schema
		columns []string
	}{
		{"daily", parquet.SchemaOf(new(DailyRow)), []string{"report_id", "date", "count", "rolling", "intensity", "label"}},
		{"weekly", parquet.SchemaOf(new(WeeklyRow)), []string{"report_id", "week_start", "commits", "pull_requests", "issues", "total"}},
		{"hours", parquet.SchemaOf(new(HourRow)), []string{"report_id", "hour", "count"}},
		{"segments", parquet.SchemaOf(new(SegmentRow)), []string{"report_id", "label", "color", "count", "percent", "start_angle", "end_angle", "path"}},
		{"curve", parquet.SchemaOf(new(CurveRow)), []string{"report_id", "date", "count", "x", "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.schema)
			for _, colName := range tt.columns {
				col, ok := tt.schema.Lookup(colName)
				require.True(t, ok, "Column %s should exist in schema", colName)
				require.NotNil(t, col, "Column %s should not be nil", colName)
			}
		})
	}
}

func TestDailyRowsRoundTrip(t *testing.T) {
	rows := DailyRows(sampleReport())
	require.Len(t, rows, 3)
	assert.Equal(t, schema.NoneValue, rows[0].Label)
	assert.Equal(t, schema.HighValue, rows[1].Label)
	assert.InDelta(t, 50.0, rows[2].Intensity, 1e-9)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows))

	readData := readAll[DailyRow](t, bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.Len(t, readData, 3)
	for i := range rows {
		assert.Equal(t, rows[i].ReportID, readData[i].ReportID)
		assert.True(t, rows[i].Date.Equal(readData[i].Date), "Date should match")
		assert.Equal(t, rows[i].Count, readData[i].Count)
		assert.InDelta(t, rows[i].Rolling, readData[i].Rolling, 1e-9)
		assert.Equal(t, rows[i].Label, readData[i].Label)
	}
}

func TestWeeklyAndHourRows(t *testing.T) {
	report := sampleReport()

	weekly := WeeklyRows(report)
	require.Len(t, weekly, 2)
	assert.Equal(t, int32(6), weekly[1].Total)

	hours := HourRows(report)
	require.Len(t, hours, 24)
	assert.Equal(t, HourRow{ReportID: report.ID, Hour: 9, Count: 3}, hours[9])
}

func TestSegmentRowsNullablePath(t *testing.T) {
	rows := SegmentRows(sampleReport())
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].Path)
	assert.Nil(t, rows[1].Path, "thin segments have no path")

	outputPath := filepath.Join(t.TempDir(), "segments.parquet")
	require.NoError(t, WriteFile(rows, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()
	info, err := file.Stat()
	require.NoError(t, err)

	readData := readAll[SegmentRow](t, file, info.Size())
	require.Len(t, readData, 2)
	require.NotNil(t, readData[0].Path)
	assert.Equal(t, "M 0 0 Z", *readData[0].Path)
	assert.Nil(t, readData[1].Path)
}

func TestCurveRows(t *testing.T) {
	rows := CurveRows(sampleReport())
	require.Len(t, rows, 3)
	assert.InDelta(t, 400.0, rows[1].X, 1e-9)
	assert.Equal(t, int32(4), rows[1].Count)

	assert.Empty(t, CurveRows(schema.Report{}))
}

func TestWriteFileEmptyAndBadPath(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteFile([]HourRow{}, outputPath))
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Even an empty file carries a footer")

	err = WriteFile([]HourRow{}, filepath.Join(t.TempDir(), "missing", "x.parquet"))
	assert.ErrorContains(t, err, "failed to create output file")
}
