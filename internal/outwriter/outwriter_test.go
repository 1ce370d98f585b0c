package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/cardstats/internal/contract"
	"github.com/huangsam/cardstats/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() schema.Report {
	day := func(d int) time.Time { return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC) }
	report := schema.Report{
		ID:          "7f9d1c2e-0000-4000-8000-000000000000",
		GeneratedAt: time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC),
		WindowDays:  3,
		Timezone:    "UTC",
		Daily:       schema.TimeSeries{{Date: day(10), Count: 0}, {Date: day(11), Count: 1200}, {Date: day(12), Count: 12}},
		Streak:      schema.StreakResult{Current: 2, Longest: 2},
		ActiveDays:  2,
		Summary: schema.SeriesSummary{
			Total: 1212, Mean: 404,
			Extrema: schema.Extrema{Max: 1200, MaxIndex: 1, Min: 0, MinIndex: 0},
		},
		Rolling: []float64{0, 600, 601.5},
		TopDays: schema.TimeSeries{{Date: day(11), Count: 1200}},
		Weekly: []schema.WeekBucket{
			{WeekStart: day(2), Commits: 2, Issues: 1},
			{WeekStart: day(9), Commits: 1000, PullRequests: 3},
		},
		Contributions: schema.CurvePath{
			Coordinates: []schema.Point{{X: 50, Y: 170}, {X: 400, Y: 50}, {X: 750, Y: 169.7}},
			LinePath:    "M 50 170 C 166.667 170, 283.333 50, 400 50",
			AreaPath:    "M 50 170 Z",
		},
		Markers:   []schema.Point{{X: 50, Y: 170}},
		GridLines: []float64{170, 110, 50},
		TimeDistribution: []schema.DonutSegment{
			{Label: "Morning", Color: "#B186D6", Count: 3, Percent: 0.75, StartAngle: 0, EndAngle: 270, Path: "M 80 12 Z"},
			{Label: "Night", Color: "#9B5FC0", Count: 1, Percent: 0.25, StartAngle: 270, EndAngle: 360},
		},
		PeakPeriod: "Morning",
		Languages:  []schema.LanguageShare{{Name: "Go", Size: 7000, Percent: 70}},
		Recent: []schema.ActivityItem{
			{Time: time.Date(2025, time.March, 12, 13, 0, 0, 0, time.UTC), Category: schema.CommitEvent, Repository: "cards", Message: "tidy"},
		},
		Skipped: 1,
	}
	report.Hours[9] = 3
	report.Hours[23] = 1
	return report
}

func testConfig(output schema.OutputMode) *contract.Config {
	return &contract.Config{Output: output, Precision: 1, Width: 120}
}

func render(t *testing.T, v view, output schema.OutputMode) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, writeView(&buf, v, sampleReport(), testConfig(output), 25*time.Millisecond))
	return buf.String()
}

func TestWriteViewTables(t *testing.T) {
	tests := []struct {
		name     string
		view     view
		contains []string
	}{
		{"report", reportView, []string{"current_streak", "1,212", "2025-03-11", "Morning", "Go", "7.0 kB", "70.0%", "2 hours ago", "tidy", "Tuesday"}},
		{"streak", streakView, []string{"Current streak: 2 | Longest streak: 2 | Active days: 2 of 3", "1,200", "601.5", schema.HighValue, schema.NoneValue, "Tue"}},
		{"weekly", weeklyView, []string{"3/2", "3/9", "1,003", "1,006", "Total"}},
		{"hours", hoursView, []string{"09:00", "23:00", "75.0%", "█", "Most active: Morning"}},
		{"curve", curveView, []string{"169.7", "Line: M 50 170 C", "Area: M 50 170 Z", "Grid: 170.0, 110.0, 50.0 | Markers: 1"}},
		{"donut", donutView, []string{"Morning", "#9B5FC0", "75.0%", "270.0", "yes", "no"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := render(t, tt.view, schema.TextOut)
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			assert.Contains(t, output, "Report built in 25ms over 3 days (UTC)")
			assert.Contains(t, output, "Skipped 1 unparsable record\n")
		})
	}
}

func TestWriteViewJSON(t *testing.T) {
	var report schema.Report
	require.NoError(t, json.Unmarshal([]byte(render(t, reportView, schema.JSONOut)), &report))
	assert.Equal(t, sampleReport().ID, report.ID)
	assert.Equal(t, 1200, report.Daily[1].Count)
	assert.InDelta(t, 1200.0, report.Summary.Max, 1e-9)

	var streak map[string]any
	require.NoError(t, json.Unmarshal([]byte(render(t, streakView, schema.JSONOut)), &streak))
	days := streak["days"].([]any)
	require.Len(t, days, 3)
	first := days[1].(map[string]any)
	assert.Equal(t, schema.HighValue, first["label"])
	assert.InDelta(t, 600.0, first["rolling"], 1e-9)
	assert.NotContains(t, streak, "streak_bars", "empty bars are omitted")

	var segments []schema.DonutSegment
	require.NoError(t, json.Unmarshal([]byte(render(t, donutView, schema.JSONOut)), &segments))
	assert.Equal(t, sampleReport().TimeDistribution, segments)
}

func TestWriteViewYAML(t *testing.T) {
	var hours hoursOutput
	require.NoError(t, yaml.Unmarshal([]byte(render(t, hoursView, schema.YAMLOut)), &hours))
	assert.Equal(t, 4, hours.Total)
	assert.Equal(t, 3, hours.Hours[9])
	assert.Equal(t, "Morning", hours.PeakPeriod)

	var summary map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(render(t, reportView, schema.YAMLOut)), &summary))
	inner := summary["summary"].(map[string]any)
	assert.Contains(t, inner, "max_index", "extrema are inlined")
}

func TestWriteViewCSV(t *testing.T) {
	tests := []struct {
		name   string
		view   view
		header []string
		rows   int
		row    int
		want   []string
	}{
		{"report", reportView, []string{"metric", "value"}, 10, 1, []string{"total", "1212"}},
		{"streak", streakView, []string{"date", "count", "rolling", "intensity", "label"}, 3, 2, []string{"2025-03-12", "12", "601.5", "1.0", schema.LowValue}},
		{"weekly", weeklyView, []string{"week_start", "commits", "pull_requests", "issues", "total"}, 2, 1, []string{"2025-03-09", "1000", "3", "0", "1003"}},
		{"hours", hoursView, []string{"hour", "count"}, 24, 9, []string{"9", "3"}},
		{"curve", curveView, []string{"date", "count", "x", "y"}, 3, 1, []string{"2025-03-11", "1200", "400.0", "50.0"}},
		{"donut", donutView, nil, 2, 1, []string{"Night", "#9B5FC0", "1", "25.0", "270.0", "360.0", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := csv.NewReader(strings.NewReader(render(t, tt.view, schema.CSVOut))).ReadAll()
			require.NoError(t, err)
			require.Len(t, records, tt.rows+1)
			if tt.header != nil {
				assert.Equal(t, tt.header, records[0])
			}
			assert.Equal(t, tt.want, records[tt.row+1])
		})
	}
}

func TestPrintToFile(t *testing.T) {
	dir := t.TempDir()

	cfg := testConfig(schema.JSONOut)
	cfg.OutputFile = filepath.Join(dir, "weekly.json")
	require.NoError(t, PrintWeekly(sampleReport(), cfg, time.Second))

	content, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var weeks []schema.WeekBucket
	require.NoError(t, json.Unmarshal(content, &weeks))
	assert.Len(t, weeks, 2)

	printers := map[string]func(schema.Report, *contract.Config, time.Duration) error{
		"report": PrintReport,
		"streak": PrintStreak,
		"weekly": PrintWeekly,
		"hours":  PrintHours,
		"curve":  PrintCurve,
		"donut":  PrintDonut,
	}
	for name, printer := range printers {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(schema.ParquetOut)
			cfg.OutputFile = filepath.Join(dir, name+".parquet")
			require.NoError(t, printer(sampleReport(), cfg, time.Second))

			info, err := os.Stat(cfg.OutputFile)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestPrintErrors(t *testing.T) {
	cfg := testConfig(schema.CSVOut)
	cfg.OutputFile = "/nonexistent/path/out.csv"
	assert.Error(t, PrintHours(sampleReport(), cfg, time.Second))

	var buf bytes.Buffer
	err := writeView(&buf, streakView, sampleReport(), testConfig(schema.ParquetOut), time.Second)
	assert.ErrorContains(t, err, "needs a file")
}

func TestTerminalWidths(t *testing.T) {
	cfg := &contract.Config{Width: 200}
	assert.Equal(t, 200, GetTerminalWidth(cfg))
	assert.Equal(t, 60, getMaxBarWidth(cfg))
	assert.Equal(t, 70, getMaxMessageWidth(cfg))
	assert.Equal(t, 186, getMaxPathWidth(cfg))

	cfg.Width = 30
	assert.Equal(t, 10, getMaxBarWidth(cfg))
	assert.Equal(t, 15, getMaxMessageWidth(cfg))
	assert.Equal(t, 20, getMaxPathWidth(cfg))

	assert.Positive(t, GetTerminalWidth(&contract.Config{}))
}
