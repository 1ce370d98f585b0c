//go:build integration

// Package integration contains integration tests for cardstats.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/cardstats/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureArgs pins the reference time so the fixture feed always lands in the window.
var fixtureArgs = []string{
	"--window", "7 days",
	"--weeks", "2",
	"--rolling", "3",
	"--now", "2025-03-12T15:00:00Z",
	"--timezone", "UTC",
	"--color", "no",
}

// runCardstats runs the binary and returns stdout, failing on a non-zero exit.
func runCardstats(t *testing.T, args ...string) string {
	t.Helper()
	cmd := exec.Command(getCardstatsBinary(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	require.NoError(t, cmd.Run(), "stderr: %s", stderr.String())
	return stdout.String()
}

// runView writes one view as JSON to a temp file and returns its bytes.
func runView(t *testing.T, view string, extra ...string) []byte {
	t.Helper()
	out := filepath.Join(t.TempDir(), view+".json")
	args := append([]string{view, filepath.Join("testdata", "feed.json")}, fixtureArgs...)
	args = append(args, "--output", "json", "--output-file", out)
	args = append(args, extra...)
	runCardstats(t, args...)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	return raw
}

func TestReportVerification(t *testing.T) {
	var report schema.Report
	require.NoError(t, json.Unmarshal(runView(t, "report"), &report))

	assert.Equal(t, []int{0, 0, 0, 1, 0, 2, 1}, report.Daily.Counts())
	assert.Equal(t, schema.StreakResult{Current: 2, Longest: 2}, report.Streak)
	assert.Equal(t, 3, report.ActiveDays)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, "Morning", report.PeakPeriod)
	require.Len(t, report.Languages, 2)
	assert.Equal(t, "Go", report.Languages[0].Name)
	require.NotEmpty(t, report.Recent)
	assert.Equal(t, "newest", report.Recent[0].Message)
}

func TestViewVerification(t *testing.T) {
	tests := []struct {
		view  string
		extra []string
		check func(t *testing.T, raw []byte)
	}{
		{
			view: "streak",
			check: func(t *testing.T, raw []byte) {
				var out map[string]any
				require.NoError(t, json.Unmarshal(raw, &out))
				assert.Len(t, out["days"], 7)
			},
		},
		{
			view: "weekly",
			check: func(t *testing.T, raw []byte) {
				var weeks []schema.WeekBucket
				require.NoError(t, json.Unmarshal(raw, &weeks))
				require.Len(t, weeks, 2)
				assert.Equal(t, 4, weeks[1].Total())
			},
		},
		{
			view: "hours",
			check: func(t *testing.T, raw []byte) {
				var out struct {
					Total int `json:"total"`
				}
				require.NoError(t, json.Unmarshal(raw, &out))
				assert.Equal(t, 4, out.Total)
			},
		},
		{
			view:  "curve",
			extra: []string{"--smoothing", "catmull-rom"},
			check: func(t *testing.T, raw []byte) {
				var out struct {
					Contributions schema.CurvePath `json:"contributions"`
				}
				require.NoError(t, json.Unmarshal(raw, &out))
				assert.Len(t, out.Contributions.Coordinates, 7)
				assert.True(t, strings.HasPrefix(out.Contributions.LinePath, "M 50 170"))
				assert.True(t, strings.HasSuffix(out.Contributions.AreaPath, " Z"))
			},
		},
		{
			view: "donut",
			check: func(t *testing.T, raw []byte) {
				var segments []schema.DonutSegment
				require.NoError(t, json.Unmarshal(raw, &segments))
				require.Len(t, segments, 6)
				total := 0.0
				for _, s := range segments {
					total += s.Percent
				}
				assert.InDelta(t, 1.0, total, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			tt.check(t, runView(t, tt.view, tt.extra...))
		})
	}
}

func TestTextOutput(t *testing.T) {
	args := append([]string{"report", filepath.Join("testdata", "feed.json")}, fixtureArgs...)
	out := runCardstats(t, append(args, "--width", "120")...)
	assert.Contains(t, out, "Report built in")
	assert.Contains(t, out, "Skipped 1 unparsable record")
}

func TestInvalidFlags(t *testing.T) {
	cmd := exec.Command(getCardstatsBinary(), "report", filepath.Join("testdata", "feed.json"), "--window", "1 day")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "window must be between")
}

func TestVersion(t *testing.T) {
	// cobra prints to stderr unless an output writer is set
	out, err := exec.Command(getCardstatsBinary(), "version").CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(out), "cardstats CLI")
	assert.Contains(t, string(out), "Runtime:")
}
