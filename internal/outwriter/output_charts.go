package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/cardstats/internal/contract"
	"github.com/huangsam/cardstats/internal/parquet"
	"github.com/huangsam/cardstats/schema"
)

// hoursOutput is the JSON and YAML payload of the hours view.
type hoursOutput struct {
	Hours            schema.HourHistogram  `json:"hours" yaml:"hours"`
	Total            int                   `json:"total" yaml:"total"`
	PeakPeriod       string                `json:"peak_period,omitempty" yaml:"peak_period,omitempty"`
	TimeDistribution []schema.DonutSegment `json:"time_distribution" yaml:"time_distribution"`
}

// curveOutput is the JSON and YAML payload of the curve view.
type curveOutput struct {
	Contributions schema.CurvePath `json:"contributions" yaml:"contributions"`
	Markers       []schema.Point   `json:"markers" yaml:"markers"`
	GridLines     []float64        `json:"grid_lines" yaml:"grid_lines"`
}

var hoursView = view{
	name: "hour histogram",
	data: func(r schema.Report) any {
		return hoursOutput{
			Hours:            r.Hours,
			Total:            r.Hours.Total(),
			PeakPeriod:       r.PeakPeriod,
			TimeDistribution: r.TimeDistribution,
		}
	},
	header: []string{"hour", "count"},
	rows: func(r schema.Report, _ func(float64) string) [][]string {
		rows := make([][]string, len(r.Hours))
		for h, c := range r.Hours {
			rows[h] = []string{strconv.Itoa(h), strconv.Itoa(c)}
		}
		return rows
	},
	table: writeHoursTable,
	parquet: func(r schema.Report, path string) error {
		return parquet.WriteFile(parquet.HourRows(r), path)
	},
}

var curveView = view{
	name: "contribution curve",
	data: func(r schema.Report) any {
		return curveOutput{
			Contributions: r.Contributions,
			Markers:       r.Markers,
			GridLines:     r.GridLines,
		}
	},
	header: []string{"date", "count", "x", "y"},
	rows: func(r schema.Report, fmtFloat func(float64) string) [][]string {
		points := parquet.CurveRows(r)
		rows := make([][]string, len(points))
		for i, p := range points {
			rows[i] = []string{p.Date.Format(dayFormat), strconv.Itoa(int(p.Count)), fmtFloat(p.X), fmtFloat(p.Y)}
		}
		return rows
	},
	table: writeCurveTable,
	parquet: func(r schema.Report, path string) error {
		return parquet.WriteFile(parquet.CurveRows(r), path)
	},
}

var donutView = view{
	name:   "time distribution",
	data:   func(r schema.Report) any { return r.TimeDistribution },
	header: []string{"label", "color", "count", "percent", "start_angle", "end_angle", "path"},
	rows: func(r schema.Report, fmtFloat func(float64) string) [][]string {
		rows := make([][]string, len(r.TimeDistribution))
		for i, s := range r.TimeDistribution {
			rows[i] = []string{
				s.Label,
				s.Color,
				strconv.Itoa(s.Count),
				fmtFloat(s.Percent * 100),
				fmtFloat(s.StartAngle),
				fmtFloat(s.EndAngle),
				s.Path,
			}
		}
		return rows
	},
	table: writeDonutTable,
	parquet: func(r schema.Report, path string) error {
		return parquet.WriteFile(parquet.SegmentRows(r), path)
	},
}

// writeHoursTable draws the histogram with bars scaled to the busiest hour.
func writeHoursTable(w io.Writer, r schema.Report, cfg *contract.Config, fmtFloat func(float64) string) error {
	total := r.Hours.Total()
	peak := 0
	for _, c := range r.Hours {
		peak = max(peak, c)
	}
	barWidth := getMaxBarWidth(cfg)

	data := make([][]string, 0, len(r.Hours))
	for h, c := range r.Hours {
		share := 0.0
		if total > 0 {
			share = float64(c) / float64(total) * 100
		}
		bar := ""
		if peak > 0 {
			bar = strings.Repeat("█", c*barWidth/peak)
		}
		if cfg.UseColors {
			bar = contract.GetColorLabelText(bar, c, peak)
		}
		data = append(data, []string{fmt.Sprintf("%02d:00", h), commaInt(c), fmtFloat(share) + "%", bar})
	}
	if err := renderTable(w, []string{"Hour", "Count", "Share", "Activity"}, data); err != nil {
		return err
	}
	if r.PeakPeriod != "" {
		if _, err := fmt.Fprintf(w, "Most active: %s\n", r.PeakPeriod); err != nil {
			return err
		}
	}
	return nil
}

// writeCurveTable lists the plotted points, then the path descriptors.
func writeCurveTable(w io.Writer, r schema.Report, cfg *contract.Config, fmtFloat func(float64) string) error {
	points := parquet.CurveRows(r)
	data := make([][]string, 0, len(points))
	for _, p := range points {
		data = append(data, []string{p.Date.Format(dayFormat), commaInt(int(p.Count)), fmtFloat(p.X), fmtFloat(p.Y)})
	}
	if err := renderTable(w, []string{"Date", "Count", "X", "Y"}, data); err != nil {
		return err
	}

	grid := make([]string, len(r.GridLines))
	for i, g := range r.GridLines {
		grid[i] = fmtFloat(g)
	}
	pathWidth := getMaxPathWidth(cfg)
	_, err := fmt.Fprintf(w, "Line: %s\nArea: %s\nGrid: %s | Markers: %d\n",
		contract.Truncate(r.Contributions.LinePath, pathWidth),
		contract.Truncate(r.Contributions.AreaPath, pathWidth),
		strings.Join(grid, ", "),
		len(r.Markers))
	return err
}

// writeDonutTable lists the segments in drawing order.
func writeDonutTable(w io.Writer, r schema.Report, _ *contract.Config, fmtFloat func(float64) string) error {
	data := make([][]string, 0, len(r.TimeDistribution))
	for _, s := range r.TimeDistribution {
		drawn := "yes"
		if s.Path == "" {
			drawn = "no"
		}
		data = append(data, []string{
			s.Label,
			commaInt(s.Count),
			fmtFloat(s.Percent*100) + "%",
			fmtFloat(s.StartAngle),
			fmtFloat(s.EndAngle),
			s.Color,
			drawn,
		})
	}
	if err := renderTable(w, []string{"Period", "Count", "Share", "Start", "End", "Color", "Drawn"}, data); err != nil {
		return err
	}
	if r.PeakPeriod != "" {
		if _, err := fmt.Fprintf(w, "Most active: %s\n", r.PeakPeriod); err != nil {
			return err
		}
	}
	return nil
}
