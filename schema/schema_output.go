package schema

import "time"

// Extrema is the maximum and minimum of a series with the index of their first occurrence.
// Both indexes are -1 for an empty series.
type Extrema struct {
	Max      float64 `json:"max" yaml:"max"`
	MaxIndex int     `json:"max_index" yaml:"max_index"`
	Min      float64 `json:"min" yaml:"min"`
	MinIndex int     `json:"min_index" yaml:"min_index"`
}

// SeriesSummary bundles the scalar statistics of a series.
type SeriesSummary struct {
	Total float64 `json:"total" yaml:"total"`
	Mean  float64 `json:"mean" yaml:"mean"`
	Extrema `yaml:",inline"`
}

// Report is every dataset needed to draw one set of activity cards.
type Report struct {
	ID          string    `json:"id" yaml:"id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	WindowDays  int       `json:"window_days" yaml:"window_days"`
	Timezone    string    `json:"timezone" yaml:"timezone"`

	Daily      TimeSeries    `json:"daily" yaml:"daily"`
	Streak     StreakResult  `json:"streak" yaml:"streak"`
	ActiveDays int           `json:"active_days" yaml:"active_days"`
	Summary    SeriesSummary `json:"summary" yaml:"summary"`
	Rolling    []float64     `json:"rolling" yaml:"rolling"`
	Weekly     []WeekBucket  `json:"weekly" yaml:"weekly"`
	Hours      HourHistogram `json:"hours" yaml:"hours"`
	TopDays    []DatedCount  `json:"top_days" yaml:"top_days"`
	TopWeeks   []WeekBucket  `json:"top_weeks" yaml:"top_weeks"`

	Contributions    CurvePath      `json:"contributions" yaml:"contributions"`
	Markers          []Point        `json:"markers" yaml:"markers"`
	GridLines        []float64      `json:"grid_lines" yaml:"grid_lines"`
	TimeDistribution []DonutSegment `json:"time_distribution" yaml:"time_distribution"`
	PeakPeriod       string         `json:"peak_period,omitempty" yaml:"peak_period,omitempty"`
	StreakBars       []Bar          `json:"streak_bars" yaml:"streak_bars"`

	Languages []LanguageShare `json:"languages" yaml:"languages"`
	Recent    []ActivityItem  `json:"recent" yaml:"recent"`

	// Skipped counts feed records dropped for unparsable timestamps or dates.
	Skipped int `json:"skipped" yaml:"skipped"`
}
