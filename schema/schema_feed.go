package schema

import "time"

// Event is one raw activity record as it arrives from a feed.
// Timestamp is kept as text so unparsable records can be skipped downstream.
type Event struct {
	Timestamp  string        `json:"timestamp" yaml:"timestamp"`
	Category   EventCategory `json:"category" yaml:"category"`
	Repository string        `json:"repository,omitempty" yaml:"repository,omitempty"`
	Message    string        `json:"message,omitempty" yaml:"message,omitempty"`
}

// DailyCountRecord is a pre-aggregated day count, e.g. from a contribution calendar.
type DailyCountRecord struct {
	Date  string `json:"date" yaml:"date"` // YYYY-MM-DD
	Count int    `json:"count" yaml:"count"`
}

// LanguageSize is the amount of code written in one language.
type LanguageSize struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Size  int64  `json:"size" yaml:"size"`
}

// Feed is everything one report is computed from.
type Feed struct {
	Events    []Event            `json:"events" yaml:"events"`
	Daily     []DailyCountRecord `json:"daily,omitempty" yaml:"daily,omitempty"`
	Languages []LanguageSize     `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// LanguageShare is a language with its share of the total code size.
type LanguageShare struct {
	Name    string  `json:"name" yaml:"name"`
	Color   string  `json:"color,omitempty" yaml:"color,omitempty"`
	Size    int64   `json:"size" yaml:"size"`
	Percent float64 `json:"percent" yaml:"percent"` // 0-100, one decimal
}

// ActivityItem is a parsed event shown in the recent activity list.
type ActivityItem struct {
	Time       time.Time     `json:"time" yaml:"time"`
	Category   EventCategory `json:"category" yaml:"category"`
	Repository string        `json:"repository,omitempty" yaml:"repository,omitempty"`
	Message    string        `json:"message,omitempty" yaml:"message,omitempty"`
}
