package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/cardstats/schema"
	"github.com/rs/zerolog"
)

// Default values for configuration.
const (
	DefaultFeedPath      = "feed.json"
	DefaultWindow        = "30 days"
	MinWindowDays        = 2 // a curve needs two points
	MaxWindowDays        = 366
	DefaultWeeks         = 8
	MaxWeeks             = 52
	DefaultRolling       = 7
	DefaultPrecision     = 1
	MaxPrecision         = 3
	DefaultStreakBars    = 14
	DefaultLanguageLimit = 5
	DefaultRecentLimit   = 10
	DefaultMarkerEvery   = 5
	DefaultLogLevel      = "warn"
)

// Default chart geometry of the report cards.
const (
	DefaultChartWidth  = 700.0
	DefaultChartHeight = 120.0
	DefaultTopPad      = 0.0
	ChartOffset        = 50.0 // left and top margin around the contribution chart
	DefaultOuterRadius = 68.0
	DefaultInnerRadius = 42.0
	DefaultGapDegrees  = 2.0
	DonutCenter        = 80.0
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// weekdays maps accepted --week-start values.
var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Config holds the runtime configuration for building reports.
// This struct is the "final, validated" config.
type Config struct {
	Source   schema.SourceKind
	FeedPath string
	RepoPath string

	WindowDays    int
	Weeks         int
	WeekStart     time.Weekday
	Now           time.Time // reference instant, expressed in Location
	Location      *time.Location
	RollingWindow int

	Smoothing   schema.SmoothingMethod
	ChartWidth  float64
	ChartHeight float64
	TopPad      float64
	MarkerEvery int

	OuterRadius float64
	InnerRadius float64
	GapDegrees  float64

	StreakBars    int
	LanguageLimit int
	RecentLimit   int

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
	LogLevel   zerolog.Level
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	FeedPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Source     string `mapstructure:"source"`
	Repo       string `mapstructure:"repo"`
	Window     string `mapstructure:"window"`
	Weeks      int    `mapstructure:"weeks"`
	WeekStart  string `mapstructure:"week-start"`
	Now        string `mapstructure:"now"`
	Timezone   string `mapstructure:"timezone"`
	Rolling    int    `mapstructure:"rolling"`
	Smoothing  string `mapstructure:"smoothing"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
	LogLevel   string `mapstructure:"log-level"`

	// --- Fields from curveCmd.Flags() ---
	ChartWidth  float64 `mapstructure:"chart-width"`
	ChartHeight float64 `mapstructure:"chart-height"`
	TopPad      float64 `mapstructure:"top-pad"`
	Markers     int     `mapstructure:"markers"`

	// --- Fields from donutCmd.Flags() ---
	OuterRadius float64 `mapstructure:"outer-radius"`
	InnerRadius float64 `mapstructure:"inner-radius"`
	Gap         float64 `mapstructure:"gap"`

	// --- Card limits, config file only ---
	Bars      int `mapstructure:"bars"`
	Languages int `mapstructure:"languages"`
	Recent    int `mapstructure:"recent"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// CurveConfig returns the contribution chart geometry.
func (c *Config) CurveConfig() schema.CurveConfig {
	return schema.CurveConfig{
		Width:   c.ChartWidth,
		Height:  c.ChartHeight,
		TopPad:  c.TopPad,
		OffsetX: ChartOffset,
		OffsetY: ChartOffset,
		Method:  c.Smoothing,
	}
}

// DonutConfig returns the time distribution ring geometry.
func (c *Config) DonutConfig() schema.DonutConfig {
	return schema.DonutConfig{
		CenterX:     DonutCenter,
		CenterY:     DonutCenter,
		OuterRadius: c.OuterRadius,
		InnerRadius: c.InnerRadius,
		GapDegrees:  c.GapDegrees,
	}
}

// BarConfig returns the streak mini chart geometry.
func (c *Config) BarConfig() schema.BarConfig {
	return schema.BarConfig{
		Count:     c.StreakBars,
		StartX:    24,
		BarWidth:  16,
		BarGap:    4,
		Height:    60,
		MinHeight: 2,
	}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processWindow(cfg, input); err != nil {
		return err
	}
	if err := processReferenceTime(cfg, input); err != nil {
		return err
	}
	if err := processGeometry(cfg, input); err != nil {
		return err
	}
	if err := resolveSource(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, yaml, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	level := input.LogLevel
	if level == "" {
		level = DefaultLogLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", input.LogLevel, err)
	}
	cfg.LogLevel = lvl

	cfg.StreakBars = input.Bars
	cfg.LanguageLimit = input.Languages
	cfg.RecentLimit = input.Recent
	if cfg.StreakBars < 0 || cfg.LanguageLimit < 0 || cfg.RecentLimit < 0 {
		return fmt.Errorf("bars, languages and recent cannot be negative")
	}
	return nil
}

// processWindow handles the window, week and rolling parameters.
func processWindow(cfg *Config, input *ConfigRawInput) error {
	window := input.Window
	if window == "" {
		window = DefaultWindow
	}
	days, err := ParseWindowDays(window)
	if err != nil {
		return fmt.Errorf("invalid window: %w", err)
	}
	if days < MinWindowDays || days > MaxWindowDays {
		return fmt.Errorf("window must be between %d and %d days (received %d)", MinWindowDays, MaxWindowDays, days)
	}
	cfg.WindowDays = days

	if input.Weeks < 1 || input.Weeks > MaxWeeks {
		return fmt.Errorf("weeks must be between 1 and %d (received %d)", MaxWeeks, input.Weeks)
	}
	cfg.Weeks = input.Weeks

	cfg.WeekStart = time.Sunday
	if input.WeekStart != "" {
		wd, ok := weekdays[strings.ToLower(strings.TrimSpace(input.WeekStart))]
		if !ok {
			return fmt.Errorf("invalid week start '%s'. must be a weekday name", input.WeekStart)
		}
		cfg.WeekStart = wd
	}

	if input.Rolling < 1 || input.Rolling > days {
		return fmt.Errorf("rolling window must be between 1 and %d (received %d)", days, input.Rolling)
	}
	cfg.RollingWindow = input.Rolling
	return nil
}

// processReferenceTime resolves the time zone and the reference instant.
func processReferenceTime(cfg *Config, input *ConfigRawInput) error {
	loc := time.UTC
	if tz := strings.TrimSpace(input.Timezone); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("invalid timezone '%s': %w", tz, err)
		}
		loc = l
	}
	cfg.Location = loc

	now, err := ParseReferenceTime(input.Now, time.Now(), loc)
	if err != nil {
		return err
	}
	cfg.Now = now
	return nil
}

// processGeometry validates the chart parameters.
func processGeometry(cfg *Config, input *ConfigRawInput) error {
	cfg.Smoothing = schema.SmoothingMethod(strings.ToLower(input.Smoothing))
	if cfg.Smoothing == "" {
		cfg.Smoothing = schema.SimpleSmoothing
	}
	if _, ok := schema.ValidSmoothingMethods[cfg.Smoothing]; !ok {
		return fmt.Errorf("invalid smoothing '%s'. must be simple, catmull-rom", input.Smoothing)
	}

	if input.ChartWidth <= 0 || input.ChartHeight <= 0 {
		return fmt.Errorf("chart size must be positive (received %gx%g)", input.ChartWidth, input.ChartHeight)
	}
	if input.TopPad < 0 || input.TopPad >= input.ChartHeight {
		return fmt.Errorf("top pad must be in [0, %g) (received %g)", input.ChartHeight, input.TopPad)
	}
	cfg.ChartWidth = input.ChartWidth
	cfg.ChartHeight = input.ChartHeight
	cfg.TopPad = input.TopPad

	if input.Markers < 0 {
		return fmt.Errorf("markers cannot be negative (received %d)", input.Markers)
	}
	cfg.MarkerEvery = input.Markers

	if input.OuterRadius <= 0 {
		return fmt.Errorf("outer radius must be positive (received %g)", input.OuterRadius)
	}
	if input.InnerRadius < 0 || input.InnerRadius >= input.OuterRadius {
		return fmt.Errorf("inner radius must be in [0, %g) (received %g)", input.OuterRadius, input.InnerRadius)
	}
	if input.Gap < 0 || input.Gap >= 360 {
		return fmt.Errorf("gap must be in [0, 360) degrees (received %g)", input.Gap)
	}
	cfg.OuterRadius = input.OuterRadius
	cfg.InnerRadius = input.InnerRadius
	cfg.GapDegrees = input.Gap
	return nil
}

// resolveSource picks the feed location. A git source is resolved to the root
// of the repository containing --repo.
func resolveSource(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	cfg.Source = schema.SourceKind(strings.ToLower(input.Source))
	if cfg.Source == "" {
		cfg.Source = schema.FileSource
	}
	if _, ok := schema.ValidSourceKinds[cfg.Source]; !ok {
		return fmt.Errorf("invalid source '%s'. must be file, git", input.Source)
	}

	if cfg.Source == schema.FileSource {
		cfg.FeedPath = input.FeedPathStr
		if cfg.FeedPath == "" {
			cfg.FeedPath = DefaultFeedPath
		}
		return nil
	}

	searchPath := input.Repo
	if searchPath == "" {
		searchPath = "."
	}
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	absSearchPath = filepath.Clean(absSearchPath)
	if info, statErr := os.Stat(absSearchPath); statErr == nil && !info.IsDir() {
		absSearchPath = filepath.Dir(absSearchPath)
	}

	root, err := client.GetRepoRoot(ctx, absSearchPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = root
	return nil
}

// ProcessProfilingConfig enables profiling when a file prefix is given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) {
	profilePrefix = strings.TrimSpace(profilePrefix)
	profile.Enabled = profilePrefix != ""
	profile.Prefix = profilePrefix
}
