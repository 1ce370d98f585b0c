// Package cmd defines the command-line interface for cardstats.
package cmd

import (
	"github.com/huangsam/cardstats/internal/contract"
	"github.com/huangsam/cardstats/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(curveCmd)
	rootCmd.AddCommand(donutCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("source", string(schema.FileSource), "Feed source: file or git")
	rootCmd.PersistentFlags().String("repo", "", "Path inside the Git repository for the git source")
	rootCmd.PersistentFlags().String("window", contract.DefaultWindow, "Length of the daily series (e.g., '30 days', '2 weeks')")
	rootCmd.PersistentFlags().Int("weeks", contract.DefaultWeeks, "Number of weekly buckets")
	rootCmd.PersistentFlags().String("week-start", "sunday", "First day of a weekly bucket")
	rootCmd.PersistentFlags().String("now", "", "Reference time in RFC3339 or time ago (default: now)")
	rootCmd.PersistentFlags().String("timezone", "UTC", "IANA time zone that defines calendar days")
	rootCmd.PersistentFlags().Int("rolling", contract.DefaultRolling, "Rolling average window in days")
	rootCmd.PersistentFlags().String("smoothing", string(schema.SimpleSmoothing), "Curve smoothing: simple or catmull-rom")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or yaml or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of curveCmd to Viper
	curveCmd.Flags().Float64("chart-width", contract.DefaultChartWidth, "Plot width in pixels")
	curveCmd.Flags().Float64("chart-height", contract.DefaultChartHeight, "Plot height in pixels")
	curveCmd.Flags().Float64("top-pad", contract.DefaultTopPad, "Headroom above the tallest point in pixels")
	curveCmd.Flags().Int("markers", contract.DefaultMarkerEvery, "Place a marker every N points (0 = none)")
	if err := viper.BindPFlags(curveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding curve flags", err)
	}

	// Bind all flags of donutCmd to Viper
	donutCmd.Flags().Float64("outer-radius", contract.DefaultOuterRadius, "Outer ring radius in pixels")
	donutCmd.Flags().Float64("inner-radius", contract.DefaultInnerRadius, "Inner ring radius in pixels")
	donutCmd.Flags().Float64("gap", contract.DefaultGapDegrees, "Total gap between wedges in degrees")
	if err := viper.BindPFlags(donutCmd.Flags()); err != nil {
		contract.LogFatal("Error binding donut flags", err)
	}
}
