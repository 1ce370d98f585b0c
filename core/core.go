// Package core has the report orchestration on top of aggregation, statistics and geometry.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/cardstats/internal/contract"
	"github.com/huangsam/cardstats/internal/outwriter"
	"github.com/huangsam/cardstats/schema"
)

// ExecutorFunc defines the function signature for executing different views.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// printerFunc writes one view of a report.
type printerFunc func(report schema.Report, cfg *contract.Config, duration time.Duration) error

// ExecuteReport builds the full report and prints every dataset.
func ExecuteReport(ctx context.Context, cfg *contract.Config) error {
	return execute(ctx, cfg, outwriter.PrintReport)
}

// ExecuteStreak prints the daily series with the streak card values.
func ExecuteStreak(ctx context.Context, cfg *contract.Config) error {
	return execute(WithSkipGeometry(ctx), cfg, outwriter.PrintStreak)
}

// ExecuteWeekly prints the weekly buckets.
func ExecuteWeekly(ctx context.Context, cfg *contract.Config) error {
	return execute(WithSkipGeometry(ctx), cfg, outwriter.PrintWeekly)
}

// ExecuteHours prints the hour histogram and the time distribution ring.
func ExecuteHours(ctx context.Context, cfg *contract.Config) error {
	return execute(ctx, cfg, outwriter.PrintHours)
}

// ExecuteCurve prints the contribution chart geometry.
func ExecuteCurve(ctx context.Context, cfg *contract.Config) error {
	return execute(ctx, cfg, outwriter.PrintCurve)
}

// ExecuteDonut prints the time distribution segments.
func ExecuteDonut(ctx context.Context, cfg *contract.Config) error {
	return execute(ctx, cfg, outwriter.PrintDonut)
}

// GetReport loads the feed from src and builds a report.
func GetReport(ctx context.Context, cfg *contract.Config, src contract.EventSource) (schema.Report, error) {
	feed, err := src.Load(ctx)
	if err != nil {
		return schema.Report{}, err
	}
	contract.Logger().Debug().
		Int("events", len(feed.Events)).
		Int("daily", len(feed.Daily)).
		Int("languages", len(feed.Languages)).
		Msg("Loaded feed")
	return BuildReport(ctx, cfg, feed)
}

// execute is the shared load, build and print pipeline of the CLI views.
func execute(ctx context.Context, cfg *contract.Config, printer printerFunc) error {
	start := time.Now()
	src := NewEventSource(cfg, contract.NewLocalGitClient())
	report, err := GetReport(ctx, cfg, src)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	return printer(report, cfg, time.Since(start))
}
