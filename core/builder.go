package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/huangsam/cardstats/core/agg"
	"github.com/huangsam/cardstats/core/algo"
	"github.com/huangsam/cardstats/core/geom"
	"github.com/huangsam/cardstats/internal/contract"
	"github.com/huangsam/cardstats/schema"
)

// gridFractions are the horizontal guides of the contribution chart.
var gridFractions = []float64{0, 0.5, 1}

// topRanked is how many busiest days and weeks a report keeps.
const topRanked = 3

// Stage computes one group of report fields. Stages run concurrently, so each
// must write only the fields it owns.
type Stage func(b *ReportBuilder) error

// ReportBuilder builds a report from a loaded feed.
type ReportBuilder struct {
	cfg    *contract.Config
	feed   schema.Feed
	report *schema.Report
	counts []int
	err    error
}

// NewReportBuilder is the starting point for building a report.
func NewReportBuilder(cfg *contract.Config, feed schema.Feed) *ReportBuilder {
	return &ReportBuilder{
		cfg:  cfg,
		feed: feed,
		report: &schema.Report{
			ID:          uuid.NewString(),
			GeneratedAt: cfg.Now,
			WindowDays:  cfg.WindowDays,
			Timezone:    cfg.Location.String(),
		},
	}
}

// BuildDaily fills the daily series every other stage depends on. Pre-aggregated
// daily records win over events, which are then only used for the other charts.
func (b *ReportBuilder) BuildDaily() *ReportBuilder {
	if b.err != nil {
		return b
	}
	var (
		series schema.TimeSeries
		err    error
	)
	if len(b.feed.Daily) > 0 {
		series, err = agg.DailyFromCounts(b.feed.Daily, b.cfg.WindowDays, b.cfg.Now)
	} else {
		series, err = agg.BucketDaily(b.feed.Events, b.cfg.WindowDays, b.cfg.Now)
	}
	if err != nil {
		b.err = fmt.Errorf("daily series: %w", err)
		return b
	}
	b.report.Daily = series
	b.counts = series.Counts()
	b.report.Skipped = agg.CountUnparsable(b.feed.Events) + agg.CountBadRecords(b.feed.Daily)
	if b.report.Skipped > 0 {
		contract.Logger().Warn().Int("skipped", b.report.Skipped).Msg("Feed records with unparsable dates were skipped")
	}
	return b
}

// Run executes the stages concurrently and records every failure.
func (b *ReportBuilder) Run(ctx context.Context, stages ...Stage) *ReportBuilder {
	if b.err != nil {
		return b
	}
	if err := ctx.Err(); err != nil {
		b.err = err
		return b
	}
	errs := make([]error, len(stages))
	var wg sync.WaitGroup
	for i, stage := range stages {
		wg.Go(func() {
			errs[i] = stage(b)
		})
	}
	wg.Wait()
	b.err = errors.Join(errs...)
	return b
}

// Build returns the finished report.
func (b *ReportBuilder) Build() (schema.Report, error) {
	if b.err != nil {
		return schema.Report{}, b.err
	}
	return *b.report, nil
}

// StatsStage fills the streak, summary and rolling average.
func StatsStage(b *ReportBuilder) error {
	b.report.Streak = algo.ComputeStreak(b.counts)
	b.report.ActiveDays = algo.ActiveDays(b.counts)

	values := b.report.Daily.Values()
	b.report.Summary = algo.Summarize(values)
	rolling, err := algo.RollingAverage(values, b.cfg.RollingWindow)
	if err != nil {
		return fmt.Errorf("rolling average: %w", err)
	}
	b.report.Rolling = rolling
	b.report.TopDays = algo.RankDays(b.report.Daily, topRanked)
	return nil
}

// BucketStage fills the weekly buckets and the hour histogram.
func BucketStage(b *ReportBuilder) error {
	weekly, err := agg.BucketWeeklyAligned(b.feed.Events, b.cfg.Weeks, b.cfg.Now, b.cfg.WeekStart)
	if err != nil {
		return fmt.Errorf("weekly buckets: %w", err)
	}
	b.report.Weekly = weekly
	b.report.TopWeeks = algo.RankWeeks(weekly, topRanked)
	b.report.Hours = agg.BucketHourOfDay(b.feed.Events, b.cfg.Location)
	return nil
}

// FeedStage fills the language shares and recent activity.
func FeedStage(b *ReportBuilder) error {
	b.report.Languages = agg.LanguageShares(b.feed.Languages, b.cfg.LanguageLimit)
	b.report.Recent = agg.RecentActivity(b.feed.Events, b.cfg.RecentLimit)
	return nil
}

// CurveStage fills the contribution chart.
func CurveStage(b *ReportBuilder) error {
	curveCfg := b.cfg.CurveConfig()
	curve, err := geom.BuildCurve(b.report.Daily.Values(), curveCfg)
	if err != nil {
		return fmt.Errorf("contribution curve: %w", err)
	}
	b.report.Contributions = curve
	b.report.Markers = geom.Markers(curve.Coordinates, b.cfg.MarkerEvery)
	b.report.GridLines = geom.GridLines(curveCfg, gridFractions)
	return nil
}

// BarStage fills the streak mini chart.
func BarStage(b *ReportBuilder) error {
	b.report.StreakBars = geom.BuildBars(b.counts, b.cfg.BarConfig())
	return nil
}

// DonutStage fills the time distribution ring. It reads the hour histogram,
// so it must run after BucketStage.
func DonutStage(b *ReportBuilder) error {
	inputs := agg.SumPeriods(b.report.Hours, agg.DefaultDayPeriods())
	segments, err := geom.BuildDonut(inputs, b.cfg.DonutConfig())
	if err != nil {
		return fmt.Errorf("time distribution: %w", err)
	}
	b.report.TimeDistribution = segments
	if peak, ok := agg.PeakPeriod(inputs); ok && peak.Count > 0 {
		b.report.PeakPeriod = peak.Label
	}
	return nil
}

// BuildReport computes every dataset of one report. Geometry is left out when
// the context asks to skip it.
func BuildReport(ctx context.Context, cfg *contract.Config, feed schema.Feed) (schema.Report, error) {
	b := NewReportBuilder(cfg, feed).BuildDaily()
	if shouldSkipGeometry(ctx) {
		return b.Run(ctx, StatsStage, BucketStage, FeedStage).Build()
	}
	return b.
		Run(ctx, StatsStage, BucketStage, FeedStage, CurveStage, BarStage).
		Run(ctx, DonutStage).
		Build()
}
