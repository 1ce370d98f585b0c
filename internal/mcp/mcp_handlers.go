package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/huangsam/cardstats/core"
	"github.com/huangsam/cardstats/core/algo"
	"github.com/huangsam/cardstats/core/geom"
	"github.com/huangsam/cardstats/internal/contract"
	"github.com/huangsam/cardstats/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

// streakResponse is the payload of compute_streak.
type streakResponse struct {
	schema.StreakResult
	ActiveDays int `json:"active_days"`
}

// rollingResponse is the payload of rolling_average.
type rollingResponse struct {
	Rolling []float64            `json:"rolling"`
	Summary schema.SeriesSummary `json:"summary"`
}

func (h *toolHandler) handleComputeStreak(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	values, err := numberSlice(request, "counts")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	counts := make([]int, len(values))
	for i, v := range values {
		if v != math.Trunc(v) {
			return mcp.NewToolResultError(fmt.Sprintf("counts must be whole numbers (received %g at %d)", v, i)), nil
		}
		if v < 0 || v > math.MaxInt32 {
			return mcp.NewToolResultError(fmt.Sprintf("counts must be between 0 and %d (received %g at %d)", math.MaxInt32, v, i)), nil
		}
		counts[i] = int(v)
	}
	return jsonResult(streakResponse{
		StreakResult: algo.ComputeStreak(counts),
		ActiveDays:   algo.ActiveDays(counts),
	})
}

func (h *toolHandler) handleRollingAverage(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	series, err := numberSlice(request, "series")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rolling, err := algo.RollingAverage(series, request.GetInt("window", 0))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rolling average failed: %v", err)), nil
	}
	return jsonResult(rollingResponse{Rolling: rolling, Summary: algo.Summarize(series)})
}

func (h *toolHandler) handleCurvePath(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	series, err := numberSlice(request, "series")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg := h.baseCfg.CurveConfig()
	cfg.Width = request.GetFloat("width", cfg.Width)
	cfg.Height = request.GetFloat("height", cfg.Height)
	cfg.TopPad = request.GetFloat("top_pad", cfg.TopPad)
	if m := request.GetString("smoothing", ""); m != "" {
		cfg.Method = schema.SmoothingMethod(m)
	}

	curve, err := geom.BuildCurve(series, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("curve failed: %v", err)), nil
	}
	return jsonResult(curve)
}

func (h *toolHandler) handleDonutSegments(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := request.GetArguments()["segments"]
	if !ok {
		return mcp.NewToolResultError("segments is required"), nil
	}
	// Round trip through JSON to reuse the schema tags.
	data, err := json.Marshal(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid segments: %v", err)), nil
	}
	var inputs []schema.DonutInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid segments: %v", err)), nil
	}

	cfg := h.baseCfg.DonutConfig()
	cfg.OuterRadius = request.GetFloat("outer_radius", cfg.OuterRadius)
	cfg.InnerRadius = request.GetFloat("inner_radius", cfg.InnerRadius)
	cfg.GapDegrees = request.GetFloat("gap", cfg.GapDegrees)

	segments, err := geom.BuildDonut(inputs, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("donut failed: %v", err)), nil
	}
	return jsonResult(segments)
}

func (h *toolHandler) handleBuildReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := h.applyReportArgs(ctx, cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid report parameters: %v", err)), nil
	}

	report, err := core.GetReport(ctx, cfg, core.NewEventSource(cfg, h.client))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}
	return jsonResult(report)
}

// applyReportArgs overrides the feed location, window and reference time.
func (h *toolHandler) applyReportArgs(ctx context.Context, cfg *contract.Config, request mcp.CallToolRequest) error {
	if s := request.GetString("source", ""); s != "" {
		cfg.Source = schema.SourceKind(s)
		if _, ok := schema.ValidSourceKinds[cfg.Source]; !ok {
			return fmt.Errorf("invalid source '%s'", s)
		}
	}
	if p := request.GetString("feed_path", ""); p != "" {
		cfg.FeedPath = p
	}
	if p := request.GetString("repo_path", ""); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		root, err := h.client.GetRepoRoot(ctx, abs)
		if err != nil {
			return err
		}
		cfg.RepoPath = root
	}
	if cfg.Source == schema.GitSource && cfg.RepoPath == "" {
		return fmt.Errorf("repo_path is required for the git source")
	}

	if w := request.GetString("window", ""); w != "" {
		days, err := contract.ParseWindowDays(w)
		if err != nil {
			return err
		}
		if days < contract.MinWindowDays || days > contract.MaxWindowDays {
			return fmt.Errorf("window must be between %d and %d days (received %d)", contract.MinWindowDays, contract.MaxWindowDays, days)
		}
		cfg.WindowDays = days
		cfg.RollingWindow = min(cfg.RollingWindow, days)
	}
	if n := request.GetString("now", ""); n != "" {
		now, err := contract.ParseReferenceTime(n, time.Now(), cfg.Location)
		if err != nil {
			return err
		}
		cfg.Now = now
	}
	return nil
}

// numberSlice reads a required array of numbers.
func numberSlice(request mcp.CallToolRequest, key string) ([]float64, error) {
	raw, ok := request.GetArguments()[key]
	if !ok {
		return nil, fmt.Errorf("%s is required", key)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an array of numbers", key)
	}
	out := make([]float64, len(items))
	for i, item := range items {
		v, ok := item.(float64)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s[%d] is not a finite number", key, i)
		}
		out[i] = v
	}
	return out, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
