// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/cardstats/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the cardstats MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Cardstats Report Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	numberItems := mcp.Items(map[string]any{"type": "number"})

	// --- 1. Tool: compute_streak ---
	s.AddTool(mcp.NewTool("compute_streak",
		mcp.WithDescription("Compute the current and longest run of active days from daily counts, oldest first."),
		mcp.WithArray("counts", mcp.Description("Daily activity counts ending today."), mcp.Required(), numberItems),
	), h.handleComputeStreak)

	// --- 2. Tool: rolling_average ---
	s.AddTool(mcp.NewTool("rolling_average",
		mcp.WithDescription("Compute the trailing rolling average and summary statistics of a series."),
		mcp.WithArray("series", mcp.Description("The numeric series."), mcp.Required(), numberItems),
		mcp.WithNumber("window", mcp.Description("Rolling window size, at least 1."), mcp.Required()),
	), h.handleRollingAverage)

	// --- 3. Tool: curve_path ---
	s.AddTool(mcp.NewTool("curve_path",
		mcp.WithDescription("Map a series into pixel space and return the smoothed line and area path descriptors."),
		mcp.WithArray("series", mcp.Description("At least two values."), mcp.Required(), numberItems),
		mcp.WithNumber("width", mcp.Description("Plot width in pixels.")),
		mcp.WithNumber("height", mcp.Description("Plot height in pixels.")),
		mcp.WithNumber("top_pad", mcp.Description("Headroom above the tallest point.")),
		mcp.WithString("smoothing", mcp.Description("Smoothing method. Defaults to 'simple'."), mcp.Enum("simple", "catmull-rom")),
	), h.handleCurvePath)

	// --- 4. Tool: donut_segments ---
	s.AddTool(mcp.NewTool("donut_segments",
		mcp.WithDescription("Lay out categorical counts as annulus wedges clockwise from 12 o'clock."),
		mcp.WithArray("segments", mcp.Description("Objects with label, optional color and a non-negative count."), mcp.Required(),
			mcp.Items(map[string]any{"type": "object"})),
		mcp.WithNumber("outer_radius", mcp.Description("Outer ring radius.")),
		mcp.WithNumber("inner_radius", mcp.Description("Inner ring radius, below the outer radius.")),
		mcp.WithNumber("gap", mcp.Description("Total gap between neighbouring wedges in degrees.")),
	), h.handleDonutSegments)

	// --- 5. Tool: build_report ---
	s.AddTool(mcp.NewTool("build_report",
		mcp.WithDescription("Build every report card dataset from a feed file or the history of a local Git repository."),
		mcp.WithString("source", mcp.Description("Feed source. Defaults to the server configuration."), mcp.Enum("file", "git")),
		mcp.WithString("feed_path", mcp.Description("Path to a JSON or YAML feed file.")),
		mcp.WithString("repo_path", mcp.Description("Path inside the Git repository.")),
		mcp.WithString("window", mcp.Description("Window of the daily series (e.g., '30 days', '2 weeks').")),
		mcp.WithString("now", mcp.Description("Reference time as RFC 3339 or relative (e.g., '1 week ago').")),
	), h.handleBuildReport)

	return s
}

// StartMCPServer starts the cardstats MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
