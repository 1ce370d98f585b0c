// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/cardstats/schema"
)

// GitClient defines the git operations needed to turn a repository into an activity feed.
// This allows the core logic to be tested without needing a real git executable.
type GitClient interface {
	// Run executes a git command and returns its output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetActivityLog returns one commit header per line for the repository,
	// formatted as "--hash|date|author|subject".
	GetActivityLog(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]byte, error)
}

// EventSource loads the raw activity feed that every report is computed from.
type EventSource interface {
	Load(ctx context.Context) (schema.Feed, error)
}
