package core

import (
	"context"
	"time"

	"github.com/huangsam/cardstats/core/agg"
	"github.com/huangsam/cardstats/internal/contract"
	"github.com/huangsam/cardstats/schema"
)

// GitSource turns the commit history of a local repository into a feed.
type GitSource struct {
	client contract.GitClient
	repo   string
	start  time.Time
	end    time.Time
}

var _ contract.EventSource = &GitSource{} // Compile-time check

// NewGitSource reads commits of repo between start and end.
func NewGitSource(client contract.GitClient, repo string, start, end time.Time) *GitSource {
	return &GitSource{client: client, repo: repo, start: start, end: end}
}

// Load implements the contract.EventSource interface.
func (s *GitSource) Load(ctx context.Context) (schema.Feed, error) {
	events, err := agg.CollectGitEvents(ctx, s.client, s.repo, s.start, s.end)
	if err != nil {
		return schema.Feed{}, err
	}
	return schema.Feed{Events: events}, nil
}

// NewEventSource picks the configured source. A git source covers the longer
// of the daily window and the weekly buckets.
func NewEventSource(cfg *contract.Config, client contract.GitClient) contract.EventSource {
	if cfg.Source == schema.GitSource {
		days := max(cfg.WindowDays, cfg.Weeks*7+6)
		start := cfg.Now.AddDate(0, 0, -days)
		return NewGitSource(client, cfg.RepoPath, start, cfg.Now)
	}
	return contract.NewFileSource(cfg.FeedPath)
}
