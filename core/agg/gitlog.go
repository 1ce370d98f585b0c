package agg

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/cardstats/internal/contract"
	"github.com/huangsam/cardstats/schema"
)

// CollectGitEvents runs one repository-wide git log over [start, end] and turns
// every commit into a commit event. A zero start or end leaves that side open.
func CollectGitEvents(ctx context.Context, client contract.GitClient, repoPath string, start, end time.Time) ([]schema.Event, error) {
	out, err := client.GetActivityLog(ctx, repoPath, start, end)
	if err != nil {
		return nil, err
	}
	return ParseGitLog(out, filepath.Base(filepath.Clean(repoPath))), nil
}

// ParseGitLog reads commit header lines of the form "--hash|date|author|subject".
// Malformed headers are dropped. The date is kept verbatim so a bad value is
// skipped later like any other unparsable timestamp.
func ParseGitLog(out []byte, repository string) []schema.Event {
	var events []schema.Event
	for l := range strings.SplitSeq(string(out), "\n") {
		l = strings.Trim(l, " \t\r\n'")
		if l == "" {
			continue
		}
		date, subject, ok := parseCommitHeader(l)
		if !ok {
			continue
		}
		events = append(events, schema.Event{
			Timestamp:  date,
			Category:   schema.CommitEvent,
			Repository: repository,
			Message:    subject,
		})
	}
	return events
}

// parseCommitHeader extracts the date and subject from a commit header line.
func parseCommitHeader(line string) (string, string, bool) {
	if !strings.HasPrefix(line, "--") || len(line) < 7 { // --h|d|a minimum
		return "", "", false
	}
	parts := strings.SplitN(line[2:], "|", 4) // hash|date|author|subject
	if len(parts) < 3 || parts[0] == "" {
		return "", "", false
	}
	subject := ""
	if len(parts) == 4 {
		subject = parts[3]
	}
	return parts[1], subject, true
}
