package contract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/cardstats/schema"
	"gopkg.in/yaml.v3"
)

// FileSource loads a feed document from local disk. Files ending in .yaml or
// .yml are read as YAML, anything else as JSON.
type FileSource struct {
	Path string
}

var _ EventSource = &FileSource{} // Compile-time check

// NewFileSource creates a source for the feed at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load implements the EventSource interface.
func (s *FileSource) Load(ctx context.Context) (schema.Feed, error) {
	if err := ctx.Err(); err != nil {
		return schema.Feed{}, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return schema.Feed{}, fmt.Errorf("failed to read feed: %w", err)
	}
	feed, err := DecodeFeed(data, filepath.Ext(s.Path))
	if err != nil {
		return schema.Feed{}, fmt.Errorf("failed to decode feed %s: %w", s.Path, err)
	}
	return feed, nil
}

// DecodeFeed parses a feed document. The extension picks the format.
func DecodeFeed(data []byte, ext string) (schema.Feed, error) {
	var feed schema.Feed
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &feed); err != nil {
			return schema.Feed{}, err
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&feed); err != nil {
			return schema.Feed{}, err
		}
	}
	return feed, nil
}
