// Package cache stores rendered preview artifacts between CLI runs.
//
// Rendering a document through Graphviz is the slowest step of the preview
// command, and the same document is often previewed repeatedly while it is
// being edited. Entries are keyed by a hash of the DOT source and the output
// format, so any change to the document or the preview options is a miss.
//
// Two implementations exist: [FileCache] keeps entries under a directory
// (by default $XDG_CACHE_HOME/kanvax), and [NullCache] stores nothing and is
// used when caching is disabled.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// DefaultTTL is how long rendered previews are kept.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A missing or expired entry reports
	// false with a nil error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Dir returns the default cache directory.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "kanvax"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "kanvax"), nil
}
