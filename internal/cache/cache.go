// Package cache persists extracted media metadata between builds so pages
// already seen are never refetched.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/s0rta/tcshows/internal/types"
)

// Cache maps a normalized media URL to the metadata extracted from it. It is
// loaded once at the start of a build and persisted once at the end. Entries
// never expire, so stale metadata sticks around until the file is deleted by
// hand.
type Cache struct {
	entries map[string]types.MediaMetadata
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]types.MediaMetadata)}
}

// Key normalizes a media URL for cache identity. Lookups are
// case-insensitive; the sheet editors are not.
func Key(mediaURL string) string {
	return strings.ToLower(strings.TrimSpace(mediaURL))
}

// Get returns the cached metadata for a URL, if any.
func (c *Cache) Get(mediaURL string) (types.MediaMetadata, bool) {
	meta, ok := c.entries[Key(mediaURL)]
	return meta, ok
}

// Put stores metadata under the URL's normalized key.
func (c *Cache) Put(mediaURL string, meta types.MediaMetadata) {
	c.entries[Key(mediaURL)] = meta
}

// Len reports how many entries the cache holds.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Load reads a cache file written by a previous build. A missing or corrupt
// file degrades to an empty cache and a warning; it never fails the build.
func Load(path string) *Cache {
	c := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithField("path", path).Info("no media cache found, starting empty")
		} else {
			logrus.WithError(err).WithField("path", path).Warn("could not read media cache, starting empty")
		}
		return c
	}

	if err := json.Unmarshal(data, &c.entries); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("corrupt media cache, starting empty")
		c.entries = make(map[string]types.MediaMetadata)
	}
	return c
}

// Save writes the cache wholesale, replacing any previous file. The write
// goes through a temp file and rename; best effort, not crash-proof.
func (c *Cache) Save(path string) error {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal media cache: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create cache directory %s: %w", dir, err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write media cache %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace media cache %s: %w", path, err)
	}
	return nil
}
