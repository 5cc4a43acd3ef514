package verify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	cacheDir      = ".badgemaker/cache/oracle"
	engineVersion = "1"
)

// Cache stores reference renderer output by content address. A miss never
// touches existing entries.
type Cache struct {
	RootDir string
	Enabled bool
}

type cacheEntry struct {
	Case Case   `json:"case"`
	SVG  string `json:"svg"`
}

// Get retrieves the cached reference output for key. Returns "", false on
// a miss or an unreadable entry.
func (c *Cache) Get(key string) (string, bool) {
	if c == nil || !c.Enabled || !validKey(key) {
		return "", false
	}

	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return "", false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false
	}
	return entry.SVG, true
}

// Put stores reference output for a case.
func (c *Cache) Put(key string, tc Case, svg string) error {
	if c == nil || !c.Enabled {
		return nil
	}
	if !validKey(key) {
		return fmt.Errorf("invalid cache key %q", key)
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	data, err := json.Marshal(cacheEntry{Case: tc, SVG: svg})
	if err != nil {
		return err
	}

	// Write-then-rename so concurrent readers never see a partial entry.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".entry-*")
	if err != nil {
		return fmt.Errorf("creating cache entry: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Clear removes the entire cache directory.
func (c *Cache) Clear() error {
	return os.RemoveAll(filepath.Join(c.RootDir, cacheDir))
}

// validKey reports whether key is a lower-case hex digest of at least two
// characters, the shape Case.Key produces.
func validKey(key string) bool {
	if len(key) < 2 {
		return false
	}
	for _, r := range key {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// path returns the filesystem path for a cache key.
// Uses 2-char prefix subdirectory to avoid huge flat directories.
func (c *Cache) path(key string) string {
	return filepath.Join(c.RootDir, cacheDir, key[:2], key+".json")
}
