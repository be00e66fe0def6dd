package updater

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheFileName = "release-check.json"
	// DefaultCacheMaxAge is how long a release check stays fresh.
	DefaultCacheMaxAge = 24 * time.Hour
)

// CheckCache holds the cached outcome of a release lookup.
type CheckCache struct {
	LatestVersion   string    `json:"latest_version"`
	CurrentVersion  string    `json:"current_version"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

// LoadCache reads the release cache from the config directory. Returns
// nil, nil if the cache file does not exist (first run).
func LoadCache(configDir string) (*CheckCache, error) {
	path := filepath.Join(configDir, cacheFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading release cache: %w", err)
	}

	var cache CheckCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("parsing release cache: %w", err)
	}
	return &cache, nil
}

// SaveCache writes the release cache to the config directory.
func SaveCache(configDir string, cache *CheckCache) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling release cache: %w", err)
	}

	path := filepath.Join(configDir, cacheFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing release cache: %w", err)
	}
	return nil
}

// IsCacheStale returns true if the cache is nil or older than maxAge.
func IsCacheStale(cache *CheckCache, maxAge time.Duration) bool {
	if cache == nil {
		return true
	}
	return time.Since(cache.CheckedAt) > maxAge
}
