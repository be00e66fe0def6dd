package updater

import (
	"fmt"
	"io"
	"time"

	"github.com/reaich/cabreaich-common/internal/branding"
)

// CheckAndPrintBanner prints an update banner if the cached release check
// says a newer version exists. It never blocks: a stale cache is refreshed
// by a background goroutine for the next invocation.
func (ch *Checker) CheckAndPrintBanner(w io.Writer, configDir string) {
	cache, err := LoadCache(configDir)
	if err != nil {
		// A corrupt cache should never break the CLI.
		return
	}

	if cache != nil && cache.UpdateAvailable {
		PrintUpdateBanner(w, cache.CurrentVersion, cache.LatestVersion)
	}

	if IsCacheStale(cache, DefaultCacheMaxAge) {
		go ch.refreshCache(configDir)
	}
}

// PrintUpdateBanner prints the update notification to w.
func PrintUpdateBanner(w io.Writer, current, latest string) {
	fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", current, latest)
	fmt.Fprintf(w, "    See https://github.com/%s/releases\n\n", branding.GitHubRepo())
}

// refreshCache fetches the latest release and rewrites the cache file. Runs
// in the background and never fails loudly.
func (ch *Checker) refreshCache(configDir string) {
	release, err := ch.LatestRelease()
	if err != nil {
		return
	}

	available, err := IsUpdateAvailable(ch.currentVersion, release.Version)
	if err != nil {
		return
	}

	_ = SaveCache(configDir, &CheckCache{
		LatestVersion:   release.Version,
		CurrentVersion:  ch.currentVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	})
}
