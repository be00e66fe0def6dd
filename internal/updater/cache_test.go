package updater

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()

	want := &CheckCache{
		LatestVersion:   "1.2.0",
		CurrentVersion:  "1.1.0",
		CheckedAt:       time.Now().UTC().Truncate(time.Second),
		UpdateAvailable: true,
	}

	if err := SaveCache(dir, want); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}

	got, err := LoadCache(dir)
	if err != nil {
		t.Fatalf("LoadCache: %v", err)
	}
	if got == nil {
		t.Fatal("LoadCache returned nil after save")
	}
	if got.LatestVersion != want.LatestVersion {
		t.Errorf("LatestVersion = %q, want %q", got.LatestVersion, want.LatestVersion)
	}
	if got.UpdateAvailable != want.UpdateAvailable {
		t.Errorf("UpdateAvailable = %v, want %v", got.UpdateAvailable, want.UpdateAvailable)
	}
	if !got.CheckedAt.Equal(want.CheckedAt) {
		t.Errorf("CheckedAt = %v, want %v", got.CheckedAt, want.CheckedAt)
	}
}

func TestLoadCache_Missing(t *testing.T) {
	cache, err := LoadCache(t.TempDir())
	if err != nil {
		t.Fatalf("LoadCache on empty dir: %v", err)
	}
	if cache != nil {
		t.Errorf("expected nil cache for missing file, got %+v", cache)
	}
}

func TestLoadCache_Corrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, cacheFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCache(dir); err == nil {
		t.Error("expected error for corrupt cache file")
	}
}

func TestSaveCache_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	err := SaveCache(dir, &CheckCache{CheckedAt: time.Now()})
	if err != nil {
		t.Fatalf("SaveCache: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, cacheFileName)); err != nil {
		t.Errorf("cache file not created: %v", err)
	}
}

func TestIsCacheStale(t *testing.T) {
	tests := []struct {
		name  string
		cache *CheckCache
		want  bool
	}{
		{name: "nil cache", cache: nil, want: true},
		{name: "fresh", cache: &CheckCache{CheckedAt: time.Now()}, want: false},
		{name: "stale", cache: &CheckCache{CheckedAt: time.Now().Add(-25 * time.Hour)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCacheStale(tt.cache, DefaultCacheMaxAge); got != tt.want {
				t.Errorf("IsCacheStale = %v, want %v", got, tt.want)
			}
		})
	}
}
