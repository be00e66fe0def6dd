package updater

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    int
		wantErr bool
	}{
		{name: "current older", current: "1.0.0", latest: "1.1.0", want: -1},
		{name: "equal", current: "2.3.4", latest: "2.3.4", want: 0},
		{name: "current newer", current: "2.0.0", latest: "1.9.9", want: 1},
		{name: "v prefix tolerated", current: "v1.0.0", latest: "v1.0.1", want: -1},
		{name: "mixed prefixes", current: "1.2.0", latest: "v1.2.0", want: 0},
		{name: "prerelease older than release", current: "1.0.0-rc.1", latest: "1.0.0", want: -1},
		{name: "garbage current", current: "not-a-version", latest: "1.0.0", wantErr: true},
		{name: "garbage latest", current: "1.0.0", latest: "???", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompareVersions(tt.current, tt.latest)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}

func TestIsUpdateAvailable(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{"1.0.0", "1.0.1", true},
		{"1.0.0", "1.0.0", false},
		{"1.1.0", "1.0.9", false},
		{"v0.9.0", "v1.0.0", true},
	}

	for _, tt := range tests {
		got, err := IsUpdateAvailable(tt.current, tt.latest)
		if err != nil {
			t.Fatalf("IsUpdateAvailable(%q, %q): %v", tt.current, tt.latest, err)
		}
		if got != tt.want {
			t.Errorf("IsUpdateAvailable(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
		}
	}
}
