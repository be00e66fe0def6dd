package updater

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/reaich/cabreaich-common/internal/branding"
)

// apiBase is a variable so tests can point the checker at a fake server.
var apiBase = "https://api.github.com"

// LatestRelease fetches the latest release of the tooling from GitHub.
func (ch *Checker) LatestRelease() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", apiBase, branding.GitHubRepo())

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", branding.CLIName()+"-updater")

	// Optional GitHub token for higher rate limits.
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := ch.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching release: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("no releases published")
	case resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("GitHub API rate limit exceeded; set GITHUB_TOKEN for higher limits")
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var release Release
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("parsing release JSON: %w", err)
	}
	return &release, nil
}
