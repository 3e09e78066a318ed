package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/EmanuelTinoco/backstage/internal/branding"
)

// Latest fetches the most recent release of the CLI.
func (u *Updater) Latest(ctx context.Context) (*Release, error) {
	return u.fetch(ctx, fmt.Sprintf("%s/repos/%s/releases/latest", u.apiBase, u.repo))
}

// ByTag fetches the release published under the given tag. A missing "v"
// prefix is tolerated, so "1.2.0" and "v1.2.0" name the same release.
func (u *Updater) ByTag(ctx context.Context, tag string) (*Release, error) {
	if !strings.HasPrefix(tag, "v") {
		tag = "v" + tag
	}
	return u.fetch(ctx, fmt.Sprintf("%s/repos/%s/releases/tags/%s", u.apiBase, u.repo, tag))
}

func (u *Updater) fetch(ctx context.Context, url string) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", branding.CLIName()+"-updater")
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching release: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("release not found")
	case http.StatusForbidden:
		return nil, fmt.Errorf("GitHub API rate limit exceeded, set GITHUB_TOKEN for higher limits")
	default:
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("parsing release JSON: %w", err)
	}

	if u.mirror != "" {
		base := strings.TrimRight(u.mirror, "/")
		for i := range release.Assets {
			release.Assets[i].DownloadURL = base + "/" + release.Assets[i].Name
		}
	}
	return &release, nil
}
