package updater

import (
	"net/http"
	"time"

	"github.com/EmanuelTinoco/backstage/internal/branding"
)

// Release is the subset of a GitHub release the CLI cares about.
type Release struct {
	Tag       string    `json:"tag_name"`
	Title     string    `json:"name"`
	Published time.Time `json:"published_at"`
	HTMLURL   string    `json:"html_url"`
	Assets    []Asset   `json:"assets"`
}

// Asset is a downloadable file attached to a release.
type Asset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
	Size        int64  `json:"size"`
}

// Updater looks up CLI releases and decides whether the running build is
// behind. It never touches the installed binary; builds are distributed
// through the portal team's package channels.
type Updater struct {
	current    string
	repo       string
	apiBase    string
	mirror     string
	httpClient *http.Client
}

// Option configures an Updater.
type Option func(*Updater)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(u *Updater) { u.httpClient = c }
}

// WithMirror rewrites asset download URLs to point at a release mirror.
func WithMirror(mirror string) Option {
	return func(u *Updater) { u.mirror = mirror }
}

// WithAPIBase overrides the GitHub API base URL.
func WithAPIBase(base string) Option {
	return func(u *Updater) { u.apiBase = base }
}

// New creates an Updater for the running build's version string.
func New(current string, opts ...Option) *Updater {
	u := &Updater{
		current:    current,
		repo:       branding.GitHubRepo(),
		apiBase:    "https://api.github.com",
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// UpdateAvailable reports whether the release is newer than the running
// build.
func (u *Updater) UpdateAvailable(r *Release) (bool, error) {
	cmp, err := Compare(u.current, r.Tag)
	if err != nil {
		return false, err
	}
	return cmp < 0, nil
}
