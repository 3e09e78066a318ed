package updater

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const releaseJSON = `{
	"tag_name": "v2.0.0",
	"name": "bkstg 2.0.0",
	"html_url": "https://example.com/releases/v2.0.0",
	"published_at": "2026-08-01T12:00:00Z",
	"assets": [
		{"name": "bkstg_linux_amd64.tar.gz", "browser_download_url": "https://example.com/dl/bkstg_linux_amd64.tar.gz", "size": 1024}
	]
}`

func newTestUpdater(t *testing.T, handler http.HandlerFunc, opts ...Option) *Updater {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New("1.0.0", append([]Option{WithAPIBase(server.URL), WithHTTPClient(server.Client())}, opts...)...)
}

func TestLatest(t *testing.T) {
	u := newTestUpdater(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/releases/latest") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.github+json" {
			t.Errorf("Accept header = %q", got)
		}
		w.Write([]byte(releaseJSON))
	})

	release, err := u.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if release.Tag != "v2.0.0" {
		t.Errorf("Tag = %q, want v2.0.0", release.Tag)
	}
	if len(release.Assets) != 1 || release.Assets[0].Size != 1024 {
		t.Errorf("Assets = %+v", release.Assets)
	}
}

func TestByTag_AddsVPrefix(t *testing.T) {
	u := newTestUpdater(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/releases/tags/v2.0.0") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(releaseJSON))
	})

	release, err := u.ByTag(context.Background(), "2.0.0")
	if err != nil {
		t.Fatalf("ByTag failed: %v", err)
	}
	if release.Tag != "v2.0.0" {
		t.Errorf("Tag = %q, want v2.0.0", release.Tag)
	}
}

func TestByTag_NotFound(t *testing.T) {
	u := newTestUpdater(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	})

	if _, err := u.ByTag(context.Background(), "v9.9.9"); err == nil {
		t.Error("expected error for an unknown tag")
	}
}

func TestFetch_RateLimited(t *testing.T) {
	u := newTestUpdater(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusForbidden)
	})

	_, err := u.Latest(context.Background())
	if err == nil || !strings.Contains(err.Error(), "rate limit") {
		t.Errorf("err = %v, want a rate limit hint", err)
	}
}

func TestMirrorRewritesAssets(t *testing.T) {
	u := newTestUpdater(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(releaseJSON))
	}, WithMirror("https://mirror.internal/releases/"))

	release, err := u.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	want := "https://mirror.internal/releases/bkstg_linux_amd64.tar.gz"
	if got := release.Assets[0].DownloadURL; got != want {
		t.Errorf("DownloadURL = %q, want %q", got, want)
	}
}
