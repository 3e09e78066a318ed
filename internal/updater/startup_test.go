package updater

import (
	"strings"
	"testing"
	"time"
)

func TestBanner_Outdated(t *testing.T) {
	dir := t.TempDir()
	cache := NewCache(dir)
	if err := cache.Write(&Check{
		Current:   "1.0.0",
		Latest:    "v1.2.0",
		CheckedAt: time.Now(),
		Outdated:  true,
	}); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	New("1.0.0").Banner(&out, dir)

	if !strings.Contains(out.String(), "1.0.0 -> v1.2.0") {
		t.Errorf("banner output %q missing the version jump", out.String())
	}
	if !strings.Contains(out.String(), "update") {
		t.Errorf("banner output %q does not mention the update command", out.String())
	}
}

func TestBanner_UpToDate(t *testing.T) {
	dir := t.TempDir()
	cache := NewCache(dir)
	if err := cache.Write(&Check{
		Current:   "1.2.0",
		Latest:    "v1.2.0",
		CheckedAt: time.Now(),
		Outdated:  false,
	}); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	New("1.2.0").Banner(&out, dir)

	if out.Len() != 0 {
		t.Errorf("expected silence when up to date, got %q", out.String())
	}
}
