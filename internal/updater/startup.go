package updater

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/EmanuelTinoco/backstage/internal/branding"
)

// Banner prints an update notice when the cached check says the running
// build is behind. It never blocks: a stale or missing cache is refreshed by
// a background goroutine for the next run, and cache errors stay silent.
func (u *Updater) Banner(w io.Writer, configDir string) {
	cache := NewCache(configDir)
	chk, err := cache.Read()
	if err != nil {
		return
	}

	if chk != nil && chk.Outdated {
		fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", chk.Current, chk.Latest)
		fmt.Fprintf(w, "    Run `%s update` for details\n\n", branding.CLIName())
	}

	if !chk.Fresh(DefaultMaxAge) {
		go u.refresh(cache)
	}
}

func (u *Updater) refresh(cache Cache) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	release, err := u.Latest(ctx)
	if err != nil {
		return
	}
	outdated, err := u.UpdateAvailable(release)
	if err != nil {
		return
	}
	_ = cache.Write(&Check{
		Current:   u.current,
		Latest:    release.Tag,
		CheckedAt: time.Now(),
		Outdated:  outdated,
	})
}
