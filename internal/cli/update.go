package cli

import (
	"fmt"
	"time"

	"github.com/EmanuelTinoco/backstage/internal/config"
	"github.com/EmanuelTinoco/backstage/internal/updater"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	updateCheckOnly bool
	updateTag       string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	Long: `Check GitHub Releases (or the configured mirror) for a newer build and
print where to get it. The portal team distributes builds through its own
package channels, so this command does not replace the running binary.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "Only refresh the cached version check")
	updateCmd.Flags().StringVar(&updateTag, "version", "", "Look up a specific release tag instead of the latest")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	var opts []updater.Option
	if mirror := config.Get(config.KeyUpdateMirror); mirror != "" {
		opts = append(opts, updater.WithMirror(mirror))
	}
	u := updater.New(buildVersion, opts...)

	var (
		release *updater.Release
		err     error
	)
	if updateTag != "" {
		release, err = u.ByTag(cmd.Context(), updateTag)
		if err != nil {
			return fmt.Errorf("looking up release %s: %w", updateTag, err)
		}
	} else {
		release, err = u.Latest(cmd.Context())
		if err != nil {
			return fmt.Errorf("checking latest release: %w", err)
		}
	}

	available, err := u.UpdateAvailable(release)
	if err != nil {
		return fmt.Errorf("comparing versions: %w", err)
	}

	// A pinned tag lookup must not poison the startup banner cache.
	if updateTag == "" {
		_ = updater.NewCache(config.Dir()).Write(&updater.Check{
			Current:   buildVersion,
			Latest:    release.Tag,
			CheckedAt: time.Now(),
			Outdated:  available,
		})
	}

	w := cmd.OutOrStdout()
	if !available {
		fmt.Fprintf(w, "Already up to date (%s, release %s).\n", buildVersion, release.Tag)
		return nil
	}

	fmt.Fprintf(w, "Update available: %s -> %s\n", buildVersion, release.Tag)
	if updateCheckOnly {
		return nil
	}

	fmt.Fprintf(w, "Release notes: %s\n", release.HTMLURL)
	for _, asset := range release.Assets {
		fmt.Fprintf(w, "  %s (%s): %s\n", asset.Name, humanize.Bytes(uint64(asset.Size)), asset.DownloadURL)
	}
	return nil
}
