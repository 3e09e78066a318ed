package cli

import (
	"fmt"
	"os"

	"github.com/EmanuelTinoco/backstage/internal/branding"
	"github.com/EmanuelTinoco/backstage/internal/config"
	"github.com/EmanuelTinoco/backstage/internal/home"
	"github.com/EmanuelTinoco/backstage/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` submits scaffolder tasks from software templates,
inspects their status, and follows their logs from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Skip banners for scripted commands.
		name := cmd.Name()
		if name == "version" || name == "get" || name == "set" || name == "update" {
			return
		}

		// Time-of-day greeting, same language for the whole process run.
		g := home.TimeBasedGreeting()
		fmt.Fprintf(os.Stderr, "%s! (%s)\n", g.Greeting, g.Language)

		// Non-blocking banner from the cached version check.
		updater.New(buildVersion).Banner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	config.Load()
	return rootCmd.Execute()
}
