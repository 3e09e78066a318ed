// Package updater checks GitHub Releases (or a configured mirror) for newer
// CLI builds. A daily-cached version check powers the startup banner; the
// update command reports where to fetch the new build from.
package updater
