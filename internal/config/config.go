package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/EmanuelTinoco/backstage/internal/branding"
	"github.com/spf13/viper"
)

const configFileName = "config.yaml"

// Well-known configuration keys. Each dotted key maps to an environment
// variable by upper-casing and replacing dots with underscores, so
// backend.base_url is overridden by BKSTG_BACKEND_BASE_URL.
const (
	KeyBackendBaseURL = "backend.base_url"
	KeyBackendToken   = "backend.token"
	KeyUpdateMirror   = "update.mirror"
)

// Dir returns the path to the config directory (~/.bkstg/). It falls back
// to the working directory when the home directory cannot be determined.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.bkstg/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), configFileName)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load points Viper at the config file and wires up environment overrides.
// A missing config file is not an error; env-only setups are supported.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Get returns a config value by key, or "" if unset.
func Get(key string) string {
	return viper.GetString(key)
}

// Set stores a key-value pair and persists the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)
	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
