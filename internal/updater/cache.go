package updater

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	checkFileName = "update-check.json"
	// DefaultMaxAge bounds how long a cached check stays fresh.
	DefaultMaxAge = 24 * time.Hour
)

// Check is the result of a version check, persisted between runs so the
// startup banner never has to wait on the network.
type Check struct {
	Current   string    `json:"current"`
	Latest    string    `json:"latest"`
	CheckedAt time.Time `json:"checked_at"`
	Outdated  bool      `json:"outdated"`
}

// Fresh reports whether the check is recent enough to trust. A nil check is
// never fresh.
func (c *Check) Fresh(maxAge time.Duration) bool {
	return c != nil && time.Since(c.CheckedAt) <= maxAge
}

// Cache stores version checks under a config directory.
type Cache struct {
	dir string
}

// NewCache returns a Cache rooted at dir.
func NewCache(dir string) Cache {
	return Cache{dir: dir}
}

func (c Cache) path() string {
	return filepath.Join(c.dir, checkFileName)
}

// Read loads the persisted check. A missing file yields nil, nil; the CLI
// has simply never checked before.
func (c Cache) Read() (*Check, error) {
	data, err := os.ReadFile(c.path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading update check: %w", err)
	}

	var chk Check
	if err := json.Unmarshal(data, &chk); err != nil {
		return nil, fmt.Errorf("parsing update check: %w", err)
	}
	return &chk, nil
}

// Write persists the check, creating the directory if needed.
func (c Cache) Write(chk *Check) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	data, err := json.MarshalIndent(chk, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding update check: %w", err)
	}
	if err := os.WriteFile(c.path(), data, 0644); err != nil {
		return fmt.Errorf("writing update check: %w", err)
	}
	return nil
}
