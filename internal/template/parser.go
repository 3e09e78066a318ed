package template

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// Parse decodes a template manifest from raw YAML bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing template manifest: %w", err)
	}

	if m.Name == "" {
		return nil, fmt.Errorf("template manifest is missing a name")
	}

	if m.Version != "" {
		version := strings.TrimPrefix(m.Version, "v")
		if _, err := semver.NewVersion(version); err != nil {
			return nil, fmt.Errorf("template %s has invalid version %q: %w", m.Name, m.Version, err)
		}
	}

	return &m, nil
}

// ParseFile reads and decodes a template manifest file.
func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template manifest %s: %w", path, err)
	}
	return Parse(data)
}
