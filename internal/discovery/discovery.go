package discovery

import (
	"fmt"
	"strings"

	"github.com/EmanuelTinoco/backstage/internal/config"
)

// Resolver resolves a logical backend plugin id (e.g. "scaffolder") to the
// concrete base URL its API is served from.
type Resolver interface {
	BaseURL(pluginID string) (string, error)
}

// ConfigResolver resolves plugin base URLs from user configuration.
//
// A per-plugin override at plugins.<id>.base_url wins; otherwise the URL is
// derived from the backend convention {backend.base_url}/api/{id}.
type ConfigResolver struct{}

// NewConfigResolver returns a Resolver backed by the loaded configuration.
func NewConfigResolver() *ConfigResolver {
	return &ConfigResolver{}
}

// BaseURL implements Resolver.
func (r *ConfigResolver) BaseURL(pluginID string) (string, error) {
	if pluginID == "" {
		return "", fmt.Errorf("plugin id cannot be empty")
	}

	if override := config.Get("plugins." + pluginID + ".base_url"); override != "" {
		return strings.TrimRight(override, "/"), nil
	}

	backend := config.Get(config.KeyBackendBaseURL)
	if backend == "" {
		return "", fmt.Errorf("backend base URL is not configured (set %s or %s)",
			config.KeyBackendBaseURL, "BKSTG_BACKEND_BASE_URL")
	}

	return strings.TrimRight(backend, "/") + "/api/" + pluginID, nil
}

// Static is a fixed plugin-to-URL mapping, useful for tests and for callers
// that already know their endpoints.
type Static map[string]string

// BaseURL implements Resolver.
func (s Static) BaseURL(pluginID string) (string, error) {
	url, ok := s[pluginID]
	if !ok {
		return "", fmt.Errorf("no base URL registered for plugin %q", pluginID)
	}
	return strings.TrimRight(url, "/"), nil
}
