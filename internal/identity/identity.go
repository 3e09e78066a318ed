package identity

import (
	"os"

	"github.com/EmanuelTinoco/backstage/internal/branding"
	"github.com/EmanuelTinoco/backstage/internal/config"
)

// TokenProvider supplies an optional bearer token for outbound requests.
// An empty string means no credential is available; requests are then sent
// unauthenticated.
type TokenProvider interface {
	Token() string
}

// EnvProvider reads the token from the environment first (BKSTG_TOKEN),
// falling back to the backend.token configuration key.
type EnvProvider struct{}

// NewEnvProvider returns the default token source for the CLI.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

// Token implements TokenProvider.
func (p *EnvProvider) Token() string {
	if tok := os.Getenv(branding.EnvVar("TOKEN")); tok != "" {
		return tok
	}
	return config.Get(config.KeyBackendToken)
}

// StaticToken is a fixed token value, useful for tests.
type StaticToken string

// Token implements TokenProvider.
func (s StaticToken) Token() string { return string(s) }
