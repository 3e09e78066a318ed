package cli

import (
	"github.com/EmanuelTinoco/backstage/internal/discovery"
	"github.com/EmanuelTinoco/backstage/internal/identity"
	"github.com/EmanuelTinoco/backstage/internal/scaffolder"
)

// newScaffolderClient builds the scaffolder client from user configuration:
// discovery by config, bearer token from env/config when present.
func newScaffolderClient() (*scaffolder.Client, error) {
	return scaffolder.New(
		discovery.NewConfigResolver(),
		scaffolder.WithTokenProvider(identity.NewEnvProvider()),
	)
}
