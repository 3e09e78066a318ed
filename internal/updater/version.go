package updater

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare orders two version strings by semver precedence: -1 when a is
// older than b, 0 when equal, 1 when newer. A leading "v" on either side is
// ignored, matching how release tags are written.
func Compare(a, b string) (int, error) {
	av, err := semver.NewVersion(strings.TrimPrefix(a, "v"))
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := semver.NewVersion(strings.TrimPrefix(b, "v"))
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}
