package identity

import (
	"testing"

	"github.com/spf13/viper"
)

func TestEnvProvider_EnvWins(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("backend.token", "from-config")
	t.Setenv("BKSTG_TOKEN", "from-env")

	if got := NewEnvProvider().Token(); got != "from-env" {
		t.Errorf("Token() = %q, want the environment value", got)
	}
}

func TestEnvProvider_ConfigFallback(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("backend.token", "from-config")
	t.Setenv("BKSTG_TOKEN", "")

	if got := NewEnvProvider().Token(); got != "from-config" {
		t.Errorf("Token() = %q, want the config value", got)
	}
}

func TestEnvProvider_Empty(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("BKSTG_TOKEN", "")

	if got := NewEnvProvider().Token(); got != "" {
		t.Errorf("Token() = %q, want empty when nothing is configured", got)
	}
}

func TestStaticToken(t *testing.T) {
	if got := StaticToken("abc").Token(); got != "abc" {
		t.Errorf("Token() = %q, want abc", got)
	}
}
