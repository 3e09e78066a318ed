package config

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_EnvOverride(t *testing.T) {
	resetViper(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BKSTG_BACKEND_BASE_URL", "http://portal.example.com")

	Load()

	if got := Get(KeyBackendBaseURL); got != "http://portal.example.com" {
		t.Errorf("Get(%q) = %q, want the BKSTG_BACKEND_BASE_URL value", KeyBackendBaseURL, got)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	resetViper(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.MkdirAll(Dir(), 0755); err != nil {
		t.Fatal(err)
	}
	file := []byte("backend:\n  token: from-file\n")
	if err := os.WriteFile(FilePath(), file, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BKSTG_BACKEND_TOKEN", "from-env")

	Load()

	if got := Get(KeyBackendToken); got != "from-env" {
		t.Errorf("Get(%q) = %q, want the env value to win over the file", KeyBackendToken, got)
	}
}

func TestSetPersists(t *testing.T) {
	resetViper(t)
	t.Setenv("HOME", t.TempDir())
	Load()

	if err := Set(KeyUpdateMirror, "https://mirror.internal/releases"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "mirror.internal") {
		t.Errorf("config file %q does not contain the saved value", data)
	}
	if got := Get(KeyUpdateMirror); got != "https://mirror.internal/releases" {
		t.Errorf("Get(%q) = %q after Set", KeyUpdateMirror, got)
	}
}
