package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Point BINARIO_CONFIG at a missing file so a developer's real config
// cannot leak into the tests.
func isolate(t *testing.T) {
	t.Setenv("BINARIO_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("BINARIO_PROVIDER_URL", "")
	t.Setenv("BINARIO_USER_AGENT", "")
	t.Setenv("BINARIO_TIMEOUT_SECONDS", "")
	t.Setenv("BINARIO_SHOW_STATS", "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ProviderURL != defaultProviderURL {
		t.Errorf("unexpected provider URL %q", cfg.ProviderURL)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("unexpected timeout %v", cfg.Timeout())
	}
	if !cfg.ShowStats {
		t.Error("stats should be shown by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "provider_url: http://localhost:9090/api\ntimeout_seconds: 5\nshow_stats: false\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BINARIO_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ProviderURL != "http://localhost:9090/api" {
		t.Errorf("unexpected provider URL %q", cfg.ProviderURL)
	}
	if cfg.TimeoutSeconds != 5 {
		t.Errorf("unexpected timeout %d", cfg.TimeoutSeconds)
	}
	if cfg.ShowStats {
		t.Error("show_stats: false was ignored")
	}
	if cfg.UserAgent != defaultUserAgent {
		t.Errorf("unset fields must keep defaults, got user agent %q", cfg.UserAgent)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timeout_seconds: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BINARIO_CONFIG", path)
	t.Setenv("BINARIO_TIMEOUT_SECONDS", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TimeoutSeconds != 12 {
		t.Errorf("environment override lost, timeout %d", cfg.TimeoutSeconds)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("BINARIO_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Error("expected a validation error for a zero timeout")
	}
}

func TestLoadRejectsBadURL(t *testing.T) {
	isolate(t)
	t.Setenv("BINARIO_PROVIDER_URL", "not a url")

	if _, err := Load(); err == nil {
		t.Error("expected a validation error for a malformed provider URL")
	}
}
