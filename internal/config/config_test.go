package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Theme != "default" {
		t.Errorf("Expected default theme 'default', got '%s'", cfg.Theme)
	}

	if len(cfg.Palette) == 0 {
		t.Errorf("defaultConfig should provide a palette")
	}

	if cfg.CacheTTL() != 2*time.Second {
		t.Errorf("Expected 2s cache TTL, got %v", cfg.CacheTTL())
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should fall back to defaults: %v", err)
	}
	if cfg.Theme != "default" {
		t.Errorf("Expected default theme, got '%s'", cfg.Theme)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `theme = "dark"
palette = ["#112233"]
align_on_write = true
cache_ttl_ms = 500
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if len(cfg.Palette) != 1 || cfg.Palette[0] != "#112233" {
		t.Errorf("Palette = %v", cfg.Palette)
	}
	if cfg.CacheTTL() != 500*time.Millisecond {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL())
	}
	if cfg.CacheSize != 32 {
		t.Errorf("CacheSize should default to 32, got %d", cfg.CacheSize)
	}
}

func TestLoadFromFileBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("theme = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}
