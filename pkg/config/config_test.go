package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.MaxLimit != 64 || cfg.Server.MaxPrefix != 60 {
		t.Errorf("server defaults = %+v", cfg.Server)
	}
	if cfg.Search.DefaultLanguage != "en" || cfg.Search.MinMatchScore != 0.3 {
		t.Errorf("search defaults = %+v", cfg.Search)
	}
	if !cfg.Data.SeedDefaults {
		t.Error("seeding should default on")
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("config file was not created: %v", statErr)
	}
	if cfg.Search.DefaultLimit != DefaultConfig().Search.DefaultLimit {
		t.Errorf("created config differs from defaults: %+v", cfg)
	}

	// Second init loads the existing file instead of rewriting it.
	again, err := InitConfig(path)
	if err != nil {
		t.Fatalf("second InitConfig: %v", err)
	}
	if again.Search.DefaultLanguage != cfg.Search.DefaultLanguage {
		t.Errorf("reloaded config differs: %+v", again)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[server]
max_limit = 16

[search]
default_language = "ja"
min_match_score = 0.5

[data]
seed_defaults = false
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.MaxLimit != 16 || cfg.Search.DefaultLanguage != "ja" || cfg.Search.MinMatchScore != 0.5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Data.SeedDefaults {
		t.Error("seed_defaults override not applied")
	}
	// Untouched keys keep their defaults.
	if cfg.Server.MaxPrefix != 60 || cfg.Search.DefaultLimit != 20 {
		t.Errorf("defaults lost for unset keys: %+v", cfg)
	}
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should fall back, got error %v", err)
	}
	if cfg.Server.MaxLimit != DefaultConfig().Server.MaxLimit {
		t.Errorf("fallback config differs from defaults: %+v", cfg)
	}
}
