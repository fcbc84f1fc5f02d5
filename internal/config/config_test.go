package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/twiced-technology-gmbh/flowdo/internal/clierr"
)

func TestInitAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), DefaultDir)

	cfg, err := Init(dir, "groceries")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if cfg.Dir() != dir {
		t.Errorf("Dir = %q, want %q", cfg.Dir(), dir)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != "groceries" || loaded.Storage.Key != DefaultKey || loaded.Storage.Backend != DefaultBackend {
		t.Errorf("loaded = %+v", loaded)
	}
	if !loaded.ShowCreated() {
		t.Error("ShowCreated should default to true")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load on empty dir = %v, want ErrNotFound", err)
	}
}

func TestLoadMigratesV1(t *testing.T) {
	dir := t.TempDir()
	v1 := "version: 1\nname: old\nstorage:\n  backend: sqlite\ndefaults:\n  priority: high\n  filter: active\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(v1), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != CurrentVersion || cfg.Storage.Key != DefaultKey || cfg.Storage.Backend != "sqlite" {
		t.Errorf("migrated = %+v", cfg)
	}

	// Migration is persisted.
	again, err := Load(dir)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if again.Version != CurrentVersion {
		t.Errorf("persisted version = %d", again.Version)
	}
}

func TestLoadRejectsNewerVersion(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("version: 99\nname: x\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"empty name", func(c *Config) { c.Name = "" }, false},
		{"bad backend", func(c *Config) { c.Storage.Backend = "redis" }, false},
		{"empty key", func(c *Config) { c.Storage.Key = "" }, false},
		{"key with slash", func(c *Config) { c.Storage.Key = "a/b" }, false},
		{"bad priority", func(c *Config) { c.Defaults.Priority = "urgent" }, false},
		{"bad filter", func(c *Config) { c.Defaults.Filter = "archived" }, false},
		{"sqlite", func(c *Config) { c.Storage.Backend = "sqlite" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault("")
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestGetSet(t *testing.T) {
	cfg := NewDefault("")

	if err := cfg.Set("defaults.priority", "high"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _ := cfg.Get("defaults.priority"); v != "high" {
		t.Errorf("Get = %q, want high", v)
	}

	if err := cfg.Set("tui.show_created", "false"); err != nil {
		t.Fatalf("Set show_created: %v", err)
	}
	if cfg.ShowCreated() {
		t.Error("ShowCreated should be false")
	}

	err := cfg.Set("storage.backend", "redis")
	var ce *clierr.Error
	if !errors.As(err, &ce) || ce.Code != clierr.InvalidConfig {
		t.Errorf("Set invalid backend = %v", err)
	}
	if cfg.Storage.Backend != DefaultBackend {
		t.Errorf("invalid Set modified config: backend = %q", cfg.Storage.Backend)
	}

	if _, err := cfg.Get("nope"); err == nil {
		t.Error("Get unknown key should fail")
	}
}

func TestFindDir(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, DefaultDir)
	if _, err := Init(data, ""); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatal(err)
	}

	got, err := FindDir(nested)
	if err != nil {
		t.Fatalf("FindDir: %v", err)
	}
	if got != data {
		t.Errorf("FindDir = %q, want %q", got, data)
	}

	got, err = FindDir(data)
	if err != nil || got != data {
		t.Errorf("FindDir from inside = %q, %v", got, err)
	}
}

func TestFindDirNotFound(t *testing.T) {
	_, err := FindDir(t.TempDir())
	var ce *clierr.Error
	if !errors.As(err, &ce) || ce.Code != clierr.StoreNotFound {
		t.Errorf("FindDir = %v, want STORE_NOT_FOUND", err)
	}
}

func TestLoadOrInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "flowdo")
	cfg, err := LoadOrInit(dir)
	if err != nil {
		t.Fatalf("LoadOrInit: %v", err)
	}
	if cfg.Name != DefaultName {
		t.Errorf("Name = %q", cfg.Name)
	}
	if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Errorf("config not written: %v", err)
	}
}
