package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/twiced-technology-gmbh/flowdo/internal/clierr"
)

const (
	fileMode = 0o600
	dirMode  = 0o750
)

// Sentinel errors.
var (
	ErrNotFound = errors.New("no flowdo directory found (run 'flowdo init' to create one)")
	ErrInvalid  = errors.New("invalid config")
)

// Config represents a flowdo data directory configuration.
type Config struct {
	Version  int            `yaml:"version"`
	Name     string         `yaml:"name"`
	Storage  StorageConfig  `yaml:"storage"`
	Defaults DefaultsConfig `yaml:"defaults"`
	TUI      TUIConfig      `yaml:"tui,omitempty"`

	// dir is the absolute path to the data directory (not serialized).
	dir string `yaml:"-"`
}

// StorageConfig selects where the item collection lives.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Key     string `yaml:"key"`
}

// DefaultsConfig holds the initial state of the front ends.
type DefaultsConfig struct {
	Priority string `yaml:"priority"`
	Filter   string `yaml:"filter"`
}

// TUIConfig holds TUI-specific display settings.
type TUIConfig struct {
	ShowCreated *bool `yaml:"show_created,omitempty"`
}

// Dir returns the absolute path to the data directory.
func (c *Config) Dir() string {
	return c.dir
}

// SetDir sets the data directory path on the config.
func (c *Config) SetDir(dir string) {
	c.dir = dir
}

// ConfigPath returns the absolute path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.dir, ConfigFileName)
}

// ShowCreated reports whether the TUI renders creation times. Defaults to true.
func (c *Config) ShowCreated() bool {
	if c.TUI.ShowCreated == nil {
		return true
	}
	return *c.TUI.ShowCreated
}

// NewDefault creates a Config with default values.
func NewDefault(name string) *Config {
	if name == "" {
		name = DefaultName
	}
	return &Config{
		Version: CurrentVersion,
		Name:    name,
		Storage: StorageConfig{Backend: DefaultBackend, Key: DefaultKey},
		Defaults: DefaultsConfig{
			Priority: DefaultPriority,
			Filter:   DefaultFilter,
		},
		TUI: TUIConfig{ShowCreated: boolPtr(true)},
	}
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if !slices.Contains(Backends, c.Storage.Backend) {
		return fmt.Errorf("%w: storage.backend %q must be one of %s",
			ErrInvalid, c.Storage.Backend, strings.Join(Backends, ", "))
	}
	if err := validateKey(c.Storage.Key); err != nil {
		return err
	}
	if !slices.Contains(Priorities, c.Defaults.Priority) {
		return fmt.Errorf("%w: defaults.priority %q must be one of %s",
			ErrInvalid, c.Defaults.Priority, strings.Join(Priorities, ", "))
	}
	if !slices.Contains(Filters, c.Defaults.Filter) {
		return fmt.Errorf("%w: defaults.filter %q must be one of %s",
			ErrInvalid, c.Defaults.Filter, strings.Join(Filters, ", "))
	}
	return nil
}

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: storage.key is required", ErrInvalid)
	}
	if key == "." || key == ".." || strings.ContainsAny(key, `/\`+"\x00") {
		return fmt.Errorf("%w: storage.key %q must not contain path separators", ErrInvalid, key)
	}
	return nil
}

// Keys returns the dotted names accepted by Get and Set.
func Keys() []string {
	return []string{
		"name",
		"storage.backend",
		"storage.key",
		"defaults.priority",
		"defaults.filter",
		"tui.show_created",
	}
}

// Get returns the value of a dotted key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "name":
		return c.Name, nil
	case "storage.backend":
		return c.Storage.Backend, nil
	case "storage.key":
		return c.Storage.Key, nil
	case "defaults.priority":
		return c.Defaults.Priority, nil
	case "defaults.filter":
		return c.Defaults.Filter, nil
	case "tui.show_created":
		return strconv.FormatBool(c.ShowCreated()), nil
	default:
		return "", unknownKey(key)
	}
}

// Set assigns a dotted key and validates the result. On validation failure
// the config is left unchanged.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "name":
		next.Name = value
	case "storage.backend":
		next.Storage.Backend = value
	case "storage.key":
		next.Storage.Key = value
	case "defaults.priority":
		next.Defaults.Priority = value
	case "defaults.filter":
		next.Defaults.Filter = value
	case "tui.show_created":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return clierr.Newf(clierr.InvalidInput, "tui.show_created must be true or false, got %q", value)
		}
		next.TUI.ShowCreated = boolPtr(b)
	default:
		return unknownKey(key)
	}
	if err := next.Validate(); err != nil {
		return clierr.New(clierr.InvalidConfig, err.Error())
	}
	*c = next
	return nil
}

func unknownKey(key string) error {
	return clierr.Newf(clierr.InvalidInput, "unknown config key %q", key).
		WithDetails(map[string]any{"valid_keys": Keys()})
}

// Init creates a new data directory at dir with default settings.
func Init(dir, name string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg := NewDefault(name)
	cfg.SetDir(absDir)

	if err := os.MkdirAll(absDir, dirMode); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to its config file.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), data, fileMode)
}

// Load reads and validates a config from the given data directory.
func Load(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	path := filepath.Join(absDir, ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.dir = absDir

	oldVersion := cfg.Version
	if err := migrate(&cfg); err != nil {
		return nil, err
	}

	// Persist migrated config so future loads skip re-migration.
	if cfg.Version != oldVersion {
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("saving migrated config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FindDir walks upward from startDir looking for a .flowdo directory
// containing config.yml. Returns the absolute path to that directory.
func FindDir(startDir string) (string, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	dir := absStart
	for {
		candidate := filepath.Join(dir, DefaultDir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return filepath.Join(dir, DefaultDir), nil
		}

		// Also check if we're inside the data directory itself.
		if filepath.Base(dir) == DefaultDir {
			if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", clierr.New(clierr.StoreNotFound,
				"no flowdo directory found (run 'flowdo init' to create one)")
		}
		dir = parent
	}
}

// HomeDir returns the per-user fallback data directory, ~/.config/flowdo.
func HomeDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(base, DefaultName), nil
}

// LoadOrInit loads the config in dir, creating a default one if dir has
// none yet. Used for the per-user fallback directory.
func LoadOrInit(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Is(err, ErrNotFound) {
		return Init(dir, DefaultName)
	}
	return cfg, err
}
