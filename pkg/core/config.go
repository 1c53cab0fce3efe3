// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds upm configuration
type Config struct {
	// Managers restricts the run to these backends (empty = all active)
	Managers []string `yaml:"managers"`
	// ExcludeManagers removes backends from the run
	ExcludeManagers []string `yaml:"exclude_managers"`
	// SudoCommand is the privilege-elevation prefix for privileged backends
	SudoCommand string `yaml:"sudo_command"`
	// Parallel dispatches commands concurrently
	Parallel bool `yaml:"parallel"`
	// MaxParallel bounds concurrent child processes when Parallel is set
	MaxParallel int `yaml:"max_parallel"`
	// ManagerDir holds user-supplied backend descriptor files (*.toml)
	ManagerDir string `yaml:"manager_dir"`
	// AliasDir holds per-package alias tables (default: <cache>/aliases)
	AliasDir string `yaml:"alias_dir"`
	// CachePath is where synced data is cached
	CachePath string `yaml:"cache_path"`
	// Debug enables debug logging
	Debug bool `yaml:"debug"`

	// Logger is injected by the caller, never loaded from file
	Logger zerolog.Logger `yaml:"-"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		SudoCommand: "sudo",
		Parallel:    true,
		MaxParallel: 4,
		CachePath:   defaultCachePath(),
		Debug:       false,
		Logger:      zerolog.Nop(),
	}
}

// LoadConfig loads configuration from file. A missing file is not an error;
// defaults are returned so the tool works out of the box.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "upm", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.SudoCommand == "" {
		cfg.SudoCommand = "sudo"
	}
	if cfg.MaxParallel <= 0 {
		cfg.MaxParallel = 4
	}
	if cfg.CachePath == "" {
		cfg.CachePath = defaultCachePath()
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "upm", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ResolveAliasDir returns the alias table directory, defaulting into the cache.
func (c *Config) ResolveAliasDir() string {
	if c.AliasDir != "" {
		return c.AliasDir
	}
	return filepath.Join(c.CachePath, "aliases")
}

func defaultCachePath() string {
	if path := os.Getenv("UPM_CACHE_PATH"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "upm")
	}

	return filepath.Join(home, ".cache", "upm")
}
