package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Nomadcxx/sanger-rename/internal/registry"
	"github.com/Nomadcxx/sanger-rename/internal/sanger"
)

// Config holds all sanger-rename configuration. It is read once at startup
// and never written back.
type Config struct {
	Wizard WizardConfig `toml:"wizard"`
	Commit CommitConfig `toml:"commit"`
	Log    LogConfig    `toml:"log"`
}

// WizardConfig controls how the session starts
type WizardConfig struct {
	Vendor     string   `toml:"vendor"`     // sangon, ruibio, genewiz; empty shows the vendor screen
	Extensions []string `toml:"extensions"` // used when an input is a directory
}

// CommitConfig controls the final rename
type CommitConfig struct {
	DryRun       bool   `toml:"dry_run"`
	OperationLog string `toml:"operation_log"` // empty disables the operation log
}

// LogConfig holds debug logging settings
type LogConfig struct {
	File    string `toml:"file"`
	Verbose bool   `toml:"verbose"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Wizard: WizardConfig{
			Extensions: append([]string(nil), registry.DefaultExtensions...),
		},
	}
}

// ConfigPath returns the default path to the config file
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	return filepath.Join(configDir, "sanger-rename", "config.toml"), nil
}

// Load reads the config file at path. With an empty path the default
// location is used, and a missing default file yields DefaultConfig.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !explicit {
		return DefaultConfig(), nil
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks if the config is valid
func (c *Config) Validate() error {
	if c.Wizard.Vendor != "" {
		if _, err := sanger.ParseVendor(c.Wizard.Vendor); err != nil {
			return err
		}
	}

	for _, ext := range c.Wizard.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("invalid extension %q (must start with '.')", ext)
		}
	}

	return nil
}

// Vendor returns the preselected vendor, if one is configured
func (c *Config) Vendor() (sanger.Vendor, bool, error) {
	if c.Wizard.Vendor == "" {
		return 0, false, nil
	}
	v, err := sanger.ParseVendor(c.Wizard.Vendor)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
