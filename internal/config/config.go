// Package config provides configuration for eventman.
// Configuration is loaded from ~/.config/eventman/config.yaml with
// sensible defaults. A .env file in the working directory and EVENTMAN_*
// environment variables override the file.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the eventman configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Admin     AdminConfig     `yaml:"admin"`
	Reminders RemindersConfig `yaml:"reminders"`
}

// StoreConfig holds persistence configuration.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// AdminConfig holds the credential for the admin shell.
type AdminConfig struct {
	Secret string `yaml:"secret"`
}

// RemindersConfig holds the reminder contact source.
type RemindersConfig struct {
	Contacts string `yaml:"contacts"`
}

const (
	// DefaultConfigPath is the default location for the config file.
	DefaultConfigPath = "~/.config/eventman/config.yaml"

	// DefaultStorePath is where events are persisted when no config is
	// present.
	DefaultStorePath = "~/.local/share/eventman/events.json"

	// DefaultSecret is the out-of-the-box admin secret. Override it in
	// the config file or with EVENTMAN_ADMIN_SECRET.
	DefaultSecret = "change-me"

	// DefaultContacts is the default reminder contacts file.
	DefaultContacts = "attendees.txt"
)

var (
	globalConfig *Config
	configOnce   sync.Once
	configErr    error
)

// Load loads the configuration from the default path. It returns the
// cached config on subsequent calls.
func Load() (*Config, error) {
	configOnce.Do(func() {
		globalConfig, configErr = loadFromPath(DefaultConfigPath)
	})
	return globalConfig, configErr
}

// loadFromPath loads configuration from a specific file path, then
// applies .env and environment overrides.
func loadFromPath(path string) (*Config, error) {
	cfg := &Config{
		Store:     StoreConfig{Path: DefaultStorePath},
		Admin:     AdminConfig{Secret: DefaultSecret},
		Reminders: RemindersConfig{Contacts: DefaultContacts},
	}

	data, err := os.ReadFile(expandPath(path))
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// .env file first, then the real environment wins either way.
	_ = godotenv.Load()
	if v := os.Getenv("EVENTMAN_STORE"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("EVENTMAN_ADMIN_SECRET"); v != "" {
		cfg.Admin.Secret = v
	}
	if v := os.Getenv("EVENTMAN_CONTACTS"); v != "" {
		cfg.Reminders.Contacts = v
	}

	// Re-assert defaults for fields the file explicitly blanked.
	if cfg.Store.Path == "" {
		cfg.Store.Path = DefaultStorePath
	}
	if cfg.Admin.Secret == "" {
		cfg.Admin.Secret = DefaultSecret
	}
	if cfg.Reminders.Contacts == "" {
		cfg.Reminders.Contacts = DefaultContacts
	}

	return cfg, nil
}

// StorePath returns the configured event store path, expanded.
func StorePath() string {
	cfg, err := Load()
	if err != nil || cfg == nil {
		return expandPath(DefaultStorePath)
	}
	return expandPath(cfg.Store.Path)
}

// AdminSecret returns the configured admin credential.
func AdminSecret() string {
	cfg, err := Load()
	if err != nil || cfg == nil {
		return DefaultSecret
	}
	return cfg.Admin.Secret
}

// ContactsPath returns the configured reminder contacts file, expanded.
func ContactsPath() string {
	cfg, err := Load()
	if err != nil || cfg == nil {
		return DefaultContacts
	}
	return expandPath(cfg.Reminders.Contacts)
}

// expandPath expands a leading ~ to the home directory. Relative paths
// are left alone and resolve against the working directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// ResetForTesting resets the global config state. Only use in tests.
func ResetForTesting() {
	configOnce = sync.Once{}
	globalConfig = nil
	configErr = nil
}
