// Package config resolves the client configuration from defaults, an optional YAML
// file and PYBO_* environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultServerURL is the backend address of a local development server.
const DefaultServerURL = "http://localhost:8000"

// Config holds client settings.
type Config struct {
	ServerURL  string `yaml:"serverURL,omitempty" json:"serverURL,omitempty" env:"PYBO_SERVER_URL"`
	StorageURL string `yaml:"storageURL,omitempty" json:"storageURL,omitempty" env:"PYBO_STORAGE_URL"`
	LogLevel   string `yaml:"logLevel,omitempty" json:"logLevel,omitempty" env:"PYBO_LOG_LEVEL"`
	LogFormat  string `yaml:"logFormat,omitempty" json:"logFormat,omitempty" env:"PYBO_LOG_FORMAT"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ServerURL:  DefaultServerURL,
		StorageURL: DefaultStorageURL(),
		LogLevel:   "warn",
		LogFormat:  "text",
	}
}

// DefaultStorageURL is ~/.pybo/storage.json, or a relative path without a home dir.
func DefaultStorageURL() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".pybo", "storage.json")
	}
	return filepath.Join(home, ".pybo", "storage.json")
}

// Load resolves the configuration; path may be empty.
func Load(path string) (*Config, error) {
	ret := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %v: %w", path, err)
		}
		if err = yaml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("parse config %v: %w", path, err)
		}
	}
	if err := env.Parse(ret); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	c.ServerURL = strings.TrimRight(strings.TrimSpace(c.ServerURL), "/")
	if c.ServerURL == "" {
		return fmt.Errorf("server URL is required (PYBO_SERVER_URL)")
	}
	if !strings.HasPrefix(c.ServerURL, "http://") && !strings.HasPrefix(c.ServerURL, "https://") {
		return fmt.Errorf("server URL must be http(s): %q", c.ServerURL)
	}
	if strings.TrimSpace(c.StorageURL) == "" {
		return fmt.Errorf("storage URL is required (PYBO_STORAGE_URL)")
	}
	return nil
}
