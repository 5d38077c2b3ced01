// Package config loads and saves bptreedb's on-disk configuration.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/bptreedb/pkg/bptree"
)

// Config represents bptreedb's configuration.
type Config struct {
	DefaultOrder int      `yaml:"default_order"`
	DataDir      string   `yaml:"data_dir"`
	Port         int      `yaml:"port"`
	Bind         string   `yaml:"bind"`
	Security     Security `yaml:"security"`
	Logging      Logging  `yaml:"logging"`
}

// Security holds the admin key the HTTP surface checks on every /v1
// request.
type Security struct {
	AdminAPIKey string `yaml:"admin_api_key"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultOrder: bptree.DefaultOrder,
		DataDir:      "./data",
		Port:         8080,
		Bind:         "127.0.0.1",
		Security: Security{
			AdminAPIKey: "auto",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is usable, returning an
// error naming the first problem found.
func (c *Config) Validate() error {
	if c.DefaultOrder != 0 {
		if c.DefaultOrder < bptree.MinOrder || c.DefaultOrder > bptree.MaxOrder {
			return errors.Newf("config: default_order %d outside [%d, %d]", c.DefaultOrder, bptree.MinOrder, bptree.MaxOrder)
		}
	}
	if c.Port < 0 || c.Port > 65535 {
		return errors.Newf("config: port %d out of range", c.Port)
	}
	return nil
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.Newf("config: file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, errors.Wrap(err, "config: resolving path")
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "config: reading file")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "config: parsing file")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with
// secure permissions.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return errors.Wrap(err, "config: creating directory")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "config: marshaling")
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return errors.Wrap(err, "config: writing file")
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key,
// hex-encoded.
func GenerateSecureKey(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "config: generating key")
	}
	return hex.EncodeToString(b), nil
}

// BootstrapConfig creates a new configuration with a generated admin
// key if one doesn't already exist at configPath.
func BootstrapConfig(configPath string, dataDir string) (*Config, error) {
	config := DefaultConfig()
	if dataDir != "" {
		config.DataDir = dataDir
	}

	adminKey, err := GenerateSecureKey(32)
	if err != nil {
		return nil, errors.Wrap(err, "config: generating admin key")
	}
	config.Security.AdminAPIKey = adminKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, errors.Wrap(err, "config: saving bootstrap config")
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the
// current platform.
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./bptreedb.yaml"
	}
	configDir := filepath.Join(homeDir, ".config", "bptreedb")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
