// Package config provides configuration management for gravctl.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	graverr "github.com/gravnet/gravctl/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Version    int              `yaml:"version"`
	Home       string           `yaml:"home"`
	Network    NetworkConfig    `yaml:"network"`
	Derivation DerivationConfig `yaml:"derivation"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// NetworkConfig defines Graviton endpoint and gas settings.
type NetworkConfig struct {
	Endpoint      string  `yaml:"endpoint"`
	GasPrice      float64 `yaml:"gas_price"`
	GasMultiplier float64 `yaml:"gas_multiplier"`
	Denom         string  `yaml:"denom"`
}

// DerivationConfig defines key derivation settings.
type DerivationConfig struct {
	HRP            string `yaml:"hrp"`
	Path           string `yaml:"path"`
	DefaultAccount uint32 `yaml:"default_account"`
	AddressIndex   uint32 `yaml:"address_index"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, graverr.Wrap(graverr.ErrConfigNotFound, "%s", path)
		}
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, graverr.Wrap(graverr.ErrConfigInvalid, "parse %s", path)
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Path returns the default config file path under a home directory.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// DefaultHome returns the default gravctl home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gravctl"
	}
	return filepath.Join(home, ".gravctl")
}
