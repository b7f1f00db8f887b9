// Package config loads the wayfind.json project configuration used by the
// CLI.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/wayfind-dev/wayfind/internal/errors"
)

const (
	// FileName is the name of the configuration file.
	FileName = "wayfind.json"

	// DefaultAddress is the default listen address.
	DefaultAddress = ":8080"

	// DefaultStrategy is the default history strategy.
	DefaultStrategy = "path"

	// DefaultDataPath is the default bbolt database location.
	DefaultDataPath = "wayfind.db"
)

// Config is the wayfind.json schema.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Address is the listen address.
	Address string `json:"address,omitempty"`

	// Strategy is "path" or "fragment".
	Strategy string `json:"strategy,omitempty"`

	// StaticDir serves files under /static/ when set.
	StaticDir string `json:"staticDir,omitempty"`

	// DataPath is where the embedded database lives.
	DataPath string `json:"dataPath,omitempty"`

	// LogLevel is "debug", "info", "warn", or "error".
	LogLevel string `json:"logLevel,omitempty"`

	// configPath stores where the config was loaded from.
	configPath string
}

// New returns a config with defaults applied.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads wayfind.json from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads a config from an explicit path. A missing file yields the
// defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		c := New()
		c.configPath = path
		return c, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.CodeConfigInvalid, errors.CategoryConfig,
			"config: read file", err)
	}

	c := &Config{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(errors.CodeConfigInvalid, errors.CategoryConfig,
			"config: parse file", err).WithDetailf("path %s", path)
	}
	c.configPath = path
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Path returns where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.Strategy == "" {
		c.Strategy = DefaultStrategy
	}
	if c.DataPath == "" {
		c.DataPath = DefaultDataPath
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks field values after defaults are applied.
func (c *Config) Validate() error {
	if c.Strategy != "path" && c.Strategy != "fragment" {
		return errors.New(errors.CodeConfigInvalid, errors.CategoryConfig,
			"config: strategy must be \"path\" or \"fragment\"").
			WithDetailf("strategy %q", c.Strategy)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.CodeConfigInvalid, errors.CategoryConfig,
			"config: unknown log level").WithDetailf("level %q", c.LogLevel)
	}
	return nil
}
