package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/tgv/tgv/internal/config/data"
)

// Config is the root configuration for the application.
type Config struct {
	Tgv *Tgv `yaml:"tgv"`

	mx sync.RWMutex
}

// NewConfig creates a new Config with defaults.
func NewConfig() *Config {
	return &Config{
		Tgv: NewTgv(),
	}
}

// Load loads the configuration from the given path.
// If the file doesn't exist, the current config is kept.
func (c *Config) Load(path string, force bool) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !force {
			return nil
		}
		return fmt.Errorf("config file does not exist: %s", path)
	}

	if err := data.LoadYAML(path, c); err != nil {
		return fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if c.Tgv == nil {
		c.Tgv = NewTgv()
	}
	c.Tgv.Validate()

	return nil
}

// Save saves the configuration to the given path.
// If force is false, only saves if the file already exists.
func (c *Config) Save(force bool) error {
	c.mx.RLock()
	defer c.mx.RUnlock()

	path := AppConfigFile
	if path == "" {
		return fmt.Errorf("no config file path configured")
	}

	_, err := os.Stat(path)
	fileExists := err == nil
	if !force && !fileExists {
		return nil
	}

	if err := data.SaveYAML(path, c); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", path, err)
	}

	return nil
}

// Refine applies CLI flags on top of the loaded configuration.
func (c *Config) Refine(flags *data.Flags) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.Tgv == nil {
		return fmt.Errorf("config.Tgv is nil")
	}

	c.Tgv.Override(flags)
	c.Tgv.Validate()

	return nil
}
