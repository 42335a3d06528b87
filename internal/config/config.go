package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds application configuration
type Config struct {
	Theme string `toml:"theme"`

	// Palette lists the colors offered by the cell color picker, as hex
	// strings.
	Palette []string `toml:"palette"`

	// AlignOnWrite pads columns to a shared width whenever a table is
	// written back into the document.
	AlignOnWrite bool `toml:"align_on_write"`

	// Parse cache tuning.
	CacheTTLMS int `toml:"cache_ttl_ms"`
	CacheSize  int `toml:"cache_size"`
}

// defaultPalette backs the picker when the config names no colors.
var defaultPalette = []string{
	"#ff6b6b", "#feca57", "#1dd1a1", "#54a0ff",
	"#5f27cd", "#ff9ff3", "#c8d6e5", "#576574",
}

// Load loads the config file from the standard location
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil // Return default if can't find config path
	}

	return LoadFromFile(configPath)
}

// LoadFromFile loads config from a specific file
func LoadFromFile(filePath string) (*Config, error) {
	// If file doesn't exist, return default config
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	err = toml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults if not specified
	if config.Theme == "" {
		config.Theme = "default"
	}
	if len(config.Palette) == 0 {
		config.Palette = append([]string(nil), defaultPalette...)
	}
	if config.CacheTTLMS <= 0 {
		config.CacheTTLMS = 2000
	}
	if config.CacheSize <= 0 {
		config.CacheSize = 32
	}

	return &config, nil
}

// CacheTTL returns the parse-cache entry lifetime as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMS) * time.Millisecond
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "mdtable", "config.toml"), nil
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		Theme:        "default",
		Palette:      append([]string(nil), defaultPalette...),
		AlignOnWrite: true,
		CacheTTLMS:   2000,
		CacheSize:    32,
	}
}

// GetConfigDir returns the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "mdtable"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	return os.MkdirAll(configDir, 0755)
}

// Save persists the configuration to the TOML file
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure the config directory exists
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
