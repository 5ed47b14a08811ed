package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultServer is used when no server has been configured.
const DefaultServer = "http://localhost:5001"

// API modes the client can speak.
const (
	ModeConversation = "conversation"
	ModeWizard       = "wizard"
)

// Config stores CLI configuration
type Config struct {
	Server string `json:"server"`  // API server address
	Mode   string `json:"mode"`    // "conversation" or "wizard"
	UserID string `json:"user_id"` // Stable anonymous session identity
}

// GetConfigPath returns the configuration file path (~/.winectl/config.json)
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".winectl", "config.json"), nil
}

// Load loads configuration from the default path
func Load() (*Config, error) {
	configFile, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadFrom(configFile)
}

// LoadFrom loads configuration from an explicit file path. A missing file is
// not an error; it yields the default configuration.
func LoadFrom(configFile string) (*Config, error) {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return &Config{
			Server: DefaultServer,
			Mode:   ModeConversation,
		}, nil
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Server == "" {
		cfg.Server = DefaultServer
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeConversation
	}

	return &cfg, nil
}

// Save saves configuration to the default path
func (c *Config) Save() error {
	configFile, err := GetConfigPath()
	if err != nil {
		return err
	}

	return c.SaveTo(configFile)
}

// SaveTo saves configuration to an explicit file path
func (c *Config) SaveTo(configFile string) error {
	configDir := filepath.Dir(configFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0600, user read/write only
	if err := os.WriteFile(configFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// EnsureUserID generates a user ID when none is stored yet. The ID is the
// creation time in Unix milliseconds, which keeps it opaque to the server
// while staying stable across runs once saved. Returns true when a new ID
// was generated; the caller is expected to Save afterwards.
func (c *Config) EnsureUserID() bool {
	if c.UserID != "" {
		return false
	}

	c.UserID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	return true
}
