package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config stores CLI configuration
type Config struct {
	Server        string `json:"server"`                   // API server address
	AccessToken   string `json:"access_token,omitempty"`   // JWT access token (admin commands only)
	Username      string `json:"username,omitempty"`       // Current logged-in username
	UserID        string `json:"user_id,omitempty"`        // Current logged-in user ID (UUID)
	Language      string `json:"language,omitempty"`       // Kiosk answer language: english or tagalog
	SpeechCommand string `json:"speech_command,omitempty"` // Override text-to-speech command, e.g. "espeak"
}

// GetConfigPath returns the configuration file path (~/.kioskctl/config.json)
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".kioskctl")
	configFile := filepath.Join(configDir, "config.json")

	return configFile, nil
}

// Load loads configuration from file
func Load() (*Config, error) {
	configFile, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	// If config file doesn't exist, return default config
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return defaults(&Config{}), nil
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return defaults(&cfg), nil
}

func defaults(cfg *Config) *Config {
	if cfg.Server == "" {
		cfg.Server = "http://localhost:8080"
	}
	if cfg.Language == "" {
		cfg.Language = "english"
	}
	return cfg
}

// Save saves configuration to file
func (c *Config) Save() error {
	configFile, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0600, the file holds a token
	if err := os.WriteFile(configFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsAuthenticated checks if user is logged in
func (c *Config) IsAuthenticated() bool {
	return c.AccessToken != ""
}
