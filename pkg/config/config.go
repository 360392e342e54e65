package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables that take precedence over the config file
const (
	EnvAPIKey = "GEMINI_API_KEY"
	EnvModel  = "EDEASE_MODEL"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	Model        string `json:"model,omitempty"`
	AccentColor  string `json:"accent_color,omitempty"`
	ExportPath   string `json:"export_path,omitempty"`
}

// APIKey returns the Gemini key, preferring the environment over the file
func (c *AppConfig) APIKey() string {
	if v := os.Getenv(EnvAPIKey); v != "" {
		return v
	}
	return c.GeminiAPIKey
}

// ModelName returns the configured model, preferring the environment over the file.
// An empty result means the client default.
func (c *AppConfig) ModelName() string {
	if v := os.Getenv(EnvModel); v != "" {
		return v
	}
	return c.Model
}

// getConfigPath returns the absolute path to ~/.edease.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".edease.json"), nil
}

// LoadDotEnv loads variables from path (usually ".env") into the environment.
// A missing file is not an error; variables already set are kept.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("could not stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
// The file holds an API key, so it is only readable by the owner.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
