package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the application configuration
type Config struct {
	ConcurrentDownloadLimit int    `json:"concurrent_download_limit"`
	GithubTokenPath         string `json:"github_token_path"`
	SandboxBaseURL          string `json:"sandbox_base_url"`
	SandboxTokenPath        string `json:"sandbox_token_path"`
	ThemesDir               string `json:"themes_dir"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "~"
	}
	return Config{
		ConcurrentDownloadLimit: 5,
		GithubTokenPath:         filepath.Join(homeDir, ".github", "token"),
		SandboxTokenPath:        filepath.Join(homeDir, ".sandbox", "token"),
		ThemesDir:               filepath.Join(homeDir, ".config", "repo-mirror", "themes"),
	}
}

// LoadConfig loads the configuration from the config file
func LoadConfig() (Config, error) {
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %v", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the config file
func SaveConfig(config Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %v", err)
	}

	configPath := getConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}

// ReadTokenFile reads a credential from path. A missing file is not an
// error; it means unauthenticated requests.
func ReadTokenFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading token file %s: %v", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "repo-mirror", "config.json")
}

// createDefaultConfig creates a new config file with default values
func createDefaultConfig() (Config, error) {
	config := DefaultConfig()
	if err := SaveConfig(config); err != nil {
		return Config{}, fmt.Errorf("error creating default config: %v", err)
	}
	return config, nil
}
