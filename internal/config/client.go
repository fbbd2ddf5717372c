package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultServerURL = "http://localhost:8080"

// ClientConfig holds settings for videoctl.
type ClientConfig struct {
	ServerURL string        `yaml:"server_url"`
	Timeout   time.Duration `yaml:"timeout"`
}

// LoadClientConfig loads client configuration with the following priority:
// environment variables > config file (optional) > defaults.
func LoadClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{ServerURL: defaultServerURL, Timeout: 15 * time.Second}

	configPath, err := getClientConfigFilePath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if envURL := os.Getenv("VIDEOCTL_SERVER_URL"); envURL != "" {
		cfg.ServerURL = envURL
	}

	if err := ValidateServerURL(cfg.ServerURL); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateServerURL checks that raw is an absolute http(s) URL.
func ValidateServerURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme: %s (expected http or https)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid server URL: missing host")
	}
	return nil
}

// InitClientConfig creates a new client configuration file
func InitClientConfig(serverURL string) error {
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	if err := ValidateServerURL(serverURL); err != nil {
		return err
	}

	configDir, err := getClientConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := getClientConfigFilePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists: %s", configPath)
	}

	yamlContent := fmt.Sprintf(`# videoctl configuration file
# Base URL of the MyFlix API server.

server_url: "%s"
timeout: 15s
`, serverURL)

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetClientConfigPath returns the path to the client configuration file
func GetClientConfigPath() (string, error) {
	return getClientConfigFilePath()
}

// getClientConfigDir returns the configuration directory path (~/.videoctl)
func getClientConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".videoctl"), nil
}

func getClientConfigFilePath() (string, error) {
	configDir, err := getClientConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}
