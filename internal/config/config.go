package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the terminal client
type Config struct {
	API      APIConfig
	SSH      SSHConfig
	LogLevel string
}

// APIConfig holds backend API connection configuration
type APIConfig struct {
	// BaseURL is the origin of the Repfy REST API. Every network call
	// resolves against this value; nothing else in the client may carry
	// its own origin.
	BaseURL string
	Timeout time.Duration
	// Token is an optional pre-issued access token. When set and no
	// session is stored, the client skips the login form.
	Token string
}

// SSHConfig holds configuration for the SSH-served TUI mode
type SSHConfig struct {
	Host    string
	Port    string
	KeyPath string
}

// Load loads configuration from environment variables.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		API: APIConfig{
			BaseURL: getEnvOrDefault("REPFY_API_URL", "http://localhost:3001"),
			Timeout: getDurationOrDefault("REPFY_API_TIMEOUT", 10*time.Second),
			Token:   os.Getenv("REPFY_API_TOKEN"),
		},
		SSH: SSHConfig{
			Host:    getEnvOrDefault("REPFY_SSH_HOST", "0.0.0.0"),
			Port:    getEnvOrDefault("REPFY_SSH_PORT", "2222"),
			KeyPath: getEnvOrDefault("REPFY_SSH_KEY_PATH", ".ssh/repfy_ed25519"),
		},
		LogLevel: getEnvOrDefault("REPFY_LOG_LEVEL", "info"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
