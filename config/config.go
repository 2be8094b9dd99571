package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// AI completion service
	OpenAIAPIKey string
	OpenAIAPIURL string
	OpenAIModel  string
}

// LoadConfig builds a Config from environment variables, falling back
// to Docker secret files for sensitive values in production.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:    getenv("SERVER_PORT", "8080"),
		ServerHost:    getenv("SERVER_HOST", "0.0.0.0"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        envOrSecret("DB_USER", "db_user"),
		DBPassword:    envOrSecret("DB_PASSWORD", "db_password"),
		DBName:        getenv("DB_NAME", "vitatrack"),
		DBSSLMode:     getenv("DB_SSL_MODE", "disable"),
		RedisHost:     getenv("REDIS_HOST", "localhost"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: envOrSecret("REDIS_PASSWORD", "redis_password"),
		RedisURL:      os.Getenv("REDIS_URL"),
		JWTSecret:     envOrSecret("JWT_SECRET", "jwt_secret"),
		OpenAIAPIKey:  envOrSecret("OPENAI_API_KEY", "openai_api_key"),
		OpenAIAPIURL:  getenv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"),
		OpenAIModel:   getenv("OPENAI_MODEL", "gpt-4.1-mini"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envOrSecret prefers the environment variable and falls back to a
// Docker secret file of the given name.
func envOrSecret(envKey, secretName string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return readSecret(secretName)
}

// readSecret reads a Docker secret from the secrets directory.
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
