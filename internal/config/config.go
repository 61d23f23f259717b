package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string `yaml:"port" env:"SERVER_PORT"`
		Mode         string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout  string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		IdleTimeout  string `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
	} `yaml:"server"`

	API struct {
		BaseURL     string `yaml:"base_url" env:"API_BASE_URL"`
		TokenHeader string `yaml:"token_header" env:"API_TOKEN_HEADER"`
		// Timeout is empty by default: backend calls are not bounded unless configured.
		Timeout string `yaml:"timeout" env:"API_TIMEOUT"`
	} `yaml:"api"`

	Session struct {
		Secret            string `yaml:"secret" env:"SESSION_SECRET"`
		CookieName        string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		CookieSecure      bool   `yaml:"cookie_secure" env:"SESSION_COOKIE_SECURE"`
		CookieMaxAge      string `yaml:"cookie_max_age" env:"SESSION_COOKIE_MAX_AGE"`
		TokenDir          string `yaml:"token_dir" env:"SESSION_TOKEN_DIR"`
		ConversationLimit int    `yaml:"conversation_limit" env:"SESSION_CONVERSATION_LIMIT"`
	} `yaml:"session"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// A missing file is fine, defaults and env still apply
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Production never sends session cookies over plain HTTP
	if config.IsProduction() {
		config.Session.CookieSecure = true
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "3000"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "30s"
	config.Server.IdleTimeout = "120s"

	// Backend API defaults
	config.API.BaseURL = "http://localhost:8080/api"
	config.API.TokenHeader = "Authorization"

	// Session defaults
	config.Session.CookieName = "cc_session"
	config.Session.CookieMaxAge = "168h"
	config.Session.ConversationLimit = 500

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.API.BaseURL == "" {
		return fmt.Errorf("api base url is required")
	}

	u, err := url.Parse(config.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api base url must be absolute: %q", config.API.BaseURL)
	}

	if strings.TrimSpace(config.API.TokenHeader) == "" {
		return fmt.Errorf("api token header is required")
	}

	for name, value := range map[string]string{
		"server read timeout":    config.Server.ReadTimeout,
		"server write timeout":   config.Server.WriteTimeout,
		"server idle timeout":    config.Server.IdleTimeout,
		"api timeout":            config.API.Timeout,
		"session cookie max age": config.Session.CookieMaxAge,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	if config.Session.ConversationLimit < 0 {
		return fmt.Errorf("session conversation limit must not be negative")
	}

	return nil
}

// ValidateWeb checks the settings only the web server needs.
func (c *Config) ValidateWeb() error {
	if len(c.Session.Secret) < 16 {
		return fmt.Errorf("session secret must be at least 16 characters")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
