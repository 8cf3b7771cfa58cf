package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all daemon settings. Values come from an optional YAML file
// overridden by environment variables.
type Config struct {
	Port   int    `yaml:"port"`
	DBPath string `yaml:"dbPath"`
	// QuotaBytes is the soft storage ceiling; 0 disables enforcement.
	QuotaBytes int64  `yaml:"quotaBytes"`
	LogLevel   string `yaml:"logLevel"`

	// BackendURL is the remote chat backend; empty runs fully offline on the
	// local fallback tables.
	BackendURL string `yaml:"backendURL"`
	// BackendTimeoutSecs bounds the outbound reply request.
	BackendTimeoutSecs int `yaml:"backendTimeoutSecs"`

	// SentimentURL is the optional polarity sidecar; empty disables the
	// enrichment step entirely.
	SentimentURL string `yaml:"sentimentURL"`
}

// Load reads the optional config file at path (ignored when absent), applies
// environment overrides, and validates.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port:               8764,
		DBPath:             defaultDBPath(),
		QuotaBytes:         5 * 1024 * 1024,
		LogLevel:           "info",
		BackendURL:         "",
		BackendTimeoutSecs: 60,
		SentimentURL:       "",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Optional file; fall through to env and defaults.
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.Port = envInt("JARVIS_PORT", cfg.Port)
	cfg.DBPath = envStr("JARVIS_DB_PATH", cfg.DBPath)
	cfg.QuotaBytes = envInt64("JARVIS_QUOTA_BYTES", cfg.QuotaBytes)
	cfg.LogLevel = envStr("JARVIS_LOG_LEVEL", cfg.LogLevel)
	cfg.BackendURL = envStr("JARVIS_BACKEND_URL", cfg.BackendURL)
	cfg.BackendTimeoutSecs = envInt("JARVIS_BACKEND_TIMEOUT_SECS", cfg.BackendTimeoutSecs)
	cfg.SentimentURL = envStr("JARVIS_SENTIMENT_URL", cfg.SentimentURL)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.DBPath == "" {
		return fmt.Errorf("dbPath must not be empty")
	}
	if c.QuotaBytes < 0 {
		return fmt.Errorf("quotaBytes must not be negative, got %d", c.QuotaBytes)
	}
	if c.BackendTimeoutSecs < 1 {
		return fmt.Errorf("backendTimeoutSecs must be positive, got %d", c.BackendTimeoutSecs)
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "jarvis.db"
	}
	return filepath.Join(home, ".jarvis", "jarvis.db")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}
