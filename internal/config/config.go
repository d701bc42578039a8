// Package config loads portal configuration from defaults, TOML files,
// environment variables, and CLI flags, in increasing priority.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/Chethumuniraju/stockfolio/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	API     APIConfig            `toml:"api"`
	Share   ShareConfig          `toml:"share"`
	Quotes  QuotesConfig         `toml:"quotes"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// APIConfig points at the stock API backend the portal fronts.
type APIConfig struct {
	URL string `toml:"url"`
}

// ShareConfig controls share-link construction.
type ShareConfig struct {
	// BaseURL is the public origin used when building share links,
	// e.g. "https://folio.example.com". Falls back to the server address.
	BaseURL string `toml:"base_url"`
}

// QuotesConfig contains quote cache settings.
type QuotesConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies STOCKFOLIO_* environment variable overrides.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("STOCKFOLIO_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("STOCKFOLIO_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if url := os.Getenv("STOCKFOLIO_API_URL"); url != "" {
		config.API.URL = url
	}
	if base := os.Getenv("STOCKFOLIO_SHARE_BASE_URL"); base != "" {
		config.Share.BaseURL = base
	}
	if level := os.Getenv("STOCKFOLIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// BaseURL returns the public origin used for share links: the configured
// share base URL if set, otherwise the server's own address.
func (c *Config) BaseURL() string {
	if c.Share.BaseURL != "" {
		return strings.TrimRight(c.Share.BaseURL, "/")
	}
	return fmt.Sprintf("http://%s:%d", c.Server.Host, c.Server.Port)
}
