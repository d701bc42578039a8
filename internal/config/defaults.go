package config

import "github.com/Chethumuniraju/stockfolio/internal/common"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 4251,
			Host: "localhost",
		},
		API: APIConfig{
			URL: "http://localhost:4252",
		},
		Share: ShareConfig{},
		Quotes: QuotesConfig{
			TTLMinutes: 15,
		},
		Logging: common.LoggingConfig{
			Level:   "info",
			Outputs: []string{"console", "file"},
		},
	}
}
