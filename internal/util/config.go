package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RemoteAPIBaseURL  string        `mapstructure:"REMOTE_API_BASE_URL"`
	RequestTimeout    time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	PanelPageSize     int           `mapstructure:"PANEL_PAGE_SIZE"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set defaults for non-sensitive config
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("REQUEST_TIMEOUT", "15s")
	viper.SetDefault("PANEL_PAGE_SIZE", 10)

	// Prefer environment variables over config file
	viper.AutomaticEnv()

	// Load config file
	viper.SetConfigFile(path)
	if err = viper.ReadInConfig(); err != nil {
		return
	}

	// Unmarshal config into struct
	err = viper.UnmarshalExact(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.RemoteAPIBaseURL == "" {
		return fmt.Errorf("REMOTE_API_BASE_URL is required")
	}
	if config.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if config.PanelPageSize <= 0 {
		return fmt.Errorf("PANEL_PAGE_SIZE must be positive")
	}

	return nil
}
