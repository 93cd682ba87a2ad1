package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment variables override everything else
		viper.SetEnvPrefix("PODCAST")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing file is fine: defaults plus env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured")
	}

	secret := viper.GetString("auth.jwt_secret")
	env := viper.GetString("environment")
	if secret == "" || secret == "changeme" {
		if env == "production" || env == "prod" {
			return fmt.Errorf("invalid JWT secret: cannot use placeholder values in production")
		}
		fmt.Println("Warning: JWT secret is using a placeholder value - this is insecure!")
	}

	// Auto-correct invalid page size
	if viper.GetInt("pagination.page_size") <= 0 {
		viper.Set("pagination.page_size", 12)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Pagination.PageSize <= 0 {
		c.Pagination.PageSize = 12
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/podcast.db")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.verbose", false)

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "changeme")
	viper.SetDefault("auth.token_ttl", 24*time.Hour)

	// Pagination defaults
	viper.SetDefault("pagination.page_size", 12)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.max_request_size", 1048576)
}
