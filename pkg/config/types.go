package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Security   SecurityConfig   `mapstructure:"security"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	Verbose               bool          `mapstructure:"verbose"`
}

// AuthConfig contains token issuance settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// PaginationConfig contains list paging settings
type PaginationConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// SecurityConfig contains transport hardening settings
type SecurityConfig struct {
	EnableCORS     bool  `mapstructure:"enable_cors"`
	MaxRequestSize int64 `mapstructure:"max_request_size"`
}
