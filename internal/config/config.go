// Package config loads and validates application configuration from
// environment variables and an optional config file.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// Store selects the card store backend: "memory" needs no further settings,
// "postgres" requires URL.
type DatabaseConfig struct {
	Store string `mapstructure:"store" validate:"required,oneof=memory postgres"`
	URL   string `mapstructure:"url" validate:"required_if=Store postgres,omitempty,url"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}
