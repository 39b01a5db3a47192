package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix of every configuration environment variable,
// e.g. LEITNER_SERVER_PORT, LEITNER_DATABASE_URL.
const envPrefix = "LEITNER"

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over file values. Returns a validated Config or an error
// describing the first failing field.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep the zero-setup path working: in-memory store on :8080.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.store", "memory")
	v.SetDefault("auth.token_lifetime_minutes", 60)

	// Optional config file; absence is not an error.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// LEITNER_SERVER_PORT overrides server.port, and so on.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv does not register keys; bind the known ones explicitly
	// so Unmarshal sees env-only values.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.store",
		"database.url",
		"auth.jwt_secret",
		"auth.token_lifetime_minutes",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks the struct-level validation tags and converts the first
// failure into a readable error.
func validate(cfg *Config) error {
	validate := validator.New()
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return fmt.Errorf("invalid configuration: field %s failed on the %q rule",
			first.Namespace(), first.Tag())
	}
	return fmt.Errorf("invalid configuration: %w", err)
}
