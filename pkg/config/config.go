// Package config loads the service configuration from the environment.
//
// Variables are read with the DATING_ prefix, lowercased, and mapped onto
// Config by their koanf tags, e.g. DATING_POSTGRES_URL -> postgres_url.
// A .env file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "DATING_"

type Config struct {
	Port        string `koanf:"port" validate:"required"`
	Env         string `koanf:"env" validate:"required,oneof=development staging production test"`
	LogLevel    string `koanf:"log_level" validate:"required,oneof=trace debug info warn error"`
	PostgresURL string `koanf:"postgres_url" validate:"required"`
	JWTSecret   string `koanf:"jwt_secret" validate:"required,min=16"`

	MaxOpenConns       int `koanf:"max_open_conns" validate:"min=1"`
	MaxIdleConns       int `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetimeMin int `koanf:"conn_max_lifetime_min" validate:"min=0"`
	SlowQueryMs        int `koanf:"slow_query_ms" validate:"min=0"`

	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func defaults() *Config {
	return &Config{
		Port:               "8080",
		Env:                "development",
		LogLevel:           "info",
		MaxOpenConns:       25,
		MaxIdleConns:       5,
		ConnMaxLifetimeMin: 30,
		SlowQueryMs:        200,
		CORSAllowedOrigins: []string{"*"},
	}
}

// Load reads .env (if any) and the DATING_* environment into a validated Config.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if origins := k.String("cors_allowed_origins"); origins != "" {
		cfg.CORSAllowedOrigins = splitList(origins)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
