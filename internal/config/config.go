// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full process configuration. A missing DatabaseURL or
// RedisAddr selects the in-memory backend for the corresponding stores,
// which is intended for development only.
type Config struct {
	Addr        string `env:"AUTHD_ADDR" envDefault:":3000"`
	JWTSecret   string `env:"AUTHD_JWT_SECRET,required"`
	DatabaseURL string `env:"AUTHD_DATABASE_URL"`
	RedisAddr   string `env:"AUTHD_REDIS_ADDR"`
	RedisPass   string `env:"AUTHD_REDIS_PASSWORD"`
	LogLevel    string `env:"AUTHD_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
