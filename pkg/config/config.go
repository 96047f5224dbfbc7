package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const devSessionSecret = "plantshop-dev-session-secret-32b"

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`
	GRPCPort int `env:"GRPC_PORT" envDefault:"8081"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"bolt"`
	StorePath   string `env:"STORE_PATH" envDefault:"plantshop.db"`

	SessionSecret string `env:"SESSION_SECRET"`
	Currency      string `env:"CURRENCY" envDefault:"USD"`
}

// Load parses the environment. Outside dev a SESSION_SECRET is required.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.StoreDriver {
	case "bolt", "sqlite", "memory":
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.SessionSecret == "" {
		if !cfg.IsDev() {
			return Config{}, fmt.Errorf("SESSION_SECRET is required when APP_ENV=%s", cfg.AppEnv)
		}
		cfg.SessionSecret = devSessionSecret
	}
	return cfg, nil
}

func (c Config) IsDev() bool {
	return c.AppEnv == "dev"
}
