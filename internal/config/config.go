package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":4000"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/ambari.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	// Default admin seeded on first start. Leave the password empty to skip
	// seeding an admin entirely.
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@ambari.local"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
