package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DataDir  string     `env:"SORTCYCLE_DATA_DIR" envDefault:"data"`
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:"127.0.0.1:8090"`
	DBPath   string     `env:"DB_PATH" envDefault:"sortcycle.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
