package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config carries the process configuration. Everything comes from the
// environment so the game runs with a bare invocation.
type Config struct {
	DBPath   string     `env:"MINESWEEPER_DB" envDefault:"minesweeper.db"`
	LogPath  string     `env:"MINESWEEPER_LOG" envDefault:"minesweeper.log"`
	LogLevel slog.Level `env:"MINESWEEPER_LOG_LEVEL" envDefault:"INFO"`
	Debug    bool       `env:"MINESWEEPER_DEBUG" envDefault:"false"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
