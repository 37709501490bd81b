package config

import (
	"fmt"
	"strings"

	"knucklebones/meta"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the defaults the command line flags start from.
type Config struct {
	Mode       string   `env:"KNUCKLEBONES_MODE" envDefault:"play"`
	Player0    string   `env:"KNUCKLEBONES_P0" envDefault:"smart"`
	Player1    string   `env:"KNUCKLEBONES_P1" envDefault:"pupser"`
	Strategies []string `env:"KNUCKLEBONES_STRATEGIES" envSeparator:","`
	Games      int      `env:"KNUCKLEBONES_GAMES"`
	Workers    int      `env:"KNUCKLEBONES_WORKERS"`
	Seed       uint64   `env:"KNUCKLEBONES_SEED"` // 0 seeds from the clock
	OutDir     string   `env:"KNUCKLEBONES_OUT" envDefault:"results"`
	Moves      bool     `env:"KNUCKLEBONES_MOVES"`
	LogLevel   string   `env:"KNUCKLEBONES_LOG_LEVEL" envDefault:"info"`
	PrettyLogs bool     `env:"KNUCKLEBONES_PRETTY_LOGS" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and fills the counts left unset.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Games <= 0 {
		cfg.Games = meta.GAMES
	}
	if cfg.Workers <= 0 {
		cfg.Workers = meta.WORKERS
	}
	return cfg, nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}
