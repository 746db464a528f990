package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sethvargo/go-envconfig"
)

type CLIConfig struct {
	LogLevel   string `env:"CRONEXPAND_LOG_LEVEL, default=warn"`
	LabelWidth int    `env:"CRONEXPAND_LABEL_WIDTH, default=14"`
	Strict     bool   `env:"CRONEXPAND_STRICT, default=false"`
}

func NewCLIConfigFromEnv() (*CLIConfig, error) {
	return newCLIConfig(envconfig.OsLookuper())
}

func newCLIConfig(lookuper envconfig.Lookuper) (*CLIConfig, error) {
	var cfg CLIConfig
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if cfg.LabelWidth < 0 {
		return nil, fmt.Errorf("CRONEXPAND_LABEL_WIDTH must not be negative, got %d", cfg.LabelWidth)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Level returns the slog level named by LogLevel.
func (c *CLIConfig) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid CRONEXPAND_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
