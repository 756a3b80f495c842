package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/macarona-salsa/wawa-news/internal/config"
	"github.com/macarona-salsa/wawa-news/internal/logger"
)

// loadConfig loads the config file and env overrides, providing a
// user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `wawa init` to create a config file", err)
	}
	return cfg, nil
}

// newLogger builds the stderr logger described by cfg. --verbose forces
// the debug level.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = logger.LevelDebug
	}
	return logger.New(os.Stderr, &logger.Options{
		Level: level,
		Color: cfg.Color,
		Span:  cfg.LogSpan,
	}), nil
}
