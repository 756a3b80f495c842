package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/natefinch/atomic"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/macarona-salsa/wawa-news/internal/logger"
)

// EnvPrefix marks environment variables that override file settings.
const EnvPrefix = "WAWA_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (WAWA_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: WAWA_ARTICLES_DIR -> articles_dir, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path. The file is
// replaced atomically.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validColorModes is the set of recognized color values.
var validColorModes = map[logger.ColorMode]bool{
	logger.ColorAuto:   true,
	logger.ColorAlways: true,
	logger.ColorNever:  true,
}

// validSpans is the set of recognized log_span values.
var validSpans = map[logger.ColorSpan]bool{
	logger.SpanHead:    true,
	logger.SpanMessage: true,
	logger.SpanAll:     true,
	logger.SpanNone:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	if c.ArticlesDir == "" {
		return fmt.Errorf("articles_dir is required")
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	if c.Color != "" && !validColorModes[c.Color] {
		return fmt.Errorf("invalid color %q: must be one of auto, always, never", c.Color)
	}

	if c.LogSpan != "" && !validSpans[c.LogSpan] {
		return fmt.Errorf("invalid log_span %q: must be one of head, message, all, none", c.LogSpan)
	}

	return nil
}
