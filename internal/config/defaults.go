package config

import "github.com/macarona-salsa/wawa-news/internal/logger"

// Defaults used when neither the config file nor the environment set a value.
const (
	DefaultPort        = 8080
	DefaultArticlesDir = "sample_articles"
	DefaultLogLevel    = "log"
	DefaultConfigFile  = ".wawa.yml"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:        DefaultPort,
		ArticlesDir: DefaultArticlesDir,
		LogLevel:    DefaultLogLevel,
		Color:       logger.ColorAuto,
		LogSpan:     logger.SpanHead,
	}
}
