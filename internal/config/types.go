package config

import "github.com/macarona-salsa/wawa-news/internal/logger"

// Config is the top-level wawa configuration, corresponding to .wawa.yml.
type Config struct {
	Port            int              `yaml:"port" koanf:"port"`
	ArticlesDir     string           `yaml:"articles_dir" koanf:"articles_dir"`
	SiteDir         string           `yaml:"site_dir,omitempty" koanf:"site_dir"`
	Exclude         []string         `yaml:"exclude,omitempty" koanf:"exclude"`
	AllowAllOrigins bool             `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LogLevel        string           `yaml:"log_level" koanf:"log_level"`
	Color           logger.ColorMode `yaml:"color" koanf:"color"`
	LogSpan         logger.ColorSpan `yaml:"log_span" koanf:"log_span"`
}
