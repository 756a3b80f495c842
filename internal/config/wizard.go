package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/macarona-salsa/wawa-news/internal/logger"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to wawa news! Let's configure your site.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port to listen on",
		Default:  strconv.Itoa(defaults.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(strings.TrimSpace(portStr))

	// 2. Article root.
	articlesPrompt := promptui.Prompt{
		Label:   "Articles directory (one subdirectory per section)",
		Default: defaults.ArticlesDir,
	}
	articlesDir, err := articlesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("articles dir: %w", err)
	}
	if _, statErr := os.Stat(articlesDir); os.IsNotExist(statErr) {
		fmt.Printf("Note: %s does not exist yet; /articles will fail until it does.\n", articlesDir)
	}

	// 3. Exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Exclude patterns (comma-separated globs, leave blank for none)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}

	// 4. Log level.
	levelPrompt := promptui.Select{
		Label: "Log level",
		Items: []string{"debug", "info", "log", "warning", "error"},
	}
	_, level, err := levelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	cfg := &Config{
		Port:        port,
		ArticlesDir: articlesDir,
		Exclude:     splitAndTrim(excludeStr),
		LogLevel:    level,
		Color:       logger.ColorAuto,
		LogSpan:     logger.SpanHead,
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
