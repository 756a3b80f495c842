package cmd

import (
	"github.com/spf13/cobra"

	"github.com/macarona-salsa/wawa-news/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wawa",
	Short: "A tiny news site served from a directory of plain-text articles",
	Long: `Wawa News serves a single-page news site. Every subdirectory of the
article root is a section and every file inside it is an article. The page
fetches the whole tree as one JSON document and builds its navigation,
sections and search from it.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
