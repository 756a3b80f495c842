package cmd

import (
	"github.com/spf13/cobra"

	"github.com/macarona-salsa/wawa-news/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wawa configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the port, article root, exclude patterns and log level, then writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
