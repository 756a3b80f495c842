package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/macarona-salsa/wawa-news/internal/config"
	"github.com/macarona-salsa/wawa-news/internal/server"
	"github.com/macarona-salsa/wawa-news/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve [port] [article-root]",
	Short: "Serve the news site",
	Long: `Starts the HTTP server. The optional positional arguments override the
port and the article root from the config file.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := applyServeArgs(cfg, args); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:        cfg.Port,
			ArticlesDir: cfg.ArticlesDir,
			Exclude:     cfg.Exclude,
			AllowAll:    cfg.AllowAllOrigins,
		}, web.FS(cfg.SiteDir), log)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		log.Debug("serving articles", "articles_dir", cfg.ArticlesDir, "site_dir", cfg.SiteDir)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// applyServeArgs overrides the port and article root with the positional
// arguments, in that order.
func applyServeArgs(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		port, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", args[0], err)
		}
		cfg.Port = port
	}
	if len(args) > 1 {
		cfg.ArticlesDir = args[1]
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
