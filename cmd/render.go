package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macarona-salsa/wawa-news/internal/articles"
	"github.com/macarona-salsa/wawa-news/internal/config"
	"github.com/macarona-salsa/wawa-news/internal/dom"
	"github.com/macarona-salsa/wawa-news/internal/web"
)

var (
	renderSource string
	renderQuery  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the populated page",
	Long: `Builds the page the browser would show and prints it as HTML. The
articles come from a running server when --source is an http(s) URL, and
from an article directory otherwise. --query highlights matches the way
the search button does.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}

		source := renderSource
		if source == "" {
			source = cfg.ArticlesDir
		}
		return renderPage(cmd.Context(), cmd.OutOrStdout(), cfg, source, renderQuery, log)
	},
}

func renderPage(ctx context.Context, w io.Writer, cfg *config.Config, source, query string, log *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	page, err := dom.LoadPage(web.FS(cfg.SiteDir))
	if err != nil {
		return err
	}

	if isURL(source) {
		if err := dom.NewFetcher().Load(ctx, page, source); err != nil {
			return err
		}
	} else {
		set, err := articles.Encode(ctx, source, articles.Options{
			Exclude: cfg.Exclude,
			Logger:  log,
		})
		if err != nil {
			return err
		}
		dom.Populate(page, set)
	}

	if query != "" {
		dom.NewSearchToggle(page).Press(query)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func init() {
	renderCmd.Flags().StringVar(&renderSource, "source", "", "server URL or article directory (default: articles_dir)")
	renderCmd.Flags().StringVar(&renderQuery, "query", "", "highlight this text")
	rootCmd.AddCommand(renderCmd)
}
