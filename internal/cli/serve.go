package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/logic"
	"folio/internal/site"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Long:  "Serve renders every page on request. Repositories are fetched per page view; articles are read once at start.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.loadConfig(nil)
			if err != nil {
				return err
			}
			if err := setupStderrLogging(cmd, cfg); err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			s, err := buildSite(ctx, cfg)
			if err != nil {
				return err
			}
			return s.Serve(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

// buildSite loads the articles and binds the site to the configured account.
// A failed article scan is not fatal; the pages show the failure.
func buildSite(ctx context.Context, cfg *config.Config) (*site.Site, error) {
	articles, _ := loadArticles(ctx, cfg)
	store := logic.NewMemoryArticleStore(articles)

	return site.New(store, newGitHubClient(cfg), site.Options{
		Owner:     cfg.GitHub.Owner,
		HomeLimit: cfg.GitHub.HomeLimit,
		ListLimit: cfg.GitHub.ListLimit,
	})
}
