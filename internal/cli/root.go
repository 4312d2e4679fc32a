// Package cli wires folio's services into cobra commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/discovery"
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/github"
	"folio/internal/logging"
)

// Version is set at build time with -ldflags "-X folio/internal/cli.Version=..."
var Version = "dev"

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	configPath string
	owner      string
	logLevel   string
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the terminal UI.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "folio",
		Short:         "Browse a personal blog and GitHub portfolio",
		Long:          "folio browses blog articles and the public GitHub repositories of one account,\nin the terminal, as a local web server or as an exported static site.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&opts.owner, "owner", "", "GitHub account to show (overrides github.owner)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides log.level)")

	addTUIFlags(root, opts)
	root.AddCommand(
		newServeCommand(opts),
		newExportCommand(opts),
		newReposCommand(opts),
		newArticlesCommand(opts),
		newConfigCommand(opts),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies the flag overrides. bus may
// be nil.
func (o *rootOptions) loadConfig(bus eventbus.EventBus) (*config.Config, config.ConfigService, error) {
	svc := config.NewConfigServiceWithBus(bus, o.configPath)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}
	if o.owner != "" {
		cfg.GitHub.Owner = o.owner
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, svc, nil
}

// setupStderrLogging sends logs of commands that do not own the terminal to
// the command's stderr
func setupStderrLogging(cmd *cobra.Command, cfg *config.Config) error {
	return logging.SetupWriter(cmd.ErrOrStderr(), cfg.Log.Level)
}

func newGitHubClient(cfg *config.Config) *github.Client {
	return github.NewClient(cfg.GitHub.APIURL, github.WithUserAgent("folio/"+Version))
}

// loadArticles runs one discovery of the configured article source
func loadArticles(ctx context.Context, cfg *config.Config) ([]domain.Article, error) {
	bus := eventbus.New()
	defer bus.Close()
	return discovery.NewDiscoveryService(bus).Discover(ctx, cfg.Content.Dir)
}
