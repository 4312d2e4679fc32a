package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"folio/internal/discovery"
	"folio/internal/eventbus"
	"folio/internal/github"
	"folio/internal/logging"
	"folio/internal/logic"
	"folio/internal/ui"
	"folio/internal/ui/state"
)

// readyEnv makes the UI print a marker once the program is about to start
const readyEnv = "FOLIO_E2E_TEST"

// Events the UI reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventReposLoaded,
	eventbus.EventArticlesLoaded,
	eventbus.EventError,
}

func addTUIFlags(root *cobra.Command, opts *rootOptions) {
	var page, article, style string
	root.Flags().StringVarP(&page, "page", "p", "home", "start page: home, blog or projects")
	root.Flags().StringVarP(&article, "article", "a", "", "open the article with this slug")
	root.Flags().StringVar(&style, "style", "auto", "markdown style: auto, dark, light, notty, ...")

	root.RunE = func(cmd *cobra.Command, args []string) error {
		start, ok := state.ParsePage(page)
		if !ok {
			return fmt.Errorf("unknown page %q (want home, blog or projects)", page)
		}

		modelOpts := []ui.Option{ui.WithStartPage(start), ui.WithMarkdownStyle(style)}
		if article != "" {
			modelOpts = append(modelOpts, ui.WithArticle(article))
		}
		return runTUI(cmd, opts, modelOpts)
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions, modelOpts []ui.Option) error {
	bus := eventbus.New()
	defer bus.Close()

	cfg, _, err := opts.loadConfig(bus)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to the configured file
	closer, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repoSvc := github.NewService(bus, newGitHubClient(cfg))
	defer repoSvc.Close()

	store := logic.NewMemoryArticleStore(nil)
	model := ui.NewModel(bus, cfg, store, modelOpts...)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, eventType := range forwardedEvents {
		unsubscribe := bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				log.Warn("event channel full, dropping event", "type", e.Type())
			}
		})
		defer unsubscribe()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		_, _ = discovery.NewDiscoveryService(bus).Discover(ctx, cfg.Content.Dir)
	}()

	if os.Getenv(readyEnv) != "" {
		fmt.Fprintln(cmd.OutOrStdout(), "__READY__")
	}

	log.Info("starting ui", "owner", cfg.GitHub.Owner)
	_, err = p.Run()
	cancel()
	<-done

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running ui: %w", err)
	}
	log.Info("ui exited")
	return nil
}
