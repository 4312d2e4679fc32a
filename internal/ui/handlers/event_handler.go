package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"folio/internal/eventbus"
	"folio/internal/ui/state"
)

// statusTimeout is how long an error stays in the footer
const statusTimeout = 5 * time.Second

// ClearStatusMsg asks the model to clear the footer status
type ClearStatusMsg struct{}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state       *state.AppState
	collections *state.Collections
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, collections *state.Collections) *EventHandler {
	return &EventHandler{
		state:       appState,
		collections: collections,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ReposLoadedEvent:
		// Completions of loads whose view is gone must not touch the listing
		if !h.state.IsLive(e.LoadID) {
			log.Debug("dropping stale repository load", "load", e.LoadID, "live", h.state.LiveLoadID)
			return nil
		}
		h.state.EndLoad()
		h.collections.Repos.Resolve(e.Repos, e.Err)
		if e.Err != nil {
			log.Warn("repository load failed", "owner", e.Owner, "err", e.Err)
		}

	case eventbus.ArticlesLoadedEvent:
		h.collections.Store.ReplaceAll(e.Articles)
		h.collections.Articles.Resolve(e.Articles, e.Err)
		h.state.ArticlesLoaded = true
		h.state.ArticlesErr = e.Err

	case eventbus.ErrorEvent:
		h.state.SetStatus(fmt.Sprintf("Error: %s", e.Message), true)
		return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return ClearStatusMsg{} })
	}

	return nil
}
