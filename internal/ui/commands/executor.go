package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/eventbus"
	"folio/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus, owner string) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
			Owner: owner,
		},
	}
}

// ExecuteLoadRepos creates and executes a repository load command
func (e *Executor) ExecuteLoadRepos(limit int) tea.Cmd {
	cmd := NewLoadReposCommand(e.ctx, limit)
	return cmd.Execute()
}

// ExecuteCancelLoad creates and executes a cancel command
func (e *Executor) ExecuteCancelLoad() tea.Cmd {
	cmd := NewCancelLoadCommand(e.ctx)
	return cmd.Execute()
}
