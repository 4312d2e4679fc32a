package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"folio/internal/eventbus"
	"folio/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
	Owner string
}

// LoadReposCommand starts the single repository load of a view mount
type LoadReposCommand struct {
	ctx   *CommandContext
	limit int
}

// NewLoadReposCommand creates a new load command
func NewLoadReposCommand(ctx *CommandContext, limit int) *LoadReposCommand {
	return &LoadReposCommand{
		ctx:   ctx,
		limit: limit,
	}
}

// Execute allocates a fresh load id, makes it live and requests the load
func (c *LoadReposCommand) Execute() tea.Cmd {
	id := c.ctx.State.BeginLoad()
	log.Debug("requesting repositories", "load", id, "owner", c.ctx.Owner, "limit", c.limit)
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.ReposRequestedEvent{
			LoadID: id,
			Owner:  c.ctx.Owner,
			Limit:  c.limit,
		})
	}
	return nil
}

// CancelLoadCommand abandons the live load when its view unmounts
type CancelLoadCommand struct {
	ctx *CommandContext
}

// NewCancelLoadCommand creates a new cancel command
func NewCancelLoadCommand(ctx *CommandContext) *CancelLoadCommand {
	return &CancelLoadCommand{ctx: ctx}
}

// Execute clears the live load and tells the loader to stop it. A finished
// load has nothing to cancel.
func (c *CancelLoadCommand) Execute() tea.Cmd {
	id := c.ctx.State.EndLoad()
	if id == 0 {
		return nil
	}
	log.Debug("cancelling repository load", "load", id)
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.ReposCancelledEvent{LoadID: id})
	}
	return nil
}
