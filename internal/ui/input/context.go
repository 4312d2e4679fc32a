package input

import (
	"folio/internal/ui/input/types"
	"folio/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State  *state.AppState
	Keys   []string // keys of the rows currently listed
	Filter bool
	Text   string
}

var _ types.Context = (*ModelContext)(nil)

func (c *ModelContext) CurrentPage() state.Page {
	return c.State.Page
}

func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

func (c *ModelContext) TotalItems() int {
	return len(c.Keys)
}

// CurrentKey returns the key under the cursor, or "" when the list is empty
func (c *ModelContext) CurrentKey() string {
	i := c.State.SelectedIndex
	if i < 0 || i >= len(c.Keys) {
		return ""
	}
	return c.Keys[i]
}

func (c *ModelContext) HasFilter() bool {
	return c.Filter
}

func (c *ModelContext) Query() string {
	return c.Text
}
