package types

import "folio/internal/ui/state"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// SwitchPageAction mounts another top-level view
type SwitchPageAction struct {
	Page state.Page
}

func (a SwitchPageAction) Type() string { return "switch_page" }

// OpenAction opens the item under the cursor
type OpenAction struct {
	Key string
}

func (a OpenAction) Type() string { return "open" }

// BackAction leaves the detail view
type BackAction struct{}

func (a BackAction) Type() string { return "back" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Label selection actions
type CycleLabelAction struct {
	Delta int // +1 next, -1 previous
}

func (a CycleLabelAction) Type() string { return "cycle_label" }

type ClearLabelAction struct{}

func (a ClearLabelAction) Type() string { return "clear_label" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// Pager actions
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
