package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
	"folio/internal/ui/state"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	page := ctx.CurrentPage()

	// Global keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.Home):
		return []types.Action{types.SwitchPageAction{Page: state.PageHome}}, true
	case key.Matches(msg, k.Blog):
		return []types.Action{types.SwitchPageAction{Page: state.PageBlog}}, true
	case key.Matches(msg, k.Projects):
		return []types.Action{types.SwitchPageAction{Page: state.PageProjects}}, true
	case key.Matches(msg, k.NextPage):
		return []types.Action{types.SwitchPageAction{Page: nextPage(page)}}, true
	}

	if page == state.PageArticle {
		switch {
		case key.Matches(msg, k.Back):
			return []types.Action{types.BackAction{}}, true
		case key.Matches(msg, k.Pager):
			return []types.Action{types.OpenPagerAction{}}, true
		}
		// Scrolling keys fall through to the article viewport
		return nil, false
	}

	switch {
	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, k.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	if page == state.PageHome {
		return nil, false
	}

	switch {
	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.Query()}}, true
	case key.Matches(msg, k.NextLabel):
		return []types.Action{types.CycleLabelAction{Delta: 1}}, true
	case key.Matches(msg, k.PrevLabel):
		return []types.Action{types.CycleLabelAction{Delta: -1}}, true
	case key.Matches(msg, k.AllLabels):
		return []types.Action{types.ClearLabelAction{}}, true
	case key.Matches(msg, k.Back):
		if ctx.HasFilter() {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, false
	case key.Matches(msg, k.Open):
		if page == state.PageBlog && ctx.CurrentKey() != "" {
			return []types.Action{types.OpenAction{Key: ctx.CurrentKey()}}, true
		}
		return nil, false
	}

	return nil, false
}

func nextPage(p state.Page) state.Page {
	switch p {
	case state.PageHome:
		return state.PageBlog
	case state.PageBlog, state.PageArticle:
		return state.PageProjects
	default:
		return state.PageHome
	}
}
