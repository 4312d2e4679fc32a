package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/ui/input/types"
	"folio/internal/ui/state"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func blogContext(keys ...string) *ModelContext {
	st := state.NewAppState()
	st.Page = state.PageBlog
	return &ModelContext{State: st, Keys: keys}
}

func TestNormalModeGlobalKeys(t *testing.T) {
	h := New()
	ctx := blogContext()

	actions, _ := h.HandleKey(runes("3"), ctx)
	assert.Equal(t, []types.Action{types.SwitchPageAction{Page: state.PageProjects}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, []types.Action{types.SwitchPageAction{Page: state.PageProjects}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ctx)
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)
}

func TestOpenNeedsARow(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, blogContext())
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, blogContext("first", "second"))
	assert.Equal(t, []types.Action{types.OpenAction{Key: "first"}}, actions)
}

func TestBackClearsFiltersOnlyWhenSet(t *testing.T) {
	h := New()
	ctx := blogContext("a")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Empty(t, actions)

	ctx.Filter = true
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.ClearFiltersAction{}}, actions)
}

func TestHomeHasNoFilterKeys(t *testing.T) {
	h := New()
	ctx := blogContext()
	ctx.State.Page = state.PageHome

	actions, _ := h.HandleKey(runes("/"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestArticleLeavesScrollKeysUnconsumed(t *testing.T) {
	h := New()
	ctx := blogContext()
	ctx.State.Page = state.PageArticle

	actions, cmd := h.HandleKey(runes("j"), ctx)
	assert.Empty(t, actions)
	assert.Nil(t, cmd)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.BackAction{}}, actions)
}

func TestSearchModeEditsAndSubmits(t *testing.T) {
	h := New()
	ctx := blogContext()
	ctx.Text = "go"

	actions, cmd := h.HandleKey(runes("/"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.NotNil(t, cmd, "entering search starts the cursor blink")
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "go", h.TextInput().Value(), "search starts from the current query")
	assert.Equal(t, "Search: ", h.Prompt())

	actions, _ = h.HandleKey(runes("l"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "gol"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.NotEmpty(t, actions)
	assert.Equal(t, types.SubmitTextAction{Text: "gol", Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModeCancel(t *testing.T) {
	h := New()
	ctx := blogContext()

	h.HandleKey(runes("/"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.NotEmpty(t, actions)
	assert.Equal(t, types.CancelTextAction{}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestResetLeavesTextMode(t *testing.T) {
	h := New()
	h.HandleKey(runes("/"), blogContext())
	require.Equal(t, types.ModeSearch, h.CurrentMode())

	h.Reset()
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Empty(t, h.Prompt())
}
