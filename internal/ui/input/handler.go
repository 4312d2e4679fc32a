package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/modes"
	"folio/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
	keys        types.KeyMap
}

func New() *Handler {
	ti := textinput.New()
	ti.CharLimit = 120

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        types.DefaultKeyMap(),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(h.keys)
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		if h.modes[h.currentMode] != nil {
			allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
		}

		oldMode := h.currentMode
		h.currentMode = changeMode.Mode

		// Entering a text mode starts from the value the model passed along
		if h.isTextMode(h.currentMode) {
			h.textInput.Reset()
			if text, ok := changeMode.Data.(string); ok {
				h.textInput.SetValue(text)
				h.textInput.CursorEnd()
			}
		}

		if h.modes[h.currentMode] != nil {
			allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
		}

		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		} else if h.isTextMode(oldMode) {
			h.textInput.Blur()
		}
		allActions = append(allActions, changeMode)
	}

	// Keys the text mode did not consume go to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// Update forwards non-key messages such as cursor blinks to the text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if !h.isTextMode(h.currentMode) {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the shared input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// Keys returns the bindings used by normal mode
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// Prompt returns the label of the active text mode
func (h *Handler) Prompt() string {
	if p, ok := h.modes[h.currentMode].(interface{ Prompt() string }); ok {
		return p.Prompt()
	}
	return ""
}

// Reset returns to normal mode, e.g. when the mounted view changes
func (h *Handler) Reset() {
	if h.isTextMode(h.currentMode) {
		h.textInput.Blur()
		h.textInput.Reset()
	}
	h.currentMode = types.ModeNormal
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}
