package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of normal mode. The same bindings feed the help footer.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Home      key.Binding
	Blog      key.Binding
	Projects  key.Binding
	NextPage  key.Binding
	Open      key.Binding
	Back      key.Binding
	Search    key.Binding
	NextLabel key.Binding
	PrevLabel key.Binding
	AllLabels key.Binding
	Pager     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns folio's key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Home:      key.NewBinding(key.WithKeys("1", "H"), key.WithHelp("1", "home")),
		Blog:      key.NewBinding(key.WithKeys("2", "B"), key.WithHelp("2", "blog")),
		Projects:  key.NewBinding(key.WithKeys("3", "P"), key.WithHelp("3", "projects")),
		NextPage:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back/clear")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextLabel: key.NewBinding(key.WithKeys("]", "l", "right"), key.WithHelp("]", "next tag")),
		PrevLabel: key.NewBinding(key.WithKeys("[", "h", "left"), key.WithHelp("[", "prev tag")),
		AllLabels: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all tags")),
		Pager:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in pager")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp returns the bindings shown in the footer for a list view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Search, k.NextLabel, k.AllLabels, k.Open, k.NextPage, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped by column
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Home, k.Blog, k.Projects, k.NextPage, k.Open, k.Back},
		{k.Search, k.NextLabel, k.PrevLabel, k.AllLabels},
		{k.Pager, k.Help, k.Quit},
	}
}
