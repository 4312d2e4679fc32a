package ui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/logic"
	"folio/internal/markdown"
	"folio/internal/ui/commands"
	"folio/internal/ui/handlers"
	"folio/internal/ui/input"
	inputtypes "folio/internal/ui/input/types"
	uilogic "folio/internal/ui/logic"
	"folio/internal/ui/state"
	"folio/internal/ui/viewmodels"
	"folio/internal/ui/views"
)

// Lines taken by everything around a listing: padding, title line, search
// line, label bar and footer
const reservedLines = 11

// Lines taken around the article viewport: padding, title line, article
// header and footer
const articleChromeLines = 9

// listing is the part of a browsing controller the input layer drives.
// Both logic.Controller instantiations satisfy it.
type listing interface {
	SetQuery(q string)
	SelectLabel(label string)
	ClearLabel()
	ClearFilters()
	Labels() []string
	Filter() logic.FilterState
	ViewKeys() []string
}

// Option configures a Model
type Option func(*Model)

// WithStartPage mounts page first instead of the home view
func WithStartPage(page state.Page) Option {
	return func(m *Model) { m.startPage = page }
}

// WithArticle opens the article with the given slug on start
func WithArticle(slug string) Option {
	return func(m *Model) {
		m.startPage = state.PageArticle
		m.state.ArticleSlug = slug
	}
}

// WithMarkdownStyle selects the glamour style of article bodies
func WithMarkdownStyle(style string) Option {
	return func(m *Model) { m.markdown = markdown.NewTerminalRenderer(style) }
}

// Model represents the UI state
type Model struct {
	bus         eventbus.EventBus
	config      *config.Config
	state       *state.AppState
	collections *state.Collections

	// UI-specific state not in AppState
	width       int
	height      int
	startPage   state.Page
	inPagerMode bool   // tracks if we're currently in pager mode
	searchFrom  string // query to restore when a search is cancelled
	article     *domain.Article
	articleText string // article body rendered for the terminal
	spinner     spinner.Model
	viewport    viewport.Model

	// Handlers
	navigator    *uilogic.Navigator         // cursor and viewport handler
	renderer     *views.Renderer            // view renderer
	eventHandler *handlers.EventHandler     // event processing handler
	viewModel    *viewmodels.ViewModel      // view model for rendering
	cmdExecutor  *commands.Executor         // command executor
	inputHandler *input.Handler             // input handling
	helpRenderer *HelpRenderer              // help page content
	pager        *Pager                     // ov pager
	markdown     *markdown.TerminalRenderer // article body renderer

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. Articles arrive later as an
// ArticlesLoadedEvent; store is the store that event fills.
func NewModel(bus eventbus.EventBus, cfg *config.Config, store logic.ArticleStore, opts ...Option) *Model {
	appState := state.NewAppState()
	collections := state.NewCollections(store)
	inputHandler := input.New()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		collections:  collections,
		startPage:    state.PageHome,
		spinner:      sp,
		viewport:     viewport.New(80, 20),
		navigator:    uilogic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: inputHandler,
		helpRenderer: NewHelpRenderer(inputHandler.Keys()),
		pager:        NewPager(),
		markdown:     markdown.NewTerminalRenderer(markdown.StyleAuto),
	}

	m.eventHandler = handlers.NewEventHandler(appState, collections)
	m.cmdExecutor = commands.NewExecutor(appState, bus, cfg.GitHub.Owner)
	m.viewModel = viewmodels.NewViewModel(appState, collections, cfg.GitHub.Owner, inputHandler.Keys())

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init mounts the start page and starts the spinner
func (m *Model) Init() tea.Cmd {
	// Will be updated on first WindowSizeMsg
	m.state.ViewportHeight = 4
	m.state.Page = m.startPage
	m.state.PrevPage = state.PageBlog
	return tea.Batch(m.mount(m.startPage), m.spinner.Tick)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, m.handleKey(msg)

	default:
		cmds := []tea.Cmd{m.inputHandler.Update(msg)}
		_, cmd := m.handleNonKeyboardMsg(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := &input.ModelContext{State: m.state}
	if l := m.currentListing(); l != nil {
		ctx.Keys = l.ViewKeys()
		ctx.Filter = !l.Filter().IsZero()
		ctx.Text = l.Filter().Query
	}

	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	// Unconsumed keys on the article page scroll the body
	if len(actions) == 0 && cmd == nil && m.state.Page == state.PageArticle {
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		return vpCmd
	}

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.SetTextInput(ti, m.inputHandler.Prompt())
	} else {
		m.viewModel.SetTextInput(nil, "")
	}

	if m.isLoading() {
		m.viewModel.SetSpinner(m.spinner.View())
	} else {
		m.viewModel.SetSpinner("")
	}
	m.viewModel.SetArticle(m.article, m.viewport.View())

	m.syncNavigatorState()
	return m.renderer.Render(m.viewModel.BuildViewState(m.navigator))
}

// isLoading reports whether a load the mounted view waits on is pending
func (m *Model) isLoading() bool {
	return m.state.LiveLoadID != 0 || !m.state.ArticlesLoaded
}

// currentListing returns the controller behind the mounted list view, nil
// for views without a cursor
func (m *Model) currentListing() listing {
	switch m.state.Page {
	case state.PageBlog:
		return m.collections.Articles
	case state.PageProjects:
		return m.collections.Repos
	default:
		return nil
	}
}

// hasRepoMount reports whether page owns a repository load
func hasRepoMount(page state.Page) bool {
	return page == state.PageHome || page == state.PageProjects
}

// inBlog reports whether page belongs to the blog browsing session
func inBlog(page state.Page) bool {
	return page == state.PageBlog || page == state.PageArticle
}

// switchPage tears down the mounted view and mounts page
func (m *Model) switchPage(page state.Page) tea.Cmd {
	if page == m.state.Page {
		return nil
	}

	old := m.state.Page
	m.unmount(old, page)
	m.inputHandler.Reset()
	m.state.PrevPage = old
	m.state.Page = page
	m.state.ResetCursor()
	log.Debug("page switched", "from", old, "to", page)
	return m.mount(page)
}

func (m *Model) unmount(old, next state.Page) {
	if hasRepoMount(old) {
		m.cmdExecutor.ExecuteCancelLoad()
		m.collections.Repos.Reset()
	}
	if inBlog(old) && !inBlog(next) {
		m.collections.Articles.ClearFilters()
	}
	if old == state.PageArticle {
		m.article = nil
		m.articleText = ""
	}
}

func (m *Model) mount(page state.Page) tea.Cmd {
	switch page {
	case state.PageHome:
		return m.cmdExecutor.ExecuteLoadRepos(m.config.GitHub.HomeLimit)
	case state.PageProjects:
		return m.cmdExecutor.ExecuteLoadRepos(m.config.GitHub.ListLimit)
	case state.PageArticle:
		m.resolveArticle()
	}
	return nil
}

// resolveArticle looks the hand-off slug up in the store. Until articles
// have loaded the page shows a loading placeholder; afterwards a miss is
// the not-found page.
func (m *Model) resolveArticle() {
	m.article = nil
	m.articleText = ""
	if !m.state.ArticlesLoaded {
		return
	}

	a, err := m.collections.Store.GetArticle(m.state.ArticleSlug)
	if err != nil {
		log.Info("article not found", "slug", m.state.ArticleSlug, "err", err)
		m.viewport.SetContent("")
		return
	}

	m.article = &a
	m.renderArticleBody()
}

// renderArticleBody renders the resolved article at the current width
func (m *Model) renderArticleBody() {
	if m.article == nil {
		return
	}
	out, err := m.markdown.Render(m.article.Body, m.viewport.Width)
	if err != nil {
		log.Warn("rendering article", "slug", m.article.Slug, "err", err)
		out = m.article.Body
	}
	m.articleText = out
	m.viewport.SetContent(out)
	m.viewport.GotoTop()
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		switch a.Direction {
		case "up":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(-1)
		case "down":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(1)
		case "home":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(0)
		case "end":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.navigator.GetMaxIndex())
		case "pageup":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Page(-1)
		case "pagedown":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Page(1)
		}

	case inputtypes.SwitchPageAction:
		return m.switchPage(a.Page)

	case inputtypes.OpenAction:
		// Only the slug crosses into the article view
		m.state.ArticleSlug = a.Key
		return m.switchPage(state.PageArticle)

	case inputtypes.BackAction:
		slug := m.state.ArticleSlug
		cmd := m.switchPage(state.PageBlog)
		m.selectKey(slug)
		return cmd

	case inputtypes.ChangeModeAction:
		if a.Mode == inputtypes.ModeSearch {
			if l := m.currentListing(); l != nil {
				m.searchFrom = l.Filter().Query
			}
		}

	case inputtypes.UpdateTextAction:
		m.setQuery(a.Text)

	case inputtypes.SubmitTextAction:
		m.setQuery(a.Text)

	case inputtypes.CancelTextAction:
		m.setQuery(m.searchFrom)

	case inputtypes.CycleLabelAction:
		m.cycleLabel(a.Delta)

	case inputtypes.ClearLabelAction:
		if l := m.currentListing(); l != nil {
			l.ClearLabel()
			m.state.ResetCursor()
		}

	case inputtypes.ClearFiltersAction:
		if l := m.currentListing(); l != nil {
			l.ClearFilters()
			m.state.ResetCursor()
		}

	case inputtypes.OpenPagerAction:
		if m.article != nil {
			return m.showInPager("article", m.article.Title+"\n"+views.MetaText(*m.article), m.articleText)
		}

	case inputtypes.ToggleHelpAction:
		return m.showInPager("help", "", m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		if hasRepoMount(m.state.Page) {
			m.cmdExecutor.ExecuteCancelLoad()
		}
		return tea.Quit
	}

	return nil
}

func (m *Model) setQuery(q string) {
	l := m.currentListing()
	if l == nil || l.Filter().Query == q {
		return
	}
	l.SetQuery(q)
	m.state.ResetCursor()
}

// cycleLabel steps through "all" followed by the label index, wrapping
func (m *Model) cycleLabel(delta int) {
	l := m.currentListing()
	if l == nil {
		return
	}
	labels := l.Labels()
	if len(labels) == 0 {
		return
	}

	n := len(labels) + 1
	pos := slices.Index(labels, l.Filter().Label) + 1 // 0 is "all"
	pos = ((pos+delta)%n + n) % n
	if pos == 0 {
		l.ClearLabel()
	} else {
		l.SelectLabel(labels[pos-1])
	}
	m.state.ResetCursor()
}

// selectKey moves the cursor onto the row with key, if listed
func (m *Model) selectKey(key string) {
	l := m.currentListing()
	if l == nil {
		return
	}
	if i := slices.Index(l.ViewKeys(), key); i >= 0 {
		m.state.SelectedIndex = i
		m.ensureSelectedVisible()
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		if _, ok := msg.Event.(eventbus.ArticlesLoadedEvent); ok && m.state.Page == state.PageArticle {
			m.resolveArticle()
		}
		m.ensureSelectedVisible()
		return m, cmd

	case spinner.TickMsg:
		// Don't continue the tick loop while the pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			log.Warn("pager failed", "what", msg.what, "err", msg.err)
			m.state.SetStatus(fmt.Sprintf("Could not open the %s pager: %v", msg.what, msg.err), true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick

	case handlers.ClearStatusMsg:
		m.state.SetStatus("", false)
		return m, nil

	default:
		return m, nil
	}
}

// updateViewportHeight recomputes how many rows fit the list and resizes
// the article viewport
func (m *Model) updateViewportHeight() {
	rows := (m.height - reservedLines) / views.RowHeight
	if rows < 1 {
		rows = 1
	}
	m.state.ViewportHeight = rows

	m.viewport.Width = max(m.width-4, 20)
	m.viewport.Height = max(m.height-articleChromeLines, 3)
	m.renderArticleBody()

	m.ensureSelectedVisible()
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	total := 0
	if l := m.currentListing(); l != nil {
		total = len(l.ViewKeys())
	}
	m.navigator.UpdateState(m.state.SelectedIndex, m.state.ViewportOffset, m.state.ViewportHeight, total)
}

// ensureSelectedVisible clamps the cursor to the listing and scrolls it into view
func (m *Model) ensureSelectedVisible() {
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
}
