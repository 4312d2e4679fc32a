package viewmodels

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"folio/internal/domain"
	"folio/internal/ui/input/types"
	"folio/internal/ui/logic"
	"folio/internal/ui/state"
	"folio/internal/ui/views"
)

// HomeArticles is how many of the latest articles the home view lists
const HomeArticles = 3

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state       *state.AppState
	collections *state.Collections
	owner       string
	width       int
	height      int
	help        help.Model
	keys        types.KeyMap
	textInput   *textinput.Model
	prompt      string
	spinner     string
	article     *domain.Article
	articleBody string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, collections *state.Collections, owner string, keys types.KeyMap) *ViewModel {
	return &ViewModel{
		state:       appState,
		collections: collections,
		owner:       owner,
		keys:        keys,
		help:        help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetTextInput sets the active text input and its prompt, nil outside text modes
func (vm *ViewModel) SetTextInput(ti *textinput.Model, prompt string) {
	vm.textInput = ti
	vm.prompt = prompt
}

// SetSpinner sets the spinner frame, "" when nothing is loading
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetArticle sets the resolved article and its rendered body viewport
func (vm *ViewModel) SetArticle(a *domain.Article, body string) {
	vm.article = a
	vm.articleBody = body
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(nav *logic.Navigator) views.ViewState {
	articles := vm.collections.Articles
	repos := vm.collections.Repos

	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Page:          vm.state.Page,
		Spinner:       vm.spinner,
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		HelpView:      vm.help.View(vm.keys),
		SelectedIndex: vm.state.SelectedIndex,
		ArticleState:  articles.State(),
		ArticleErr:    articles.Err(),
		Owner:         vm.owner,
		RepoState:     repos.State(),
		RepoErr:       repos.Err(),
		ArticleSlug:   vm.state.ArticleSlug,
	}
	if vm.textInput != nil {
		vs.SearchPrompt = vm.prompt
		vs.SearchInput = vm.textInput.View()
	}
	if nav != nil {
		vs.VisibleStart, vs.VisibleEnd = nav.VisibleRange()
	}

	switch vm.state.Page {
	case state.PageHome:
		vs.Articles = LatestArticles(articles.Source(), HomeArticles)
		vs.Repos = repos.Source()
	case state.PageBlog:
		vs.Articles = articles.View()
		vs.Filter = articles.Filter()
		vs.Labels = articles.Labels()
	case state.PageProjects:
		vs.Repos = repos.View()
		vs.Filter = repos.Filter()
		vs.Labels = repos.Labels()
	case state.PageArticle:
		vs.Article = vm.article
		vs.ArticleBody = vm.articleBody
	}
	return vs
}

// LatestArticles returns up to n articles, newest first. Equal dates keep
// source order.
func LatestArticles(articles []domain.Article, n int) []domain.Article {
	sorted := slices.Clone(articles)
	slices.SortStableFunc(sorted, func(a, b domain.Article) int {
		return cmp.Compare(b.Date.Unix(), a.Date.Unix())
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
