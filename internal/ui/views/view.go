package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/logic"
	"folio/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Page   state.Page

	Spinner       string // current spinner frame, shown while a load is pending
	StatusMessage string
	StatusIsError bool
	SearchPrompt  string
	SearchInput   string // rendered text input, empty outside search mode
	HelpView      string

	// Listing of the mounted page
	Filter        logic.FilterState
	Labels        []string
	SelectedIndex int
	VisibleStart  int
	VisibleEnd    int

	Articles     []domain.Article
	ArticleState logic.ViewState
	ArticleErr   error

	Owner     string
	Repos     []domain.Repository
	RepoState logic.ViewState
	RepoErr   error

	// Article page
	Article     *domain.Article // nil when the slug did not resolve
	ArticleSlug string
	ArticleBody string // rendered viewport
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	repoRender    *RepositoryRenderer
	articleRender *ArticleRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		repoRender:    NewRepositoryRenderer(styles),
		articleRender: NewArticleRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(s ViewState) string {
	if s.Width <= 0 {
		s.Width = 80
	}
	if s.Height <= 0 {
		s.Height = 24
	}
	innerWidth := s.Width - 4 // Main padding

	body := &strings.Builder{}
	body.WriteString(r.renderTitleLine(s, innerWidth))
	body.WriteString("\n\n")

	switch s.Page {
	case state.PageHome:
		body.WriteString(r.renderHome(s, innerWidth))
	case state.PageBlog:
		body.WriteString(r.renderBlog(s, innerWidth))
	case state.PageProjects:
		body.WriteString(r.renderProjects(s, innerWidth))
	case state.PageArticle:
		body.WriteString(r.renderArticle(s, innerWidth))
	}

	footer := r.renderFooter(s)

	// Pad so the footer sits on the last line
	currentLines := strings.Count(body.String(), "\n") + 1
	footerLines := strings.Count(footer, "\n") + 1
	availableLines := s.Height - 2 // Main padding
	if pad := availableLines - currentLines - footerLines; pad > 0 {
		body.WriteString(strings.Repeat("\n", pad))
	}
	body.WriteString("\n")
	body.WriteString(footer)

	return r.styles.Main.MaxHeight(s.Height).Render(body.String())
}

// renderTitleLine renders the logo and page tabs with load and filter
// indicators on the right
func (r *Renderer) renderTitleLine(s ViewState, width int) string {
	tabs := []struct {
		page  state.Page
		label string
	}{
		{state.PageHome, "1 Home"},
		{state.PageBlog, "2 Blog"},
		{state.PageProjects, "3 Projects"},
	}

	left := []string{r.styles.Title.Render("folio"), " "}
	for _, t := range tabs {
		active := s.Page == t.page || (s.Page == state.PageArticle && t.page == state.PageBlog)
		if active {
			left = append(left, r.styles.TabActive.Render(t.label))
		} else {
			left = append(left, r.styles.Tab.Render(t.label))
		}
	}
	leftContent := lipgloss.JoinHorizontal(lipgloss.Top, left...)

	var right []string
	if s.Spinner != "" {
		right = append(right, r.styles.Dim.Render(s.Spinner+" Loading"))
	}
	if s.Page == state.PageBlog || s.Page == state.PageProjects {
		if s.Filter.Query != "" {
			right = append(right, r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", s.Filter.Query)))
		}
		if s.Filter.Label != "" {
			right = append(right, r.styles.Filter.Render(fmt.Sprintf("[Tag: %s]", s.Filter.Label)))
		}
	}
	if len(right) == 0 {
		return leftContent
	}

	rightContent := strings.Join(right, "  ")
	padding := width - lipgloss.Width(leftContent) - lipgloss.Width(rightContent)
	if padding < 2 {
		padding = 2
	}
	return leftContent + strings.Repeat(" ", padding) + rightContent
}

func (r *Renderer) renderHome(s ViewState, width int) string {
	b := &strings.Builder{}
	b.WriteString(r.styles.Heading.MarginTop(0).Render(content.IntroTitle))
	b.WriteString("\n")
	b.WriteString(r.styles.Intro.Render(wordwrap.String(content.IntroText, width)))
	b.WriteString("\n")

	b.WriteString(r.styles.Heading.Render("Latest projects"))
	b.WriteString("\n")
	if ph := logic.RepositoryPlaceholder(s.RepoState, s.Owner, s.RepoErr); ph != "" {
		b.WriteString(r.placeholder(ph, width))
	} else {
		for _, repo := range s.Repos {
			b.WriteString(strings.Join(r.repoRender.RenderRepository(repo, false, "", width), "\n"))
			b.WriteString("\n")
		}
	}

	b.WriteString(r.styles.Heading.Render("Latest articles"))
	b.WriteString("\n")
	if ph := logic.ArticlePlaceholder(s.ArticleState, s.ArticleErr); ph != "" {
		b.WriteString(r.placeholder(ph, width))
	} else {
		for _, a := range s.Articles {
			b.WriteString(strings.Join(r.articleRender.RenderArticle(a, false, "", "", width), "\n"))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderBlog(s ViewState, width int) string {
	b := &strings.Builder{}
	r.writeSearchAndLabels(b, s, "Tags", width)

	if ph := logic.ArticlePlaceholder(s.ArticleState, s.ArticleErr); ph != "" {
		b.WriteString(r.placeholder(ph, width))
		return b.String()
	}

	rows := make([][]string, 0, s.VisibleEnd-s.VisibleStart)
	for i := s.VisibleStart; i < s.VisibleEnd && i < len(s.Articles); i++ {
		rows = append(rows, r.articleRender.RenderArticle(s.Articles[i], i == s.SelectedIndex, s.Filter.Query, s.Filter.Label, width))
	}
	b.WriteString(r.renderRows(rows, s, len(s.Articles)))
	return b.String()
}

func (r *Renderer) renderProjects(s ViewState, width int) string {
	b := &strings.Builder{}
	r.writeSearchAndLabels(b, s, "Topics", width)

	if ph := logic.RepositoryPlaceholder(s.RepoState, s.Owner, s.RepoErr); ph != "" {
		b.WriteString(r.placeholder(ph, width))
		return b.String()
	}

	rows := make([][]string, 0, s.VisibleEnd-s.VisibleStart)
	for i := s.VisibleStart; i < s.VisibleEnd && i < len(s.Repos); i++ {
		rows = append(rows, r.repoRender.RenderRepository(s.Repos[i], i == s.SelectedIndex, s.Filter.Query, width))
	}
	b.WriteString(r.renderRows(rows, s, len(s.Repos)))
	return b.String()
}

func (r *Renderer) renderArticle(s ViewState, width int) string {
	if s.Article == nil && s.ArticleState == logic.Uninitialized {
		return r.placeholder("Loading article...", width)
	}
	if s.Article == nil {
		b := &strings.Builder{}
		b.WriteString(r.styles.Heading.MarginTop(0).Render("Article not found"))
		b.WriteString("\n\n")
		b.WriteString(r.placeholder(fmt.Sprintf("There is no article %q.", s.ArticleSlug), width))
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render("esc back to blog"))
		return b.String()
	}
	return r.articleRender.RenderHeader(*s.Article, width) + "\n\n" + s.ArticleBody
}

// writeSearchAndLabels renders the search prompt (or the active query) and the
// label bar above a listing
func (r *Renderer) writeSearchAndLabels(b *strings.Builder, s ViewState, title string, width int) {
	if s.SearchInput != "" {
		b.WriteString(r.styles.Prompt.Render(s.SearchPrompt))
		b.WriteString(s.SearchInput)
		b.WriteString("\n")
	}
	if len(s.Labels) == 0 {
		return
	}

	parts := []string{r.styles.Dim.Render(title + ":")}
	if s.Filter.Label == "" {
		parts = append(parts, r.styles.TagActive.Render("all"))
	} else {
		parts = append(parts, r.styles.Tag.Render("all"))
	}
	for _, l := range s.Labels {
		if l == s.Filter.Label {
			parts = append(parts, r.styles.TagActive.Render(l))
		} else {
			parts = append(parts, r.styles.Tag.Render(l))
		}
	}
	b.WriteString(fit(strings.Join(parts, " "), width))
	b.WriteString("\n\n")
}

// renderRows joins item rows with scroll indicators
func (r *Renderer) renderRows(rows [][]string, s ViewState, total int) string {
	var lines []string
	if s.VisibleStart > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above", s.VisibleStart)))
	}
	for _, row := range rows {
		lines = append(lines, row...)
	}
	if s.VisibleEnd < total {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below", total-s.VisibleEnd)))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) placeholder(text string, width int) string {
	return r.styles.Placeholder.Render(wordwrap.String(text, width))
}

func (r *Renderer) renderFooter(s ViewState) string {
	var lines []string
	if s.StatusMessage != "" {
		if s.StatusIsError {
			lines = append(lines, r.styles.StatusError.Render(s.StatusMessage))
		} else {
			lines = append(lines, r.styles.Status.Render(s.StatusMessage))
		}
	}
	if s.HelpView != "" {
		lines = append(lines, s.HelpView)
	} else {
		lines = append(lines, r.styles.Help.Render("Press ? for help"))
	}
	return strings.Join(lines, "\n")
}
