package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"folio/internal/domain"
)

// ArticleRenderer handles rendering of article items and the article header
type ArticleRenderer struct {
	styles *Styles
}

// NewArticleRenderer creates a new article renderer
func NewArticleRenderer(styles *Styles) *ArticleRenderer {
	return &ArticleRenderer{styles: styles}
}

// RenderArticle renders an article as RowHeight lines: title, meta and the
// first line of the wrapped excerpt. activeTag is emphasized among the tags.
func (r *ArticleRenderer) RenderArticle(a domain.Article, isSelected bool, query, activeTag string, width int) []string {
	textWidth := width - 2
	if textWidth < 10 {
		textWidth = 10
	}

	titleStyle := r.styles.ItemTitle
	if isSelected {
		titleStyle = titleStyle.Background(lipgloss.Color("238"))
	}
	title := highlightMatch(fit(a.Title, textWidth), query, titleStyle.Foreground(lipgloss.Color("226")), titleStyle)

	excerpt := firstLine(wordwrap.String(a.Excerpt, textWidth))

	return []string{
		cursor(r.styles, isSelected) + title,
		"  " + r.metaLine(a, activeTag),
		"  " + highlightMatch(fit(excerpt, textWidth), query, r.styles.Highlight, r.styles.Excerpt),
	}
}

// RenderHeader renders the title block of the article view
func (r *ArticleRenderer) RenderHeader(a domain.Article, width int) string {
	var b strings.Builder
	b.WriteString(r.styles.Heading.MarginTop(0).Render(wordwrap.String(a.Title, width)))
	b.WriteString("\n")
	b.WriteString(r.metaLine(a, ""))
	return b.String()
}

// MetaText is the plain meta line, shared with the pager header
func MetaText(a domain.Article) string {
	parts := []string{a.Date.Format(dateLayout), fmt.Sprintf("%d min read", a.ReadTime)}
	if len(a.Tags) > 0 {
		parts = append(parts, hashTags(a.Tags))
	}
	return strings.Join(parts, " · ")
}

func (r *ArticleRenderer) metaLine(a domain.Article, activeTag string) string {
	meta := r.styles.Meta.Render(fmt.Sprintf("%s · %d min read", a.Date.Format(dateLayout), a.ReadTime))
	if len(a.Tags) == 0 {
		return meta
	}
	tags := make([]string, len(a.Tags))
	for i, t := range a.Tags {
		if t == activeTag {
			tags[i] = r.styles.TagActive.Render("#" + t)
		} else {
			tags[i] = r.styles.Tag.Render("#" + t)
		}
	}
	return meta + r.styles.Meta.Render(" · ") + strings.Join(tags, " ")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
