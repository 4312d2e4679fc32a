package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"folio/internal/domain"
)

// RowHeight is the number of terminal lines one list item occupies
const RowHeight = 3

const dateLayout = "2006-01-02"

// RepositoryRenderer handles rendering of repository items
type RepositoryRenderer struct {
	styles *Styles
}

// NewRepositoryRenderer creates a new repository renderer
func NewRepositoryRenderer(styles *Styles) *RepositoryRenderer {
	return &RepositoryRenderer{styles: styles}
}

// RenderRepository renders a repository as RowHeight lines: name, description
// and a meta line with language, stars, forks, update date and topics
func (r *RepositoryRenderer) RenderRepository(repo domain.Repository, isSelected bool, query string, width int) []string {
	textWidth := width - 2
	if textWidth < 10 {
		textWidth = 10
	}

	name := fit(repo.Name, textWidth)
	nameStyle := r.styles.ItemTitle
	if isSelected {
		nameStyle = nameStyle.Background(lipgloss.Color("238"))
	}
	name = highlightMatch(name, query, nameStyle.Foreground(lipgloss.Color("226")), nameStyle)

	desc := repo.Description
	descStyle := r.styles.Excerpt
	if desc == "" {
		desc = "No description"
		descStyle = r.styles.Dim
	}
	desc = highlightMatch(fit(desc, textWidth), query, r.styles.Highlight, descStyle)

	return []string{
		cursor(r.styles, isSelected) + name,
		"  " + desc,
		"  " + fit(r.metaLine(repo), textWidth),
	}
}

func (r *RepositoryRenderer) metaLine(repo domain.Repository) string {
	var parts []string
	if repo.Language != "" {
		parts = append(parts, LanguageStyle(repo.Language).Render("● "+repo.Language))
	}
	parts = append(parts, r.styles.Meta.Render(fmt.Sprintf("★ %d  ⑂ %d", repo.Stars, repo.Forks)))
	if !repo.UpdatedAt.IsZero() {
		parts = append(parts, r.styles.Meta.Render("updated "+repo.UpdatedAt.Format(dateLayout)))
	}
	if len(repo.Topics) > 0 {
		parts = append(parts, r.styles.Tag.Render(hashTags(repo.Topics)))
	}
	return strings.Join(parts, "  ")
}

func cursor(styles *Styles, isSelected bool) string {
	if isSelected {
		return styles.Cursor.Render("▌ ")
	}
	return "  "
}

// fit truncates s to width terminal cells with an ellipsis
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

func hashTags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, " ")
}

// highlightMatch highlights the first case-insensitive occurrence of query
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return normalStyle.Render(text)
	}

	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	// Byte offsets are only valid when lowering kept the lengths
	if len(lowerText) != len(text) || len(lowerQuery) != len(query) {
		return normalStyle.Render(text)
	}

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
