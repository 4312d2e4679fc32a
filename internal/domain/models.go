package domain

import (
	"strings"
	"time"
)

// Article is one blog post. Articles are immutable once loaded.
type Article struct {
	Slug     string
	Title    string
	Date     time.Time
	ReadTime int // minutes
	Tags     []string
	Excerpt  string
	Body     string // markdown
}

// Key returns the article slug.
func (a Article) Key() string { return a.Slug }

// SearchText returns title, excerpt and tags, the fields the blog search covers.
func (a Article) SearchText() []string {
	fields := make([]string, 0, 2+len(a.Tags))
	fields = append(fields, a.Title, a.Excerpt)
	return append(fields, a.Tags...)
}

// Labels returns the article tags.
func (a Article) Labels() []string { return a.Tags }

// Repository is a public code repository of the configured GitHub owner.
// Description and Language are empty when upstream reported null.
type Repository struct {
	ID          int64
	Name        string
	Description string
	URL         string
	Language    string
	Stars       int
	Forks       int
	UpdatedAt   time.Time
	Topics      []string
}

// Key returns the repository name, unique per owner.
func (r Repository) Key() string { return r.Name }

// SearchText returns name, description and language.
func (r Repository) SearchText() []string {
	return []string{r.Name, r.Description, r.Language}
}

// Labels returns the repository topics. Language is not a label.
func (r Repository) Labels() []string { return r.Topics }

// DefaultLanguageColor is used for languages missing from the palette.
const DefaultLanguageColor = "#9333ea"

var languageColors = map[string]string{
	"javascript": "#f7df1e",
	"typescript": "#3178c6",
	"python":     "#3776ab",
	"java":       "#ed8b00",
	"c++":        "#00599c",
	"go":         "#00add8",
	"rust":       "#000000",
	"html":       "#e34c26",
	"css":        "#1572b6",
	"vue":        "#4fc08d",
	"react":      "#61dafb",
	"shell":      "#89e051",
	"php":        "#777bb4",
	"ruby":       "#cc342d",
	"swift":      "#fa7343",
	"kotlin":     "#7f52ff",
	"dart":       "#00b4ab",
	"c#":         "#239120",
	"c":          "#a8b9cc",
	"r":          "#276dc3",
}

// LanguageColor returns the hex color used to badge a language.
func LanguageColor(language string) string {
	if c, ok := languageColors[strings.ToLower(language)]; ok {
		return c
	}
	return DefaultLanguageColor
}
