// Package content parses articles: markdown files opening with a TOML front
// matter block fenced by "+++" lines.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"folio/internal/domain"
)

//go:embed articles/*.md
var embedded embed.FS

// ErrNoFrontMatter is returned for files that do not open with a "+++" block.
var ErrNoFrontMatter = errors.New("content: missing +++ front matter")

// ErrInvalidSlug is returned for slugs that cannot be a single URL path segment.
var ErrInvalidSlug = errors.New("content: invalid slug")

const fence = "+++"

type frontMatter struct {
	Slug     string         `toml:"slug"`
	Title    string         `toml:"title"`
	Date     toml.LocalDate `toml:"date"`
	ReadTime int            `toml:"read_time"`
	Tags     []string       `toml:"tags"`
	Excerpt  string         `toml:"excerpt"`
}

// Embedded returns the articles compiled into the binary, rooted so that
// files sit at the top level.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "articles")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory exists
	}
	return sub
}

// Parse decodes one article file. name is used for error messages and as
// the slug when the front matter has none.
func Parse(name string, data []byte) (domain.Article, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	if !strings.HasPrefix(text, fence+"\n") {
		return domain.Article{}, fmt.Errorf("%s: %w", name, ErrNoFrontMatter)
	}
	rest := text[len(fence)+1:]
	end := strings.Index(rest, "\n"+fence)
	if end < 0 {
		return domain.Article{}, fmt.Errorf("%s: unterminated front matter: %w", name, ErrNoFrontMatter)
	}
	head := rest[:end]
	body := strings.TrimPrefix(rest[end+1+len(fence):], "\n")

	var fm frontMatter
	if err := toml.Unmarshal([]byte(head), &fm); err != nil {
		return domain.Article{}, fmt.Errorf("%s: decoding front matter: %w", name, err)
	}
	if strings.TrimSpace(fm.Title) == "" {
		return domain.Article{}, fmt.Errorf("%s: front matter has no title", name)
	}

	slug := fm.Slug
	if slug == "" {
		slug = SlugFromName(name)
	}
	if !ValidSlug(slug) {
		return domain.Article{}, fmt.Errorf("%s: %w: %q", name, ErrInvalidSlug, slug)
	}

	var date time.Time
	if fm.Date != (toml.LocalDate{}) {
		date = fm.Date.AsTime(time.UTC)
	}

	return domain.Article{
		Slug:     slug,
		Title:    fm.Title,
		Date:     date,
		ReadTime: fm.ReadTime,
		Tags:     fm.Tags,
		Excerpt:  fm.Excerpt,
		Body:     strings.TrimRight(body, "\n") + "\n",
	}, nil
}

// ValidSlug reports whether slug is usable as one path segment of a URL
// and of an exported file path.
func ValidSlug(slug string) bool {
	return slug != "" && slug != "." && slug != ".." && !strings.ContainsAny(slug, `/\`)
}

// SlugFromName derives a slug from a file name: directory, extension and a
// leading "NN-" ordering prefix are dropped.
func SlugFromName(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	if i := strings.IndexByte(base, '-'); i > 0 && isDigits(base[:i]) {
		base = base[i+1:]
	}
	return base
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
