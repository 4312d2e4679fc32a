// Package markdown turns article bodies into markup: safe HTML for the web
// surfaces and styled ANSI text for the terminal.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
)

// goldmark omits raw HTML unless html.WithUnsafe is set, so the output is
// safe to embed without further escaping.
var htmlRenderer = goldmark.New()

// HTML renders src to structural HTML. Raw HTML in the source is dropped
// and text is escaped.
func HTML(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := htmlRenderer.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("markdown: rendering html: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Style names accepted by NewTerminalRenderer besides glamour's standard styles.
const StyleAuto = "auto"

// TerminalRenderer renders markdown for a terminal of a given width.
// Renderers are cached per width.
type TerminalRenderer struct {
	style string

	mu    sync.Mutex
	cache map[int]*glamour.TermRenderer
}

// NewTerminalRenderer returns a renderer using a glamour standard style
// ("dark", "light", "notty", ...) or StyleAuto to detect the background.
func NewTerminalRenderer(style string) *TerminalRenderer {
	if style == "" {
		style = StyleAuto
	}
	return &TerminalRenderer{style: style, cache: make(map[int]*glamour.TermRenderer)}
}

// Render word-wraps src at width columns.
func (r *TerminalRenderer) Render(src string, width int) (string, error) {
	if width < 20 {
		width = 20
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.cache[width]
	if !ok {
		styleOpt := glamour.WithStandardStyle(r.style)
		if r.style == StyleAuto {
			styleOpt = glamour.WithAutoStyle()
		}
		var err error
		tr, err = glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
		if err != nil {
			return "", fmt.Errorf("markdown: creating terminal renderer: %w", err)
		}
		r.cache[width] = tr
	}

	out, err := tr.Render(src)
	if err != nil {
		return "", fmt.Errorf("markdown: rendering terminal: %w", err)
	}
	return out, nil
}
