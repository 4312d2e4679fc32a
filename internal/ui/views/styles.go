package views

import (
	"github.com/charmbracelet/lipgloss"

	"folio/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	Heading     lipgloss.Style
	Intro       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	Prompt      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	ItemTitle   lipgloss.Style
	Meta        lipgloss.Style
	Excerpt     lipgloss.Style
	Tag         lipgloss.Style
	TagActive   lipgloss.Style
	Placeholder lipgloss.Style
	StatusError lipgloss.Style
	Cursor      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("93")).Padding(0, 1),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141")).
			MarginTop(1),
		Intro:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ItemTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Meta:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Excerpt:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Tag:         lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
		TagActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("97")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
	}
}

// LanguageStyle colors a language name with its palette color
func LanguageStyle(language string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(domain.LanguageColor(language)))
}
