// Package styles centralises the pager's lipgloss palette. The pager is a
// single view, so one theme and a small set of derived styles cover it.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the pager's colour palette.
type Theme struct {
	// Primary colours the document title.
	Primary lipgloss.Color

	// Secondary is the accent for interactive hints.
	Secondary lipgloss.Color

	// Background matches the alt-screen fill.
	Background lipgloss.Color

	// Foreground is the body text colour.
	Foreground lipgloss.Color

	// Muted dims the chrome: separators, progress and scroll position.
	Muted lipgloss.Color

	// Success marks a finished stream.
	Success lipgloss.Color

	// Error marks extraction failures.
	Error lipgloss.Color
}

// DefaultTheme returns the stock palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Background: lipgloss.Color("#1E1E2E"), // Dark gray
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Error:      lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles are the render styles derived from a theme.
type Styles struct {
	theme *Theme

	// Title renders the document name above the text.
	Title lipgloss.Style

	// Normal renders the document text itself.
	Normal lipgloss.Style

	// Muted renders the chrome around the text.
	Muted lipgloss.Style

	// Separator renders the rule between title and text.
	Separator lipgloss.Style

	// Error renders extraction and stream failures.
	Error lipgloss.Style

	// Success renders completion notices.
	Success lipgloss.Style

	// StatusBar renders the bottom bar.
	StatusBar lipgloss.Style

	// Help renders the key hints inside the bar.
	Help lipgloss.Style
}

// NewStyles derives render styles from theme. A nil theme gets the stock
// palette.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Separator: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the stock palette.
func DefaultStyles() *Styles {
	return NewStyles(nil)
}

// Theme returns the palette behind these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
