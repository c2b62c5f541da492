// Package ui provides the terminal presentation pieces of the generator:
// a lipgloss theme, TTY detection and the dependency install spinner.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette colors shared by the CLI output and the prompt theme.
const (
	ColorPrimary   = "#DD1B16" // Angular red
	ColorSecondary = "#7B61FF"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorMuted     = "#6B7280"
	ColorText      = "#E5E7EB"
)

// ThemeConfig selects how the theme renders.
type ThemeConfig struct {
	NoColor bool
}

// Colors holds the palette of a Theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme bundles the palette and the derived lipgloss styles.
type Theme struct {
	NoColor bool
	Colors  Colors

	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Card    lipgloss.Style
}

// NewTheme builds a Theme. With NoColor every style renders plain text.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{
		NoColor: cfg.NoColor,
		Colors: Colors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Muted:     ColorMuted,
		},
	}

	if cfg.NoColor {
		plain := lipgloss.NewStyle()
		t.Title, t.Success, t.Warning, t.Error, t.Muted = plain, plain, plain, plain, plain
		t.Card = plain.PaddingLeft(2)
		return t
	}

	t.Title = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary)).Bold(true)
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Bold(true)
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	t.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		Padding(0, 2)
	return t
}
