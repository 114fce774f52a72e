package ui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles shared by the viewer models, built from
// a catppuccin flavor.
type Styles struct {
	Title   lipgloss.Style
	Help    lipgloss.Style
	Error   lipgloss.Style
	Message lipgloss.Style

	Added   lipgloss.Style
	Removed lipgloss.Style
	Context lipgloss.Style
	Gutter  lipgloss.Style
	FoldBar lipgloss.Style

	Marker      lipgloss.Style
	OursBlock   lipgloss.Style
	TheirsBlock lipgloss.Style
	Resolved    lipgloss.Style
	Unresolved  lipgloss.Style
	Selected    lipgloss.Style
}

// NewStyles builds the style set for the named catppuccin flavor. Unknown
// names fall back to mocha.
func NewStyles(theme string) Styles {
	fl := catppuccin.Mocha
	switch theme {
	case "latte":
		fl = catppuccin.Latte
	case "frappe":
		fl = catppuccin.Frappe
	case "macchiato":
		fl = catppuccin.Macchiato
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Mauve().Hex)).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Overlay1().Hex)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Red().Hex)).
			Bold(true),

		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Yellow().Hex)),

		Added: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Green().Hex)),

		Removed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Red().Hex)),

		Context: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Subtext0().Hex)),

		Gutter: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Overlay0().Hex)),

		FoldBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Sky().Hex)).
			Italic(true),

		Marker: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Peach().Hex)).
			Bold(true),

		OursBlock: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Green().Hex)),

		TheirsBlock: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Blue().Hex)),

		Resolved: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Green().Hex)),

		Unresolved: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Red().Hex)),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Text().Hex)).
			Bold(true).
			Underline(true),
	}
}
