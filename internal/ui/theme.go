package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named color palette. Status badge colors are derived from the
// semantic roles, so a palette only lists each hue once.
type Theme struct {
	Name string

	Background    string
	Surface       string
	Selection     string
	SelectionText string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

var themeOrder = []Theme{
	{
		// https://github.com/EdenEast/nightfox.nvim
		Name:       "Nightfox",
		Background: "#131a24", Surface: "#192330",
		Selection: "#2b3b51", SelectionText: "#cdcecf",
		Text: "#cdcecf", Muted: "#738091", Faint: "#71839b",
		Accent: "#719cd6", Success: "#81b29a", Warning: "#dbc074", Danger: "#c94f6d", Info: "#63cdcf",
	},
	{
		// https://github.com/rebelot/kanagawa.nvim
		Name:       "Kanagawa",
		Background: "#16161D", Surface: "#1F1F28",
		Selection: "#2D4F67", SelectionText: "#DCD7BA",
		Text: "#DCD7BA", Muted: "#C8C093", Faint: "#727169",
		Accent: "#7E9CD8", Success: "#98BB6C", Warning: "#E6C384", Danger: "#E46876", Info: "#7FB4CA",
	},
	{
		// Tailwind slate and sky
		Name:       "Slate",
		Background: "#020617", Surface: "#0f172a",
		Selection: "#0284c7", SelectionText: "#f8fafc",
		Text: "#f1f5f9", Muted: "#94a3b8", Faint: "#64748b",
		Accent: "#38bdf8", Success: "#22c55e", Warning: "#f59e0b", Danger: "#dc2626", Info: "#06b6d4",
	},
}

// GetTheme returns the theme called name, or the first theme.
func GetTheme(name string) Theme {
	for _, t := range themeOrder {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return themeOrder[0]
}

// NextTheme returns the name of the theme after current, wrapping around.
func NextTheme(current string) string {
	for i, t := range themeOrder {
		if t.Name == current {
			return themeOrder[(i+1)%len(themeOrder)].Name
		}
	}
	return themeOrder[0].Name
}

// StatusColor maps a normalized request status onto the palette.
func (t Theme) StatusColor(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved":
		return t.Success
	case "pending":
		return t.Warning
	case "denied", "rejected":
		return t.Danger
	case "revoked":
		return t.Info
	default:
		return t.Faint
	}
}

// Styles are the text styles built from a Theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style
	Logo        lipgloss.Style

	theme Theme
}

// Styles returns styles with a transparent background.
func (t Theme) Styles() Styles {
	return t.stylesOn("")
}

func (t Theme) stylesOn(bg string) Styles {
	fg := func(color string) lipgloss.Style {
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		if bg != "" {
			s = s.Background(lipgloss.Color(bg))
		}
		return s
	}
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),
		InfoText:    fg(t.Info),
		Logo:        fg(t.Warning).Bold(true),
		theme:       t,
	}
}

// StatusStyle is the filled badge used in the detail view.
func (s Styles) StatusStyle(status string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.theme.Background)).
		Background(lipgloss.Color(s.theme.StatusColor(status))).
		Padding(0, 1)
}

// StatusText colors a status cell in the table.
func (s Styles) StatusText(status string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.theme.StatusColor(status)))
}
