package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// helpStyles themes the bubbles help model.
func (t Theme) helpStyles() help.Styles {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
	return help.Styles{
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		Ellipsis:       sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	h := m.help
	h.Styles = m.theme.helpStyles()
	h.ShowAll = true
	h.FullSeparator = "    "

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(h.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Columns: " + columnKeyLegend()))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		MaxWidth(max(20, m.width))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// columnKeyLegend lists the number keys that toggle each column.
func columnKeyLegend() string {
	cols := selectableColumns()
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = string(rune('1'+i)) + " " + c.Header
	}
	return strings.Join(parts, ", ")
}
