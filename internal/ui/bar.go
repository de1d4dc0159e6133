package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bar paints one-line header and footer strips. ANSI resets between
// separately rendered segments drop the background, so every piece,
// including the spaces between words, is painted explicitly.
type bar struct {
	styles Styles
	bg     lipgloss.Color
}

func (t Theme) bar() bar {
	return bar{styles: t.stylesOn(t.Surface), bg: lipgloss.Color(t.Surface)}
}

// text renders s in style, keeping the bar background under spaces.
func (b bar) text(s string, style lipgloss.Style) string {
	if s == "" {
		return ""
	}
	style = style.Background(b.bg)
	words := strings.Split(s, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, b.gap(1))
}

func (b bar) gap(n int) string {
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// render lays parts out across width with a two-cell gap between them.
func (b bar) render(width int, fg lipgloss.Color, parts []string) string {
	return lipgloss.NewStyle().
		Background(b.bg).
		Foreground(fg).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(parts, b.gap(2)))
}
