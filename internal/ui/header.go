package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/approvals/internal/collection"
	"github.com/five82/approvals/internal/notify"
)

// renderMain renders the full screen: header, command bar, filter line,
// notices, table and footer.
func (m Model) renderMain() string {
	top := []string{
		m.renderHeader(),
		m.renderCommandBar(),
		m.renderFilterBar(),
	}
	top = append(top, m.renderNotices()...)
	footer := m.renderFooter()

	contentHeight := m.height - len(top) - 1
	if contentHeight < 1 {
		contentHeight = 1
	}

	var b strings.Builder
	b.WriteString(strings.Join(top, "\n"))
	b.WriteString("\n")
	b.WriteString(m.renderContent(contentHeight))
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

// renderContent renders the table or the matching empty state.
func (m Model) renderContent(height int) string {
	switch m.projection.State {
	case collection.StateEmpty:
		return m.renderEmptyState(height)
	case collection.StateNoMatch:
		return m.renderNoMatch(height)
	default:
		return m.renderTable(m.width, height)
	}
}

// renderHeader renders the title bar with counter and refresh status.
func (m Model) renderHeader() string {
	bg := m.theme.bar()
	styles := bg.styles

	parts := []string{
		bg.text("approvals", styles.Logo),
		bg.text("Requests", styles.Text.Bold(true)) + bg.gap(1) +
			bg.text(m.projection.Counter(m.gate.Count()), styles.MutedText),
	}

	if m.view.Status != collection.AllStatus {
		parts = append(parts, bg.text("status", styles.FaintText)+bg.gap(1)+
			bg.text(m.view.Status.Label, styles.AccentText))
	}

	switch {
	case m.loading():
		parts = append(parts, bg.text(m.spinner.View()+" Fetching requests", styles.WarningText))
	case m.snapshot.LastError != nil:
		label := classifyFetchError(m.snapshot.LastError)
		if m.snapshot.IsOffline() {
			label = "OFFLINE"
		}
		parts = append(parts, bg.text(label, styles.DangerText))
	}

	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, bg.text("updated "+m.snapshot.LastUpdated.Format("15:04:05"), styles.FaintText))
	}

	return bg.render(m.width, lipgloss.Color(m.theme.Text), parts)
}

// classifyFetchError maps common transport errors to a short label.
func classifyFetchError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "UNREACHABLE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case strings.Contains(msg, "no such file"):
		return "SOURCE MISSING"
	default:
		return "FETCH FAILED"
	}
}

// renderCommandBar renders the key hints bar. Disabled actions are faint.
func (m Model) renderCommandBar() string {
	bg := m.theme.bar()
	styles := bg.styles

	type cmd struct {
		key, desc string
		enabled   bool
	}
	commands := []cmd{
		{"/", "Find", true},
		{"s", "Status", len(m.facets) > 1},
		{"space", "Select", len(m.projection.Rows) > 0},
		{"enter", "Details", m.gate.State() != collection.Idle},
		{"r", "Refresh", !m.loading()},
		{"d", "Download", m.canExport()},
		{"z", fmt.Sprintf("%d Requests", m.view.PageSize), true},
		{"?", "More", true},
	}

	colon := bg.text(":", styles.FaintText)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		keyStyle, descStyle := styles.AccentText, styles.MutedText
		if !c.enabled {
			keyStyle, descStyle = styles.FaintText, styles.FaintText
		}
		segments = append(segments, bg.text(c.key, keyStyle)+colon+bg.text(c.desc, descStyle))
	}

	segments = append(segments,
		bg.text("T", styles.AccentText)+colon+bg.text(m.theme.Name, styles.FaintText))

	return bg.render(m.width, lipgloss.Color(m.theme.Text), segments)
}

// renderFilterBar renders the text filter input and the active status facet.
func (m Model) renderFilterBar() string {
	styles := m.theme.Styles()
	input := m.filterInput.View()
	if !m.filterActive && m.view.Filter == "" {
		input = styles.FaintText.Render("/ Find requests")
	}
	facet := styles.MutedText.Render("[" + m.view.Status.Label + "]")
	return lipgloss.NewStyle().Padding(0, 1).Width(m.width).Render(input + "  " + facet)
}

// renderNotices renders one line per notice.
func (m Model) renderNotices() []string {
	if len(m.notices) == 0 {
		return nil
	}
	styles := m.theme.Styles()
	lines := make([]string, 0, len(m.notices))
	for _, n := range m.notices {
		style := styles.InfoText
		switch n.Level {
		case notify.LevelError:
			style = styles.DangerText
		case notify.LevelSuccess:
			style = styles.SuccessText
		}
		text := n.Header
		if n.Message != "" {
			text += ": " + n.Message
		}
		text = truncate(text, max(1, m.width-8))
		lines = append(lines, lipgloss.NewStyle().Padding(0, 1).Render(
			style.Render(text)+"  "+styles.FaintText.Render("x:dismiss")))
	}
	return lines
}

// renderFooter renders pagination, sort and wrap state.
func (m Model) renderFooter() string {
	bg := m.theme.bar()
	styles := bg.styles

	parts := []string{
		bg.text(fmt.Sprintf("Page %d of %d", m.projection.PageIndex+1, m.projection.PageCount), styles.Text),
		bg.text(fmt.Sprintf("%d Requests", m.view.PageSize), styles.MutedText),
	}
	if !m.view.Sort.IsZero() {
		if col, ok := collection.LookupColumn(m.view.Sort.Column); ok {
			parts = append(parts, bg.text("sort "+col.Header+" "+sortArrow(m.view.Sort), styles.MutedText))
		}
	}
	if m.view.WrapLines {
		parts = append(parts, bg.text("wrap", styles.MutedText))
	}
	if m.exportPath != "" && m.canExport() {
		parts = append(parts, bg.text("→ "+truncateMiddle(m.exportPath, 40), styles.FaintText))
	}
	return bg.render(m.width, lipgloss.Color(m.theme.Muted), parts)
}

// renderEmptyState renders the nothing-loaded message.
func (m Model) renderEmptyState(height int) string {
	styles := m.theme.Styles()
	var msg string
	if m.loading() {
		msg = styles.WarningText.Render(m.spinner.View() + " Fetching requests")
	} else {
		msg = lipgloss.JoinVertical(lipgloss.Center,
			styles.Text.Bold(true).Render("No requests"),
			styles.MutedText.Render("No requests to display."),
		)
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
}

// renderNoMatch renders the filtered-to-nothing message with its action.
func (m Model) renderNoMatch(height int) string {
	styles := m.theme.Styles()
	msg := lipgloss.JoinVertical(lipgloss.Center,
		styles.Text.Bold(true).Render("No matches"),
		styles.MutedText.Render("Your search didn't return any records."),
		"",
		styles.AccentText.Render("c")+styles.MutedText.Render(":Clear filter"),
	)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
}

func sortArrow(s collection.SortSpec) string {
	if s.Descending {
		return "▼"
	}
	return "▲"
}
