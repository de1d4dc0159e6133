package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/five82/approvals/internal/collection"
	"github.com/five82/approvals/internal/sessions"
)

const (
	detailTitle      = "Request details"
	detailLabelWidth = 15
	detailMaxWidth   = 90
)

// detailSize returns the modal's outer width and the viewport size inside
// its border and padding.
func (m Model) detailSize() (outer, innerW, innerH int) {
	outer = min(detailMaxWidth, m.width-4)
	if outer < 30 {
		outer = max(10, m.width)
	}
	innerW = max(10, outer-6)        // border + horizontal padding
	innerH = max(3, m.height-4-1-2) // margins, title, border
	return outer, innerW, innerH
}

// updateDetailViewport sizes the detail viewport and fills it with the
// selected record.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	_, w, h := m.detailSize()
	if m.detail.Width == 0 {
		m.detail = viewport.New(w, h)
	}
	m.detail.Width = w
	m.detail.Height = h

	rec, ok := m.gate.Resolve(m.snapshot.Records)
	if !ok {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(m.renderDetailContent(rec, w))
}

// detailField is one label/value line in the detail modal.
type detailField struct {
	label string
	value string
}

// detailFields lists every field of a record in display form.
func detailFields(rec sessions.Record) []detailField {
	return []detailField{
		{"Id", rec.ID.String()},
		{"Requester", rec.Email},
		{"Account", rec.AccountName},
		{"Account Id", rec.AccountID},
		{"Role", rec.Role},
		{"Start time", collection.FormatTimestamp(rec.StartTime)},
		{"End time", collection.FormatTimestamp(rec.EndTime)},
		{"Duration", collection.DurationLabel(rec.Duration)},
		{"Ticket", rec.TicketNo},
		{"Approver", collection.ApproverLabel(rec)},
		{"Status", rec.Status},
		{"Created", collection.FormatTimestamp(rec.CreatedAt)},
		{"Updated", collection.FormatTimestamp(rec.UpdatedAt)},
		{"Justification", rec.Justification},
	}
}

// renderDetailContent renders the record as aligned label/value pairs.
// Long values wrap under the value column.
func (m Model) renderDetailContent(rec sessions.Record, width int) string {
	styles := m.theme.Styles()
	valueWidth := max(10, width-detailLabelWidth-1)
	indent := strings.Repeat(" ", detailLabelWidth+1)

	var b strings.Builder
	for _, f := range detailFields(rec) {
		value := strings.TrimSpace(f.value)
		if value == "" {
			value = "-"
		}
		label := styles.MutedText.Render(padRight(f.label, detailLabelWidth))

		var rendered string
		if f.label == "Status" {
			rendered = styles.StatusStyle(value).Render(titleCase(value))
		} else {
			lines := strings.Split(wordwrap.String(value, valueWidth), "\n")
			for i := range lines {
				lines[i] = styles.Text.Render(lines[i])
			}
			rendered = strings.Join(lines, "\n"+indent)
		}
		b.WriteString(label + " " + rendered + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDetail renders the detail modal centered over the screen.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	outer, _, _ := m.detailSize()

	title := styles.Text.Bold(true).Render(detailTitle)
	hint := styles.FaintText.Render("esc/enter close  j/k scroll")
	body := lipgloss.JoinVertical(lipgloss.Left, title+"  "+hint, "", m.detail.View())

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(0, 2).
		Width(outer).
		Render(body)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
