package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/five82/approvals/internal/collection"
	"github.com/five82/approvals/internal/sessions"
)

const (
	markerWidth  = 2 // selection marker column
	minColWidth  = 4
	minFlexWidth = 12
)

// fitWidths assigns a display width to each column so the row fits in
// total cells, including one space between columns and the marker column.
// Flexible columns (Width 0) share whatever is left.
func fitWidths(cols []collection.Column, total int) []int {
	widths := make([]int, len(cols))
	if len(cols) == 0 {
		return widths
	}
	avail := total - markerWidth - (len(cols) - 1)

	flex := 0
	for i, c := range cols {
		if c.Width == 0 {
			flex++
			widths[i] = minFlexWidth
			continue
		}
		widths[i] = c.Width
	}

	// Shrink the widest column until the row fits.
	for sum(widths) > avail {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColWidth {
			break
		}
		widths[widest]--
	}

	// Hand spare cells to flexible columns, or to the last column.
	spare := avail - sum(widths)
	if spare > 0 {
		if flex == 0 {
			widths[len(widths)-1] += spare
		} else {
			share := spare / flex
			extra := spare % flex
			for i, c := range cols {
				if c.Width != 0 {
					continue
				}
				widths[i] += share
				if extra > 0 {
					widths[i]++
					extra--
				}
			}
		}
	}
	return widths
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// cellLines splits a cell into display lines of exactly width cells.
// Without wrapping the cell is a single truncated line.
func cellLines(value string, width int, wrap bool) []string {
	value = strings.Join(strings.Fields(value), " ")
	if !wrap || width <= 0 {
		return []string{fit(value, width)}
	}
	wrapped := strings.Split(wordwrap.String(value, width), "\n")
	out := make([]string, len(wrapped))
	for i, line := range wrapped {
		out[i] = fit(line, width)
	}
	return out
}

// tableRow is one record rendered into equal-height lines of fixed-width
// cells.
type tableRow struct {
	lines [][]string
}

// renderTable renders the current page. When the rows do not fit in height
// the window scrolls to keep the cursor row visible.
func (m Model) renderTable(width, height int) string {
	cols := m.view.Columns.Visible()
	widths := fitWidths(cols, width)
	styles := m.theme.Styles()

	header := m.renderTableHeader(cols, widths)
	body := make([]string, 0, len(m.projection.Rows))
	starts := make([]int, 0, len(m.projection.Rows))

	selectedID, hasSelection := m.gate.SelectedID()
	for i, rec := range m.projection.Rows {
		row := buildRow(rec, cols, widths, m.view.WrapLines)
		marker := "  "
		if hasSelection && rec.ID == selectedID {
			marker = styles.AccentText.Render("●") + " "
		}
		starts = append(starts, len(body))
		for j, line := range row.lines {
			prefix := marker
			if j > 0 {
				prefix = "  "
			}
			body = append(body, m.styleRowLine(prefix, line, rec, cols, i == m.cursor))
		}
	}

	avail := height - 1 // header
	if avail < 1 {
		avail = 1
	}
	start := 0
	if len(body) > avail && m.cursor < len(starts) {
		end := len(body)
		if m.cursor+1 < len(starts) {
			end = starts[m.cursor+1]
		}
		if end > avail {
			start = end - avail
		}
		if start > starts[m.cursor] {
			start = starts[m.cursor]
		}
	}
	stop := min(len(body), start+avail)

	lines := append([]string{header}, body[start:stop]...)
	return strings.Join(lines, "\n")
}

// renderTableHeader renders column headers with a sort indicator.
func (m Model) renderTableHeader(cols []collection.Column, widths []int) string {
	styles := m.theme.Styles()
	cells := make([]string, len(cols))
	for i, c := range cols {
		label := c.Header
		if m.view.Sort.Column == c.ID {
			label += " " + sortArrow(m.view.Sort)
		}
		cells[i] = fit(label, widths[i])
	}
	return styles.AccentText.Bold(true).Render(strings.Repeat(" ", markerWidth) + strings.Join(cells, " "))
}

// buildRow lays out one record. Every line has one cell per column and
// each cell is exactly its column width.
func buildRow(rec sessions.Record, cols []collection.Column, widths []int, wrap bool) tableRow {
	perCol := make([][]string, len(cols))
	height := 1
	for i, c := range cols {
		perCol[i] = cellLines(c.Cell(rec), widths[i], wrap)
		height = max(height, len(perCol[i]))
	}

	lines := make([][]string, height)
	for l := 0; l < height; l++ {
		cells := make([]string, len(cols))
		for i := range cols {
			if l < len(perCol[i]) {
				cells[i] = perCol[i][l]
			} else {
				cells[i] = strings.Repeat(" ", widths[i])
			}
		}
		lines[l] = cells
	}
	return tableRow{lines: lines}
}

// styleRowLine colors one line of a row. The cursor row uses the selection
// colors; elsewhere the status cell takes its status color.
func (m Model) styleRowLine(prefix string, cells []string, rec sessions.Record, cols []collection.Column, cursor bool) string {
	if cursor {
		return prefix + lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.Selection)).
			Foreground(lipgloss.Color(m.theme.SelectionText)).
			Render(strings.Join(cells, " "))
	}

	styles := m.theme.Styles()
	out := make([]string, len(cells))
	for i, cell := range cells {
		if cols[i].ID == collection.ColumnStatus {
			out[i] = styles.StatusText(rec.Status).Render(cell)
			continue
		}
		out[i] = styles.Text.Render(cell)
	}
	return prefix + strings.Join(out, " ")
}
