package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/five82/approvals/internal/collection"
	"github.com/five82/approvals/internal/sessions"
)

func TestFitWidths(t *testing.T) {
	cols := collection.DefaultColumns().Visible()

	for _, total := range []int{60, 120, 200} {
		widths := fitWidths(cols, total)
		used := sum(widths) + markerWidth + len(cols) - 1
		if total >= 60 && used > total {
			t.Fatalf("fitWidths(%d) uses %d cells", total, used)
		}
		for i, w := range widths {
			if w < minColWidth {
				t.Fatalf("fitWidths(%d)[%d] = %d, below minimum", total, i, w)
			}
		}
	}

	// With room to spare the flexible justification column takes it.
	widths := fitWidths(cols, 200)
	for i, c := range cols {
		if c.ID == collection.ColumnJustification && widths[i] <= minFlexWidth {
			t.Fatalf("justification width = %d, want > %d", widths[i], minFlexWidth)
		}
	}
	if used := sum(widths) + markerWidth + len(cols) - 1; used != 200 {
		t.Fatalf("fitWidths(200) uses %d cells, want 200", used)
	}
}

func TestCellLines(t *testing.T) {
	if got := cellLines("a long justification text", 10, false); len(got) != 1 || runewidth.StringWidth(got[0]) != 10 {
		t.Fatalf("cellLines without wrap = %q", got)
	}

	got := cellLines("a long reason text here", 12, true)
	if len(got) < 2 {
		t.Fatalf("cellLines with wrap = %q, want several lines", got)
	}
	for _, line := range got {
		if runewidth.StringWidth(line) != 12 {
			t.Fatalf("wrapped line %q width = %d, want 12", line, runewidth.StringWidth(line))
		}
	}
	if joined := strings.Join(strings.Fields(strings.Join(got, " ")), " "); joined != "a long reason text here" {
		t.Fatalf("wrapped text lost words: %q", joined)
	}
}

func TestBuildRowPadsShortColumns(t *testing.T) {
	cols := collection.ParseColumnSet([]string{"email", "justification"}).Visible()
	rec := sessions.Record{Email: "a@b.c", Justification: "one two three four five six"}
	row := buildRow(rec, cols, []int{8, 10}, true)
	if len(row.lines) < 2 {
		t.Fatalf("row lines = %d, want wrapped justification", len(row.lines))
	}
	if row.lines[1][0] != strings.Repeat(" ", 8) {
		t.Fatalf("second line email cell = %q, want blank", row.lines[1][0])
	}
}

func TestRenderTableKeepsCursorVisible(t *testing.T) {
	var records []sessions.Record
	for i := 0; i < 10; i++ {
		id := string(rune('a' + i))
		records = append(records, sessions.Record{ID: sessions.ID(id), Email: "user-" + id, Status: "pending"})
	}
	m, _ := loaded(t, records)
	m.cursor = 9
	out := m.renderTable(120, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("table lines = %d, want 4", len(lines))
	}
	if !strings.Contains(lines[3], "user-j") {
		t.Fatalf("cursor row not visible in %q", lines[3])
	}
	if strings.Contains(out, "user-a") {
		t.Fatalf("first row should have scrolled out of view")
	}
}
