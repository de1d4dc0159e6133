package main

import (
	"strconv"
	"strings"
	"testing"

	"github.com/five82/approvals/internal/collection"
	"github.com/five82/approvals/internal/sessions"
)

func TestFormatTable(t *testing.T) {
	got := formatTable(
		[]string{"Requester", "Status"},
		[][]string{
			{"ada@example.com", "approved"},
			{"bo@example.com", "pending"},
		},
	)
	want := "Requester        Status\n" +
		"ada@example.com  approved\n" +
		"bo@example.com   pending\n"
	if got != want {
		t.Fatalf("formatTable =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatTableNormalizesCells(t *testing.T) {
	got := formatTable([]string{"A", "B"}, [][]string{{"one\ttwo", "x\ny"}})
	if strings.Contains(got, "\t") || strings.Count(got, "\n") != 2 {
		t.Fatalf("formatTable = %q, want tabs and newlines flattened", got)
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	got := formatTable([]string{"Name", "X"}, [][]string{{"日本", "1"}, {"ab", "2"}})
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if lines[1] != "日本  1" || lines[2] != "ab    2" {
		t.Fatalf("formatTable = %q, want columns aligned by cell width", got)
	}
}

func TestTruncateTableCell(t *testing.T) {
	long := strings.Repeat("a", 80)
	got := truncateTableCell(long)
	if len(got) != tableCellMaxWidth || !strings.HasSuffix(got, tableCellEllipsis) {
		t.Fatalf("truncateTableCell = %q (%d), want %d cells ending in %q", got, len(got), tableCellMaxWidth, tableCellEllipsis)
	}
	if got := truncateTableCell("short"); got != "short" {
		t.Fatalf("truncateTableCell(short) = %q, want unchanged", got)
	}
}

func TestListFlagsViewState(t *testing.T) {
	facets := []string{"approved", "pending"}
	options := optionsFor(facets)

	cases := []struct {
		name    string
		flags   listFlags
		wantErr string
	}{
		{name: "defaults", flags: listFlags{page: 1, pageSize: 10}},
		{name: "known status", flags: listFlags{page: 1, pageSize: 10, status: "pending"}},
		{name: "unknown status", flags: listFlags{page: 1, pageSize: 10, status: "denied"}, wantErr: `unknown status "denied" (loaded: approved, pending)`},
		{name: "bad page size", flags: listFlags{page: 1, pageSize: 20}, wantErr: "page size must be one of"},
		{name: "bad column", flags: listFlags{page: 1, pageSize: 10, columns: []string{"email", "nope"}}, wantErr: `unknown column "nope"`},
		{name: "bad sort", flags: listFlags{page: 1, pageSize: 10, sortBy: "colour"}, wantErr: `unknown sort column "colour"`},
		{name: "zero page", flags: listFlags{page: 0, pageSize: 10}, wantErr: "page must be >= 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.flags.viewState(options)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("viewState error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("viewState error = %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestListFlagsViewStateApplies(t *testing.T) {
	flags := listFlags{
		filter:   "db",
		status:   "approved",
		sortBy:   "email",
		desc:     true,
		page:     2,
		pageSize: 30,
		columns:  []string{"status", "email"},
		showID:   true,
	}
	view, err := flags.viewState(optionsFor([]string{"approved"}))
	if err != nil {
		t.Fatalf("viewState: %v", err)
	}
	if view.Filter != "db" || view.Status.Label != "approved" {
		t.Fatalf("filters = %q/%q, want db/approved", view.Filter, view.Status.Label)
	}
	if view.Sort.Column != "email" || !view.Sort.Descending {
		t.Fatalf("sort = %+v, want email descending", view.Sort)
	}
	if view.PageIndex != 1 || view.PageSize != 30 {
		t.Fatalf("page = %d/%d, want 1/30", view.PageIndex, view.PageSize)
	}
	if got := strings.Join(view.Columns.Strings(), ","); got != "id,email,status" {
		t.Fatalf("columns = %s, want id,email,status", got)
	}
}

func optionsFor(labels []string) []collection.Option {
	records := make([]sessions.Record, len(labels))
	for i, l := range labels {
		records[i] = sessions.Record{ID: sessions.ID(strconv.Itoa(i)), Status: l}
	}
	return collection.StatusFacets(records)
}
