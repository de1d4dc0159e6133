package collection

import (
	"fmt"
	"sort"

	"github.com/five82/approvals/internal/sessions"
)

// EmptyState tells the renderer which message to show.
type EmptyState int

const (
	// StateRows means the page has rows.
	StateRows EmptyState = iota
	// StateEmpty means nothing is loaded at all.
	StateEmpty
	// StateNoMatch means records are loaded but filters exclude all of them.
	StateNoMatch
)

func (s EmptyState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateNoMatch:
		return "no-match"
	default:
		return "rows"
	}
}

// Projection is the visible result of applying a ViewState to a record set.
type Projection struct {
	Rows         []sessions.Record
	TotalMatched int
	TotalLoaded  int
	PageIndex    int
	PageCount    int
	PageSize     int
	State        EmptyState
}

// Project filters, orders and paginates records according to view.
// It is a pure function of its inputs; records is not modified.
func Project(records []sessions.Record, view ViewState) Projection {
	matched := Filter(records, view.Status, view.Filter)
	SortRecords(matched, view.Sort)

	size := view.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	rows, index, count := Paginate(matched, size, view.PageIndex)

	p := Projection{
		Rows:         rows,
		TotalMatched: len(matched),
		TotalLoaded:  len(records),
		PageIndex:    index,
		PageCount:    count,
		PageSize:     size,
	}
	switch {
	case len(records) == 0:
		p.State = StateEmpty
	case len(matched) == 0:
		p.State = StateNoMatch
	}
	return p
}

// SortRecords orders records in place: most recently updated first, then
// by the explicit sort when one is set. Both passes are stable, so ties in
// the explicit sort keep recency order and ties in recency keep fetch order.
func SortRecords(records []sessions.Record, by SortSpec) {
	sort.SliceStable(records, func(i, j int) bool {
		return compareTimestamps(records[i].UpdatedAt, records[j].UpdatedAt) > 0
	})
	if by.IsZero() {
		return
	}
	col, ok := LookupColumn(by.Column)
	if !ok {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		c := col.Compare(records[i], records[j])
		if by.Descending {
			return c > 0
		}
		return c < 0
	})
}

// Paginate slices rows into the page at index. An index past the end
// falls back to the last page; the returned index is the one actually used.
// pageCount is at least 1.
func Paginate(rows []sessions.Record, size, index int) (page []sessions.Record, clamped, pageCount int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	pageCount = (len(rows) + size - 1) / size
	if pageCount < 1 {
		pageCount = 1
	}
	if index >= pageCount {
		index = pageCount - 1
	}
	if index < 0 {
		index = 0
	}
	start := index * size
	end := min(start+size, len(rows))
	if start >= end {
		return nil, index, pageCount
	}
	page = make([]sessions.Record, end-start)
	copy(page, rows[start:end])
	return page, index, pageCount
}

// Counter renders the header counter: "(selected/total)" with a selection,
// "(matched/total)" while filters narrow the set, else "(total)".
func (p Projection) Counter(selected int) string {
	switch {
	case selected > 0:
		return fmt.Sprintf("(%d/%d)", selected, p.TotalLoaded)
	case p.TotalMatched != p.TotalLoaded:
		return fmt.Sprintf("(%d/%d)", p.TotalMatched, p.TotalLoaded)
	default:
		return fmt.Sprintf("(%d)", p.TotalLoaded)
	}
}

// Contains reports whether a row with id is on the visible page.
func (p Projection) Contains(id sessions.ID) bool {
	return p.IndexOf(id) >= 0
}

// IndexOf returns the position of id on the visible page, or -1.
func (p Projection) IndexOf(id sessions.ID) int {
	for i, r := range p.Rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}
