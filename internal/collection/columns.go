package collection

import (
	"cmp"
	"strings"

	"github.com/five82/approvals/internal/sessions"
)

// ColumnID names a table column. IDs double as sorting and facet fields.
type ColumnID string

const (
	ColumnSessionID     ColumnID = "id"
	ColumnEmail         ColumnID = "email"
	ColumnAccount       ColumnID = "account"
	ColumnRole          ColumnID = "role"
	ColumnStartTime     ColumnID = "startTime"
	ColumnDuration      ColumnID = "duration"
	ColumnJustification ColumnID = "justification"
	ColumnApprover      ColumnID = "approver"
	ColumnStatus        ColumnID = "status"
)

const absentApproverMarker = "-"

// Column describes how one field is labelled, rendered and ordered.
type Column struct {
	ID     ColumnID
	Header string
	// Value is the plain string form of the field, used for facets.
	Value func(sessions.Record) string
	// Cell is the display form.
	Cell func(sessions.Record) string
	// Compare orders two records by this column.
	Compare func(a, b sessions.Record) int
	// Width is a preferred display width in cells; zero means flexible.
	Width int
	// Selectable columns can be toggled in preferences.
	Selectable bool
}

var columns = []Column{
	{
		ID:      ColumnSessionID,
		Header:  "Id",
		Value:   func(r sessions.Record) string { return r.ID.String() },
		Cell:    func(r sessions.Record) string { return r.ID.String() },
		Compare: func(a, b sessions.Record) int { return strings.Compare(a.ID.String(), b.ID.String()) },
		Width:   8,
	},
	{
		ID:         ColumnEmail,
		Header:     "Requester",
		Value:      func(r sessions.Record) string { return r.Email },
		Cell:       func(r sessions.Record) string { return r.Email },
		Compare:    func(a, b sessions.Record) int { return strings.Compare(a.Email, b.Email) },
		Width:      24,
		Selectable: true,
	},
	{
		ID:         ColumnAccount,
		Header:     "Account",
		Value:      func(r sessions.Record) string { return r.AccountName },
		Cell:       func(r sessions.Record) string { return r.AccountName },
		Compare:    func(a, b sessions.Record) int { return strings.Compare(a.AccountName, b.AccountName) },
		Width:      16,
		Selectable: true,
	},
	{
		ID:         ColumnRole,
		Header:     "Role",
		Value:      func(r sessions.Record) string { return r.Role },
		Cell:       func(r sessions.Record) string { return r.Role },
		Compare:    func(a, b sessions.Record) int { return strings.Compare(a.Role, b.Role) },
		Width:      16,
		Selectable: true,
	},
	{
		ID:         ColumnStartTime,
		Header:     "StartTime",
		Value:      func(r sessions.Record) string { return r.StartTime },
		Cell:       func(r sessions.Record) string { return FormatTimestamp(r.StartTime) },
		Compare:    func(a, b sessions.Record) int { return compareTimestamps(a.StartTime, b.StartTime) },
		Width:      22,
		Selectable: true,
	},
	{
		ID:         ColumnDuration,
		Header:     "Duration",
		Value:      func(r sessions.Record) string { return DurationLabel(r.Duration) },
		Cell:       func(r sessions.Record) string { return DurationLabel(r.Duration) },
		Compare:    func(a, b sessions.Record) int { return cmp.Compare(a.Duration, b.Duration) },
		Width:      10,
		Selectable: true,
	},
	{
		ID:         ColumnJustification,
		Header:     "Justification",
		Value:      func(r sessions.Record) string { return r.Justification },
		Cell:       func(r sessions.Record) string { return r.Justification },
		Compare:    func(a, b sessions.Record) int { return strings.Compare(a.Justification, b.Justification) },
		Selectable: true,
	},
	{
		ID:         ColumnApprover,
		Header:     "Approver",
		Value:      func(r sessions.Record) string { return r.Approver },
		Cell:       ApproverLabel,
		Compare:    func(a, b sessions.Record) int { return strings.Compare(a.Approver, b.Approver) },
		Width:      20,
		Selectable: true,
	},
	{
		ID:         ColumnStatus,
		Header:     "Status",
		Value:      func(r sessions.Record) string { return r.Status },
		Cell:       func(r sessions.Record) string { return r.Status },
		Compare:    func(a, b sessions.Record) int { return strings.Compare(a.Status, b.Status) },
		Width:      10,
		Selectable: true,
	},
}

// Columns returns every column definition in display order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// LookupColumn finds a column by ID.
func LookupColumn(id ColumnID) (Column, bool) {
	for _, c := range columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// DurationLabel renders an hour count with its unit.
func DurationLabel(h sessions.Hours) string {
	return h.String() + " hours"
}

// ApproverLabel renders the approver, or "-" when none is recorded.
func ApproverLabel(r sessions.Record) string {
	if !r.HasApprover() {
		return absentApproverMarker
	}
	return r.Approver
}

// ColumnSet is the ordered set of visible columns. Methods never modify
// the receiver.
type ColumnSet []ColumnID

// DefaultColumns returns every selectable column; the id column is hidden.
func DefaultColumns() ColumnSet {
	set := make(ColumnSet, 0, len(columns))
	for _, c := range columns {
		if c.Selectable {
			set = append(set, c.ID)
		}
	}
	return set
}

// ParseColumnSet builds a set from column IDs, dropping unknown ones and
// duplicates. The result follows display order.
func ParseColumnSet(ids []string) ColumnSet {
	want := make(map[ColumnID]bool, len(ids))
	for _, id := range ids {
		want[ColumnID(strings.TrimSpace(id))] = true
	}
	set := make(ColumnSet, 0, len(ids))
	for _, c := range columns {
		if want[c.ID] {
			set = append(set, c.ID)
		}
	}
	return set
}

// Has reports whether id is visible.
func (s ColumnSet) Has(id ColumnID) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle returns a copy of the set with id flipped. Unknown IDs and the
// last remaining column are left alone so the table never has zero columns.
func (s ColumnSet) Toggle(id ColumnID) ColumnSet {
	if _, ok := LookupColumn(id); !ok {
		return s.clone()
	}
	if s.Has(id) {
		if len(s) == 1 {
			return s.clone()
		}
		out := make(ColumnSet, 0, len(s)-1)
		for _, v := range s {
			if v != id {
				out = append(out, v)
			}
		}
		return out
	}
	ids := make([]string, 0, len(s)+1)
	for _, v := range s {
		ids = append(ids, string(v))
	}
	return ParseColumnSet(append(ids, string(id)))
}

// Visible returns the column definitions for the set, in display order.
func (s ColumnSet) Visible() []Column {
	out := make([]Column, 0, len(s))
	for _, c := range columns {
		if s.Has(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// Strings returns the IDs as plain strings.
func (s ColumnSet) Strings() []string {
	out := make([]string, len(s))
	for i, id := range s {
		out[i] = string(id)
	}
	return out
}

func (s ColumnSet) clone() ColumnSet {
	out := make(ColumnSet, len(s))
	copy(out, s)
	return out
}
