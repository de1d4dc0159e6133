package collection

import (
	"strings"

	"github.com/five82/approvals/internal/sessions"
)

// Matches reports whether r passes the status facet selection and the free
// text filter. The status gate compares against the option label.
func Matches(r sessions.Record, status Option, text string) bool {
	if status != AllStatus && r.Status != status.Label {
		return false
	}
	if text == "" {
		return true
	}
	needle := strings.ToLower(text)
	for _, v := range searchableFields(r) {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// searchableFields lists the string forms scanned by the text filter.
// Absent fields are left out rather than rendered as placeholders.
func searchableFields(r sessions.Record) []string {
	fields := []string{
		r.ID.String(),
		r.Email,
		r.AccountName,
		r.Role,
		DurationLabel(r.Duration),
		r.Justification,
	}
	if r.HasApprover() {
		fields = append(fields, r.Approver)
	}
	return append(fields, r.Status)
}

// Filter returns the records that match, preserving order.
func Filter(records []sessions.Record, status Option, text string) []sessions.Record {
	out := make([]sessions.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, status, text) {
			out = append(out, r)
		}
	}
	return out
}
