package collection

import "github.com/five82/approvals/internal/sessions"

// StatusApproved is the display status every granted lifecycle collapses to.
const StatusApproved = "approved"

// approvedStatuses lists raw lifecycle statuses that mean the request was
// granted. The API has used both spellings of in-progress.
var approvedStatuses = map[string]struct{}{
	"ended":       {},
	"revoked":     {},
	"in-progress": {},
	"in progress": {},
	"scheduled":   {},
}

// NormalizeStatus maps a raw lifecycle status onto the display taxonomy.
// Unrecognized statuses (pending, denied, ...) are returned unchanged.
func NormalizeStatus(status string) string {
	if _, ok := approvedStatuses[status]; ok {
		return StatusApproved
	}
	return status
}

// Normalize rewrites the status of every record in place and returns the
// same slice. It must run on a freshly fetched set before anything else
// observes it.
func Normalize(records []sessions.Record) []sessions.Record {
	for i := range records {
		records[i].Status = NormalizeStatus(records[i].Status)
	}
	return records
}
