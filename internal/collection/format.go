package collection

import (
	"strings"
	"time"

	"github.com/five82/approvals/internal/sessions"
)

// timestampLayout renders as "Tue, Jan 2, 03:04 PM".
const timestampLayout = "Mon, Jan 2, 03:04 PM"

// FormatTimestamp renders a raw timestamp for display in local time.
// Values that do not parse are shown as given.
func FormatTimestamp(raw string) string {
	return formatTimestampIn(raw, time.Local)
}

func formatTimestampIn(raw string, loc *time.Location) string {
	t := sessions.ParseTime(raw)
	if t.IsZero() {
		return strings.TrimSpace(raw)
	}
	return t.In(loc).Format(timestampLayout)
}

// compareTimestamps orders two raw timestamps. Parsed times compare by
// instant and rank above values that do not parse; unparsed values compare
// by raw string. The ordering is total, so stable sorts stay deterministic.
func compareTimestamps(a, b string) int {
	ta, tb := sessions.ParseTime(a), sessions.ParseTime(b)
	switch {
	case !ta.IsZero() && !tb.IsZero():
		return ta.Compare(tb)
	case !ta.IsZero():
		return 1
	case !tb.IsZero():
		return -1
	default:
		return strings.Compare(a, b)
	}
}
