package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/five82/approvals/internal/sessions"
)

// Header lists the CSV columns in output order.
var Header = []string{
	"id", "email", "accountName", "accountId", "role",
	"startTime", "endTime", "duration", "justification", "ticketNo",
	"approver", "status", "createdAt", "updatedAt",
}

// Encode renders records as CSV with a header row. Fields are written
// exactly as stored; no display formatting is applied.
func Encode(records []sessions.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(row(r)); err != nil {
			return nil, fmt.Errorf("write csv row %s: %w", r.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func row(r sessions.Record) []string {
	return []string{
		r.ID.String(),
		r.Email,
		r.AccountName,
		r.AccountID,
		r.Role,
		r.StartTime,
		r.EndTime,
		r.Duration.String(),
		r.Justification,
		r.TicketNo,
		r.Approver,
		r.Status,
		r.CreatedAt,
		r.UpdatedAt,
	}
}
