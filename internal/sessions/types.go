package sessions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateTimeLayout = "2006-01-02 15:04:05"

// ID identifies a session. The API emits either strings or numbers.
type ID string

// UnmarshalJSON accepts JSON strings and numbers.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier as text.
func (id ID) String() string {
	return string(id)
}

// Hours is a session duration measured in hours.
type Hours float64

// UnmarshalJSON accepts numbers, numeric strings and null.
func (h *Hours) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*h = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*h = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("decode duration %q: %w", s, err)
		}
		*h = Hours(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode duration: %w", err)
	}
	*h = Hours(v)
	return nil
}

// String formats the hour count without a trailing ".0".
func (h Hours) String() string {
	return strconv.FormatFloat(float64(h), 'f', -1, 64)
}

// Record is a single access-request session as returned by the API.
type Record struct {
	ID            ID     `json:"id"`
	Email         string `json:"email"`
	AccountName   string `json:"accountName"`
	AccountID     string `json:"accountId,omitempty"`
	Role          string `json:"role"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime,omitempty"`
	Duration      Hours  `json:"duration"`
	Justification string `json:"justification"`
	TicketNo      string `json:"ticketNo,omitempty"`
	Approver      string `json:"approver,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt"`
}

// ListResponse mirrors the envelope form of the sessions endpoint.
type ListResponse struct {
	Items []Record `json:"items"`
}

// ParsedStartTime returns the parsed StartTime timestamp.
func (r Record) ParsedStartTime() time.Time {
	return ParseTime(r.StartTime)
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (r Record) ParsedUpdatedAt() time.Time {
	return ParseTime(r.UpdatedAt)
}

// HasApprover reports whether an approver has been recorded.
func (r Record) HasApprover() bool {
	return strings.TrimSpace(r.Approver) != ""
}

// ParseTime parses the timestamp layouts the API is known to emit.
// Unparseable values yield the zero time.
func ParseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(dateTimeLayout, value, time.Local); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(time.DateOnly, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}

// decodeRecords accepts either a bare JSON array or an {"items": [...]} envelope.
func decodeRecords(data []byte) ([]Record, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty payload")
	}
	if data[0] == '[' {
		var records []Record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var payload ListResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}
