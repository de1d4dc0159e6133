package collection

import (
	"testing"

	"github.com/five82/approvals/internal/sessions"
)

func sampleRecord() sessions.Record {
	return sessions.Record{
		ID:            "abc-123",
		Email:         "Jane.Doe@example.com",
		AccountName:   "Production",
		Role:          "AdminAccess",
		StartTime:     "2024-01-02T09:00:00Z",
		Duration:      4,
		Justification: "Investigate INC-42 outage",
		Status:        "pending",
		UpdatedAt:     "2024-01-02T08:00:00Z",
	}
}

func TestMatchesTextAcrossSearchableFields(t *testing.T) {
	r := sampleRecord()
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"id", "ABC-1", true},
		{"email case-insensitive", "jane.doe", true},
		{"account", "product", true},
		{"role", "adminacc", true},
		{"duration with unit", "4 hours", true},
		{"justification", "inc-42", true},
		{"status", "PEND", true},
		{"start time is not searched", "2024-01-02", false},
		{"hyphen in id", "-", true},
		{"no hit", "zzz", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Matches(r, AllStatus, tc.text); got != tc.want {
				t.Fatalf("Matches(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestMatchesAbsentApproverIsSkipped(t *testing.T) {
	r := sessions.Record{ID: "1", Status: "pending"}
	if Matches(r, AllStatus, "-") {
		t.Fatalf("absent approver matched the placeholder text")
	}
	r.Approver = "boss@example.com"
	if !Matches(r, AllStatus, "boss") {
		t.Fatalf("approver not searched")
	}
}

func TestMatchesStatusGateUsesLabel(t *testing.T) {
	records := Normalize(exampleRecords())
	options := StatusFacets(records)
	approved := FacetFor(options, "approved")

	if !Matches(records[0], approved, "") {
		t.Fatalf("approved record did not match approved facet")
	}
	if Matches(records[1], approved, "") {
		t.Fatalf("pending record matched approved facet")
	}

	// A facet with the right label but an unrelated positional value still matches.
	if !Matches(records[1], Option{Label: "pending", Value: "99"}, "") {
		t.Fatalf("status gate compared against Value instead of Label")
	}
}

func TestMatchesDefaultSentinelExcludesNothing(t *testing.T) {
	statuses := []string{"approved", "pending", "denied", "", "unknown"}
	for _, s := range statuses {
		r := sessions.Record{ID: sessions.ID(s + "-id"), Status: s}
		if !Matches(r, AllStatus, "") {
			t.Fatalf("Matches(status=%q, AllStatus, \"\") = false", s)
		}
	}
}

func TestMatchesImpliesStatusEquality(t *testing.T) {
	records := []sessions.Record{
		{ID: "1", Status: "approved", Email: "x@example.com"},
		{ID: "2", Status: "pending", Email: "x@example.com"},
		{ID: "3", Status: "denied", Email: "y@example.com"},
	}
	for _, facet := range StatusFacets(records)[1:] {
		for _, text := range []string{"", "x", "example"} {
			for _, r := range records {
				if Matches(r, facet, text) && r.Status != facet.Label {
					t.Fatalf("record %s matched facet %q with status %q", r.ID, facet.Label, r.Status)
				}
			}
		}
	}
}

func TestFilterExampleScenario(t *testing.T) {
	records := Normalize(exampleRecords())
	got := Filter(records, AllStatus, "pend")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("Filter(\"pend\") = %#v, want only id 2", got)
	}
}
