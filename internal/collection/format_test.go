package collection

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"rfc3339", "2024-01-02T15:04:00Z", "Tue, Jan 2, 03:04 PM"},
		{"morning", "2024-03-09T07:30:00Z", "Sat, Mar 9, 07:30 AM"},
		{"unparseable", " not a date ", "not a date"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatTimestampIn(tc.in, time.UTC); got != tc.want {
				t.Fatalf("formatTimestampIn(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCompareTimestamps(t *testing.T) {
	if compareTimestamps("2024-01-02T00:00:00Z", "2024-01-01T00:00:00Z") <= 0 {
		t.Fatalf("later timestamp should compare greater")
	}
	if compareTimestamps("b", "a") <= 0 {
		t.Fatalf("unparseable values should fall back to string order")
	}
	if compareTimestamps("2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z") != 0 {
		t.Fatalf("equal timestamps should compare equal")
	}
}
