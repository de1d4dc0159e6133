package collection

import (
	"sort"
	"strconv"

	"github.com/five82/approvals/internal/sessions"
)

// Option is one entry of a single-choice filter control.
//
// Value is positional ("1", "2", ...) and says nothing about the field;
// Label carries the field value and is what records are matched against.
type Option struct {
	Label string
	Value string
}

// AllStatus is the status facet sentinel meaning "no status filter".
var AllStatus = Option{Label: "All Status", Value: "0"}

// BuildFacets collects the distinct values of field across records, sorts
// them, and prepends defaultOption. Unknown fields yield only the default.
func BuildFacets(records []sessions.Record, field ColumnID, defaultOption Option) []Option {
	options := []Option{defaultOption}
	col, ok := LookupColumn(field)
	if !ok {
		return options
	}

	seen := make(map[string]struct{}, len(records))
	values := make([]string, 0, len(records))
	for _, r := range records {
		v := col.Value(r)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)

	for i, v := range values {
		options = append(options, Option{Label: v, Value: strconv.Itoa(i + 1)})
	}
	return options
}

// StatusFacets builds the status filter options.
func StatusFacets(records []sessions.Record) []Option {
	return BuildFacets(records, ColumnStatus, AllStatus)
}

// FacetFor finds the option whose label matches label. It is used to carry a
// selection over to a rebuilt facet list, where positional values may have
// shifted. The first option (the sentinel) is returned when nothing matches.
func FacetFor(options []Option, label string) Option {
	for _, o := range options {
		if o.Label == label {
			return o
		}
	}
	if len(options) > 0 {
		return options[0]
	}
	return AllStatus
}
