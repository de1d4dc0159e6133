// Package collection is the view engine behind the approvals table.
//
// It turns a loaded list of session records plus a set of user-controlled
// view parameters into the rows that are actually shown. Nothing in this
// package performs I/O or holds locks; every function is a pure
// transformation, which is what lets the TUI and the headless list command
// share it.
//
// # Pipeline
//
//	fetched records
//	      │  Normalize          (ended/revoked/in-progress/scheduled → approved)
//	      ▼
//	authoritative set ──► StatusFacets   (distinct statuses, "All Status" first)
//	      │
//	      │  Project(records, ViewState)
//	      │    Filter      status gate, then case-insensitive text gate
//	      │    SortRecords recency (UpdatedAt desc, stable), then explicit sort
//	      │    Paginate    clamp out-of-range pages to the last page
//	      ▼
//	Projection{Rows, TotalMatched, TotalLoaded, PageIndex, PageCount, State}
//
// # Facet Values
//
// Facet options carry a positional Value ("1", "2", ...) and the field
// value as Label. Matching always compares record fields with Label; the
// positional value shifts whenever the record set changes and must not be
// used as a key. FacetFor re-resolves a selection by label after a refresh.
//
// # Selection
//
// Gate is a small state machine (Idle → Selected → DetailOpen → Selected)
// keyed by (generation, id). Sync drops the selection when the store
// reports a new generation, matching the rule that a refresh invalidates
// whatever was selected before it.
package collection
