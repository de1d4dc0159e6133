// Package ui implements the terminal interface for browsing access
// requests, built on Bubble Tea.
//
// # Model
//
// Model holds three pieces of derived state:
//
//   - view: an immutable collection.ViewState (filter, status facet, sort,
//     page, page size, visible columns, wrap)
//   - projection: collection.Project(records, view), recomputed after every
//     view change and every new snapshot
//   - gate: the selection and detail lifecycle, tagged with the snapshot
//     generation it was made in
//
// Status facets are rebuilt only when the store generation changes. The
// selected facet is re-resolved by label so a status that still exists
// stays selected across refreshes.
//
// # Data Flow
//
//	Init ──> refreshCmd ──> Refresher.Refresh ──> refreshDoneMsg
//	tick ──> fetchSnapshotCmd ──> snapshotMsg ──> applySnapshot ──> reproject
//	d/y  ──> exportCmd ──> export.Adapter.Run ──> exportDoneMsg ──> notices
//
// The store is read on a fixed tick so refreshes started elsewhere (the
// poller) show up without extra wiring. The refresh key is ignored while a
// refresh is in flight, and the download and copy keys are ignored while no
// records are loaded.
//
// # Files
//
//   - app.go: Model, Update, key handling, messages and commands
//   - header.go: header, command bar, filter bar, notices, footer, empty states
//   - table.go: column width fitting, cell wrapping, row rendering
//   - detail.go: the "Request details" modal
//   - help.go: help overlay built on bubbles/help
//   - keys.go: key bindings
//   - theme.go, bar.go: palettes and background-safe header strips
package ui
