package collection

import "github.com/five82/approvals/internal/sessions"

// GateState is the lifecycle of the row selection and detail surface.
type GateState int

const (
	Idle GateState = iota
	Selected
	DetailOpen
)

func (s GateState) String() string {
	switch s {
	case Selected:
		return "selected"
	case DetailOpen:
		return "detail-open"
	default:
		return "idle"
	}
}

// Gate tracks at most one selected row and whether its detail view is open.
// A selection belongs to the record set generation it was made in.
type Gate struct {
	state      GateState
	generation uint64
	id         sessions.ID
}

// State returns the current lifecycle state.
func (g Gate) State() GateState {
	return g.state
}

// SelectedID returns the selected record ID.
func (g Gate) SelectedID() (sessions.ID, bool) {
	if g.state == Idle {
		return "", false
	}
	return g.id, true
}

// Count returns the number of selected rows (0 or 1).
func (g Gate) Count() int {
	if g.state == Idle {
		return 0
	}
	return 1
}

// DetailVisible reports whether the detail surface is showing.
func (g Gate) DetailVisible() bool {
	return g.state == DetailOpen
}

// Select marks id as the selected row. The row must be on the visible page;
// otherwise the gate is returned unchanged with ok false. Selecting closes
// any open detail view.
func (g Gate) Select(generation uint64, page Projection, id sessions.ID) (Gate, bool) {
	if !page.Contains(id) {
		return g, false
	}
	return Gate{state: Selected, generation: generation, id: id}, true
}

// Open shows the detail view. It is a no-op without a selection.
func (g Gate) Open() (Gate, bool) {
	if g.state == Idle {
		return g, false
	}
	g.state = DetailOpen
	return g, true
}

// Dismiss hides the detail view and keeps the selection.
func (g Gate) Dismiss() Gate {
	if g.state == DetailOpen {
		g.state = Selected
	}
	return g
}

// Clear drops the selection.
func (g Gate) Clear() Gate {
	return Gate{}
}

// Sync invalidates the selection when the record set has been replaced.
func (g Gate) Sync(generation uint64) Gate {
	if g.state != Idle && g.generation != generation {
		return Gate{}
	}
	return g
}

// Resolve finds the selected record in records.
func (g Gate) Resolve(records []sessions.Record) (sessions.Record, bool) {
	if g.state == Idle {
		return sessions.Record{}, false
	}
	for _, r := range records {
		if r.ID == g.id {
			return r, true
		}
	}
	return sessions.Record{}, false
}
