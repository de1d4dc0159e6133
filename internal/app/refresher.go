package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/five82/approvals/internal/collection"
	"github.com/five82/approvals/internal/notify"
	"github.com/five82/approvals/internal/sessions"
	"github.com/five82/approvals/internal/state"
)

// Refresher runs the fetch, normalize and install cycle against a Store.
type Refresher struct {
	Repo   sessions.Repository
	Store  *state.Store
	Sink   notify.Sink
	Logger *log.Logger
}

// Refresh replaces the store contents with a fresh fetch and returns the
// new generation. Only one refresh runs at a time; a concurrent call
// returns state.ErrRefreshInFlight without touching the repository. On
// failure the previous records stay installed and an error notice is sent.
func (r *Refresher) Refresh(ctx context.Context) (uint64, error) {
	if r == nil || r.Store == nil || r.Repo == nil {
		return 0, errors.New("refresher is not configured")
	}
	if !r.Store.BeginRefresh() {
		return 0, state.ErrRefreshInFlight
	}
	r.notify(nil)

	records, err := r.Repo.FetchAll(ctx)
	if err != nil {
		r.Store.Fail(err)
		r.logf("fetch requests failed: %v", err)
		r.notify([]notify.Notice{notify.Error("Failed to fetch requests", err)})
		return 0, fmt.Errorf("fetch requests: %w", err)
	}

	gen := r.Store.Install(collection.Normalize(records))
	r.logf("installed %d requests (generation %d)", len(records), gen)
	return gen, nil
}

func (r *Refresher) notify(notices []notify.Notice) {
	if r.Sink != nil {
		r.Sink.Notify(notices)
	}
}

func (r *Refresher) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}
