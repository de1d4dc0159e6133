package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/five82/approvals/internal/sessions"
	"github.com/five82/approvals/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	cases := []struct {
		name     string
		base     time.Duration
		failures int
		want     time.Duration
	}{
		{"healthy", 5 * time.Second, 0, 5 * time.Second},
		{"negative treated as healthy", 5 * time.Second, -3, 5 * time.Second},
		{"first failure doubles", 5 * time.Second, 1, 10 * time.Second},
		{"second failure", 5 * time.Second, 2, 20 * time.Second},
		{"third failure hits cap", 5 * time.Second, 3, maxBackoff},
		{"base above cap stays", time.Minute, 0, time.Minute},
		{"base above cap backs off to cap", time.Minute, 1, maxBackoff},
		{"many failures", time.Second, 64, maxBackoff},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := calculateBackoff(tc.failures, tc.base); got != tc.want {
				t.Fatalf("calculateBackoff(%d, %v) = %v, want %v", tc.failures, tc.base, got, tc.want)
			}
		})
	}
}

func TestStartPoller_RefreshesUntilCancelled(t *testing.T) {
	repo := &stubRepo{records: []sessions.Record{{ID: "1", Status: "pending"}}}
	store := &state.Store{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	StartPoller(ctx, &Refresher{Repo: repo, Store: store}, 5*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for store.Snapshot().Generation < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("generation = %d after 2s, want >= 2", store.Snapshot().Generation)
		}
		time.Sleep(time.Millisecond)
	}
	cancel()

	// Let an in-flight tick finish, then confirm polling stopped.
	time.Sleep(20 * time.Millisecond)
	repo.mu.Lock()
	before := repo.calls
	repo.mu.Unlock()
	time.Sleep(30 * time.Millisecond)
	repo.mu.Lock()
	after := repo.calls
	repo.mu.Unlock()
	if after != before {
		t.Fatalf("calls grew from %d to %d after cancel", before, after)
	}
}

func TestStartPoller_KeepsRecordsThroughFailures(t *testing.T) {
	repo := &stubRepo{records: []sessions.Record{{ID: "1", Status: "ended"}}}
	store := &state.Store{}
	r := &Refresher{Repo: repo, Store: store}
	if _, err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("initial Refresh() error = %v", err)
	}

	repo.mu.Lock()
	repo.err = errors.New("connection refused")
	repo.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartPoller(ctx, r, time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for store.Snapshot().ConsecutiveFailures < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("failures = %d after 2s, want >= 2", store.Snapshot().ConsecutiveFailures)
		}
		time.Sleep(time.Millisecond)
	}
	snap := store.Snapshot()
	if !snap.IsOffline() || len(snap.Records) != 1 || snap.Generation != 1 {
		t.Fatalf("snapshot = offline %v, %d records, gen %d; want offline with the first install kept",
			snap.IsOffline(), len(snap.Records), snap.Generation)
	}
}

func TestStartPoller_DisabledInterval(t *testing.T) {
	repo := &stubRepo{}
	StartPoller(context.Background(), &Refresher{Repo: repo, Store: &state.Store{}}, 0)
	time.Sleep(10 * time.Millisecond)
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.calls != 0 {
		t.Fatalf("calls = %d with polling disabled, want 0", repo.calls)
	}
}
