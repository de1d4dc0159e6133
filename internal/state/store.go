package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/five82/approvals/internal/sessions"
)

// ErrRefreshInFlight is returned by BeginRefresh callers when another
// refresh has not finished yet.
var ErrRefreshInFlight = errors.New("refresh already in progress")

// Snapshot represents the latest record set available to the UI.
type Snapshot struct {
	Records             []sessions.Record
	Generation          uint64 // incremented on every successful install
	Loading             bool   // a refresh is in flight
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive fetch failures
}

// IsOffline returns true when the repository has failed several times in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Loaded reports whether any record set has been installed yet.
func (s Snapshot) Loaded() bool {
	return s.Generation > 0
}

// Store holds the authoritative record set and coordinates refreshes.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// BeginRefresh marks a refresh as in flight. It returns false when one is
// already running; the caller must not fetch in that case.
func (s *Store) BeginRefresh() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Loading {
		return false
	}
	s.snapshot.Loading = true
	return true
}

// Install atomically replaces the record set, bumps the generation and
// clears the in-flight flag. It returns the new generation.
func (s *Store) Install(records []sessions.Record) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Records = cloneRecords(records)
	s.snapshot.Generation++
	s.snapshot.Loading = false
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	return s.snapshot.Generation
}

// Fail records a failed refresh. The previous records are kept.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Loading = false
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneRecords(records []sessions.Record) []sessions.Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]sessions.Record, len(records))
	copy(dup, records)
	return dup
}
