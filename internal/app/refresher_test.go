package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/five82/approvals/internal/notify"
	"github.com/five82/approvals/internal/sessions"
	"github.com/five82/approvals/internal/state"
)

type stubRepo struct {
	mu      sync.Mutex
	records []sessions.Record
	err     error
	calls   int
	block   chan struct{}
}

func (s *stubRepo) FetchAll(ctx context.Context) ([]sessions.Record, error) {
	s.mu.Lock()
	s.calls++
	block := s.block
	s.mu.Unlock()
	if block != nil {
		<-block
	}
	return s.records, s.err
}

func TestRefresh_InstallsNormalizedRecords(t *testing.T) {
	repo := &stubRepo{records: []sessions.Record{
		{ID: "1", Status: "ended"},
		{ID: "2", Status: "pending"},
	}}
	store := &state.Store{}
	board := &notify.Board{}
	board.Notify([]notify.Notice{{Header: "stale"}})

	r := &Refresher{Repo: repo, Store: store, Sink: board}
	gen, err := r.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if gen != 1 {
		t.Fatalf("Refresh() generation = %d, want 1", gen)
	}
	snap := store.Snapshot()
	if snap.Records[0].Status != "approved" || snap.Records[1].Status != "pending" {
		t.Fatalf("statuses = %q, %q; want approved, pending", snap.Records[0].Status, snap.Records[1].Status)
	}
	if got := board.Notices(); got != nil {
		t.Fatalf("notices after success = %v, want cleared", got)
	}
}

func TestRefresh_FailureKeepsRecordsAndNotifies(t *testing.T) {
	repo := &stubRepo{records: []sessions.Record{{ID: "1", Status: "pending"}}}
	store := &state.Store{}
	board := &notify.Board{}
	r := &Refresher{Repo: repo, Store: store, Sink: board}

	if _, err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("first Refresh() error = %v", err)
	}

	boom := errors.New("connection refused")
	repo.err = boom
	repo.records = nil
	if _, err := r.Refresh(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Refresh() error = %v, want %v", err, boom)
	}

	snap := store.Snapshot()
	if len(snap.Records) != 1 || snap.Generation != 1 {
		t.Fatalf("snapshot after failure = %d records gen %d, want 1 and 1", len(snap.Records), snap.Generation)
	}
	if snap.Loading {
		t.Fatalf("Loading = true after failure")
	}
	notices := board.Notices()
	if len(notices) != 1 || notices[0].Level != notify.LevelError || notices[0].Message != "connection refused" {
		t.Fatalf("notices = %+v, want one error notice", notices)
	}
}

func TestRefresh_RejectsConcurrentRefresh(t *testing.T) {
	repo := &stubRepo{block: make(chan struct{})}
	store := &state.Store{}
	r := &Refresher{Repo: repo, Store: store}

	done := make(chan error, 1)
	go func() {
		_, err := r.Refresh(context.Background())
		done <- err
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !store.Snapshot().Loading {
		if time.Now().After(deadline) {
			t.Fatalf("first refresh never started")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := r.Refresh(context.Background()); !errors.Is(err, state.ErrRefreshInFlight) {
		t.Fatalf("concurrent Refresh() error = %v, want ErrRefreshInFlight", err)
	}

	close(repo.block)
	if err := <-done; err != nil {
		t.Fatalf("first Refresh() error = %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("repository calls = %d, want 1", repo.calls)
	}
}

func TestRefresh_Unconfigured(t *testing.T) {
	var r *Refresher
	if _, err := r.Refresh(context.Background()); err == nil {
		t.Fatalf("nil Refresher returned nil error")
	}
}

func TestLoadConfig_AppliesOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadConfig(Options{
		ConfigPath:  filepath.Join(home, "missing.toml"),
		SourceFile:  "~/sessions.json",
		PollSeconds: 15,
	})
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.SourceFile != filepath.Join(home, "sessions.json") {
		t.Fatalf("SourceFile = %q", cfg.SourceFile)
	}
	if cfg.PollInterval != 15*time.Second {
		t.Fatalf("PollInterval = %v, want 15s", cfg.PollInterval)
	}
}

func TestNewRepository_PicksSource(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadConfig(Options{ConfigPath: filepath.Join(home, "missing.toml")})
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	repo, err := NewRepository(cfg)
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	if _, ok := repo.(*sessions.Client); !ok {
		t.Fatalf("NewRepository() = %T, want *sessions.Client", repo)
	}

	cfg.SourceFile = filepath.Join(home, "sessions.json")
	repo, err = NewRepository(cfg)
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	if _, ok := repo.(*sessions.FileRepository); !ok {
		t.Fatalf("NewRepository() = %T, want *sessions.FileRepository", repo)
	}
}

func TestOpenLogger(t *testing.T) {
	logger, closeLog, err := OpenLogger("")
	if err != nil || logger == nil {
		t.Fatalf("OpenLogger(\"\") = %v, %v", logger, err)
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "logs", "approvals.log")
	logger, closeLog, err = OpenLogger(path)
	if err != nil {
		t.Fatalf("OpenLogger() error = %v", err)
	}
	logger.Printf("hello")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("log file is empty")
	}
}
