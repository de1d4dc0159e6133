package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/five82/approvals/internal/config"
	"github.com/five82/approvals/internal/export"
	"github.com/five82/approvals/internal/notify"
	"github.com/five82/approvals/internal/prefs"
	"github.com/five82/approvals/internal/sessions"
	"github.com/five82/approvals/internal/state"
	"github.com/five82/approvals/internal/ui"
)

// Options configure the viewer. Non-zero fields override the config file.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/approvals/prefs.toml
	SourceFile  string
	PollSeconds int
}

// Run boots the TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := OpenLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Printf("load prefs: %v (using defaults)", err)
	}

	repo, err := NewRepository(cfg)
	if err != nil {
		return err
	}

	store := &state.Store{}
	board := &notify.Board{}
	refresher := &Refresher{
		Repo:   repo,
		Store:  store,
		Sink:   notify.Fanout{board, notify.LogSink{Logger: logger}},
		Logger: logger,
	}

	StartPoller(ctx, refresher, cfg.PollInterval)

	dir := export.DirExporter{Dir: cfg.ExportDir}
	return ui.Run(ui.Options{
		Context:    ctx,
		Store:      store,
		Refresher:  refresher,
		Board:      board,
		Download:   dir,
		ExportPath: dir.Path(export.Filename),
		Clipboard:  export.ClipboardExporter{},
		View:       userPrefs.ViewState(),
		ThemeName:  cfg.Theme,
		Logger:     logger,
	})
}

// LoadConfig reads the config file and applies command-line overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.SourceFile != "" {
		path, err := config.ExpandPath(opts.SourceFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve source file: %w", err)
		}
		cfg.SourceFile = path
	}
	if opts.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(opts.PollSeconds) * time.Second
	}
	return cfg, nil
}

// NewRepository picks the record source described by cfg.
func NewRepository(cfg config.Config) (sessions.Repository, error) {
	if cfg.UsesFile() {
		repo, err := sessions.NewFileRepository(cfg.SourceFile)
		if err != nil {
			return nil, fmt.Errorf("init file repository: %w", err)
		}
		return repo, nil
	}
	client, err := sessions.NewClient(cfg.APIURL,
		sessions.WithSessionsPath(cfg.SessionsPath),
		sessions.WithTimeout(cfg.RequestTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("init sessions client: %w", err)
	}
	return client, nil
}

// OpenLogger returns a logger appending to path, or one that discards
// everything when path is empty. The TUI owns the terminal, so logs never
// go to stderr while it runs.
func OpenLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "approvals ", log.LstdFlags), func() { _ = f.Close() }, nil
}
