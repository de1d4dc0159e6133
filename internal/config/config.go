package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings needed to reach the sessions API and to place
// exports and logs.
type Config struct {
	APIURL         string
	SessionsPath   string
	SourceFile     string // JSON file used instead of the API when set
	ExportDir      string
	LogFile        string
	PollInterval   time.Duration // zero disables periodic refresh
	Theme          string
	RequestTimeout time.Duration
}

const (
	defaultConfigPath     = "~/.config/approvals/config.toml"
	defaultAPIURL         = "http://127.0.0.1:8080"
	defaultSessionsPath   = "/sessions"
	defaultExportDir      = "."
	defaultRequestTimeout = 10 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:         defaultAPIURL,
		SessionsPath:   defaultSessionsPath,
		ExportDir:      mustExpand(defaultExportDir),
		RequestTimeout: defaultRequestTimeout,
	}
}

// DefaultPath returns the expanded default config location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		SessionsPath   string `toml:"sessions_path"`
		SourceFile     string `toml:"source_file"`
		ExportDir      string `toml:"export_dir"`
		LogFile        string `toml:"log_file"`
		PollSeconds    int    `toml:"poll_seconds"`
		Theme          string `toml:"theme"`
		RequestTimeout int    `toml:"request_timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.PollSeconds < 0 {
		return Config{}, fmt.Errorf("parse config: poll_seconds must be >= 0, got %d", raw.PollSeconds)
	}
	if raw.RequestTimeout < 0 {
		return Config{}, fmt.Errorf("parse config: request_timeout_seconds must be >= 0, got %d", raw.RequestTimeout)
	}

	cfg := Default()
	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(raw.SessionsPath); v != "" {
		cfg.SessionsPath = v
	}
	if v := strings.TrimSpace(raw.SourceFile); v != "" {
		cfg.SourceFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.ExportDir); v != "" {
		cfg.ExportDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	cfg.Theme = strings.TrimSpace(raw.Theme)
	if raw.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeout) * time.Second
	}

	return cfg, nil
}

// UsesFile reports whether records come from a local JSON file.
func (c Config) UsesFile() bool {
	return strings.TrimSpace(c.SourceFile) != ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
