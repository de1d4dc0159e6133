package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.SessionsPath != defaultSessionsPath {
		t.Fatalf("SessionsPath = %q, want %q", cfg.SessionsPath, defaultSessionsPath)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.PollInterval != 0 {
		t.Fatalf("PollInterval = %v, want 0", cfg.PollInterval)
	}
	if cfg.UsesFile() {
		t.Fatalf("UsesFile() = true with no source_file")
	}
	if !filepath.IsAbs(cfg.ExportDir) {
		t.Fatalf("ExportDir = %q, want absolute path", cfg.ExportDir)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
api_url = "  https://approvals.internal  "
sessions_path = " /api/sessions "
source_file = "~/fixtures/sessions.json"
export_dir = "~/exports"
log_file = "~/approvals.log"
poll_seconds = 30
theme = " Slate "
request_timeout_seconds = 3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "https://approvals.internal" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.SessionsPath != "/api/sessions" {
		t.Fatalf("SessionsPath = %q", cfg.SessionsPath)
	}
	if cfg.SourceFile != filepath.Join(home, "fixtures/sessions.json") || !cfg.UsesFile() {
		t.Fatalf("SourceFile = %q, want it under HOME", cfg.SourceFile)
	}
	for name, got := range map[string]string{"ExportDir": cfg.ExportDir, "LogFile": cfg.LogFile} {
		if !strings.HasPrefix(got, home) {
			t.Fatalf("%s = %q, want it under HOME %q", name, got, home)
		}
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("PollInterval = %v, want 30s", cfg.PollInterval)
	}
	if cfg.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", cfg.Theme)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("RequestTimeout = %v, want 3s", cfg.RequestTimeout)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
api_url = "   "
sessions_path = ""
request_timeout_seconds = 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.SessionsPath != defaultSessionsPath {
		t.Fatalf("SessionsPath = %q, want %q", cfg.SessionsPath, defaultSessionsPath)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "syntax", body: `api_url = [`, want: "parse config"},
		{name: "negative poll", body: `poll_seconds = -1`, want: "poll_seconds"},
		{name: "negative timeout", body: `request_timeout_seconds = -5`, want: "request_timeout_seconds"},
		{name: "wrong type", body: `poll_seconds = "often"`, want: "parse config"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestDefaultPath_UnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := DefaultPath()
	if got != filepath.Join(home, ".config/approvals/config.toml") {
		t.Fatalf("DefaultPath = %q", got)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
