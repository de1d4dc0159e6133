// Package prefs loads table preferences for the approvals viewer.
// Preferences are read from ~/.config/approvals/prefs.toml and are never
// written back; changes made while running live only in memory.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/approvals/internal/collection"
)

// Prefs holds the table preferences.
type Prefs struct {
	PageSize       int      `toml:"page_size"`
	VisibleColumns []string `toml:"visible_columns"`
	WrapLines      bool     `toml:"wrap_lines"`
}

const defaultPrefsPath = "~/.config/approvals/prefs.toml"

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{
		PageSize:       collection.DefaultPageSize,
		VisibleColumns: collection.DefaultColumns().Strings(),
	}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if
// the file is missing or unreadable. Invalid individual values fall back
// to their defaults. The error is non-nil only for unreadable or
// malformed files, and the returned Prefs is usable either way.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), err
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read prefs: %w", err)
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Default(), fmt.Errorf("parse prefs: %w", err)
	}
	return p.normalized(), nil
}

func (p Prefs) normalized() Prefs {
	def := Default()
	if !slices.Contains(collection.PageSizeOptions, p.PageSize) {
		p.PageSize = def.PageSize
	}
	cols := collection.ParseColumnSet(p.VisibleColumns)
	if len(cols) == 0 {
		p.VisibleColumns = def.VisibleColumns
	} else {
		p.VisibleColumns = cols.Strings()
	}
	return p
}

// ViewState returns the initial view described by the preferences.
func (p Prefs) ViewState() collection.ViewState {
	p = p.normalized()
	return collection.NewViewState().
		WithPageSize(p.PageSize).
		WithColumns(collection.ParseColumnSet(p.VisibleColumns)).
		WithWrapLines(p.WrapLines)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
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
