package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// Exporter delivers encoded bytes somewhere the user can retrieve them.
type Exporter interface {
	Export(data []byte, filename string) error
}

var (
	_ Exporter = DirExporter{}
	_ Exporter = WriterExporter{}
	_ Exporter = ClipboardExporter{}
)

// DirExporter writes the file into Dir, replacing any previous export.
type DirExporter struct {
	Dir string
}

// Path returns the destination path for filename.
func (e DirExporter) Path(filename string) string {
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, filename)
}

// Export writes to a temporary file and renames it into place so readers
// never observe a partial file.
func (e DirExporter) Export(data []byte, filename string) error {
	if filename == "" {
		return errors.New("export filename is empty")
	}
	dest := e.Path(filename)
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filename+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op after a successful rename.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filename, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", filename, err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return fmt.Errorf("rename %s: %w", filename, err)
	}
	return nil
}

// WriterExporter streams the bytes to W and ignores the filename.
type WriterExporter struct {
	W io.Writer
}

func (e WriterExporter) Export(data []byte, _ string) error {
	if e.W == nil {
		return errors.New("export writer is nil")
	}
	if _, err := e.W.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// ClipboardExporter copies the bytes to the system clipboard.
type ClipboardExporter struct{}

func (ClipboardExporter) Export(data []byte, _ string) error {
	if err := writeClipboard(string(data)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
