package sessions

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// FileRepository serves records from a JSON file on disk. The file is
// re-read on every fetch so edits show up on the next refresh.
type FileRepository struct {
	Path string
}

// NewFileRepository returns a repository backed by the JSON file at path.
func NewFileRepository(path string) (*FileRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("source file path is empty")
	}
	return &FileRepository{Path: path}, nil
}

// FetchAll reads and decodes the file.
func (f *FileRepository) FetchAll(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}
	records, err := decodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("decode source file %s: %w", f.Path, err)
	}
	return records, nil
}
