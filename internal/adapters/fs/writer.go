package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/sprite/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.OutputWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile creates the parent directories of path and replaces its content
// with data.
func (w *Writer) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrOutputWrite, err.Error()), "path", path)
		}
	}

	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrOutputWrite, err.Error()), "path", path)
	}
	return nil
}
