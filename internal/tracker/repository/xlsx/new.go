// Package xlsx backs the tracker with a local Excel workbook, covering the
// original offline workflow where the application list lives in a file.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"apply-tracker/internal/tracker/repository"
	pkgLog "apply-tracker/pkg/log"
)

// Repository resolves worksheets of one open workbook. Sheet IDs are
// worksheet names.
type Repository struct {
	l    pkgLog.Logger
	file *excelize.File
	path string
}

var _ repository.SheetRepository = (*Repository)(nil)

// Open loads a workbook from disk.
func Open(path string, l pkgLog.Logger) (*Repository, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Repository{l: l, file: f, path: path}, nil
}

// NewFromFile wraps an already open workbook. Used by tests and callers that
// build workbooks in memory.
func NewFromFile(f *excelize.File, l pkgLog.Logger) *Repository {
	return &Repository{l: l, file: f}
}

// Sheet returns a handle for the worksheet with the given name.
func (r *Repository) Sheet(ctx context.Context, id string) (repository.Sheet, error) {
	idx, err := r.file.GetSheetIndex(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up worksheet %q: %w", id, err)
	}
	if idx < 0 {
		return nil, repository.ErrNotFound
	}
	return &Sheet{l: r.l, file: r.file, name: id}, nil
}

// Save writes the workbook back to the path it was opened from.
func (r *Repository) Save() error {
	if r.path == "" {
		return fmt.Errorf("workbook has no backing file")
	}
	if err := r.file.Save(); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Close releases the workbook.
func (r *Repository) Close() error {
	return r.file.Close()
}
