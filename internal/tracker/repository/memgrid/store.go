package memgrid

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker/repository"
	pkgLog "apply-tracker/pkg/log"
)

// Store is an in-memory sheet repository. It backs tests and the dev API
// when no spreadsheet backend is configured.
type Store struct {
	l pkgLog.Logger

	mu     sync.RWMutex
	sheets map[string]*Sheet
}

var _ repository.SheetRepository = (*Store)(nil)
var _ repository.Creator = (*Store)(nil)

// NewStore creates an empty in-memory sheet store.
func NewStore(l pkgLog.Logger) *Store {
	return &Store{
		l:      l,
		sheets: make(map[string]*Sheet),
	}
}

// Sheet returns the sheet with the given ID.
func (s *Store) Sheet(ctx context.Context, id string) (repository.Sheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sh, ok := s.sheets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return sh, nil
}

// CreateSheet creates a new sheet, generating an ID when none is given.
func (s *Store) CreateSheet(ctx context.Context, opts repository.CreateSheetOptions) (repository.Sheet, string, error) {
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}

	sh := newSheet()
	for col, h := range opts.Headers {
		sh.setValueLocked(1, col+1, model.StringCell(h))
	}
	for r, row := range opts.Rows {
		for c, cell := range row {
			sh.setValueLocked(r+2, c+1, cell)
		}
	}

	s.mu.Lock()
	s.sheets[id] = sh
	s.mu.Unlock()

	s.l.Debugf(ctx, "memgrid: created sheet %s (%d headers, %d rows)", id, len(opts.Headers), len(opts.Rows))
	return sh, id, nil
}
