package gsheets

import (
	"context"
	"strings"

	"apply-tracker/internal/tracker/repository"
	pkgGSheets "apply-tracker/pkg/gsheets"
	pkgLog "apply-tracker/pkg/log"
)

// Repository resolves tabs of one configured Google spreadsheet.
// Sheet IDs are tab titles.
type Repository struct {
	l             pkgLog.Logger
	client        *pkgGSheets.Client
	spreadsheetID string
}

var _ repository.SheetRepository = (*Repository)(nil)

// New creates a Google Sheets backed repository for one spreadsheet.
func New(client *pkgGSheets.Client, spreadsheetID string, l pkgLog.Logger) *Repository {
	return &Repository{
		l:             l,
		client:        client,
		spreadsheetID: spreadsheetID,
	}
}

// Sheet returns a handle for the tab with the given title.
func (r *Repository) Sheet(ctx context.Context, id string) (repository.Sheet, error) {
	gridID, err := r.client.SheetID(ctx, r.spreadsheetID, id)
	if err != nil {
		if strings.Contains(err.Error(), "no sheet titled") {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &Sheet{
		l:             r.l,
		client:        r.client,
		spreadsheetID: r.spreadsheetID,
		title:         id,
		gridID:        gridID,
	}, nil
}
