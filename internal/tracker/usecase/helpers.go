package usecase

import (
	"context"
	"errors"
	"fmt"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker"
	"apply-tracker/internal/tracker/repository"
)

// sheet resolves a sheet handle, mapping the repository sentinel to the
// domain error.
func (uc *implUseCase) sheet(ctx context.Context, id string) (repository.Sheet, error) {
	sh, err := uc.repo.Sheet(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, tracker.ErrSheetNotFound
		}
		return nil, fmt.Errorf("failed to resolve sheet %q: %w", id, err)
	}
	return sh, nil
}

// findColumn reads the header row fresh and returns the 1-based position of
// the first header exactly equal to name, or 0 when absent. The header row is
// never cached: columns may move between operations.
func findColumn(ctx context.Context, sh repository.Sheet, name string) (int, error) {
	lastCol, err := sh.LastColumn(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read last column: %w", err)
	}
	if lastCol == 0 {
		return 0, nil
	}

	headers, err := sh.ReadRange(ctx, 1, 1, 1, lastCol)
	if err != nil {
		return 0, fmt.Errorf("failed to read header row: %w", err)
	}
	if len(headers) == 0 {
		return 0, nil
	}

	for i, cell := range headers[0] {
		if cell.Kind == model.CellString && cell.Str == name {
			return i + 1, nil
		}
	}
	return 0, nil
}
