package usecase

import (
	"context"
	"fmt"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker"
)

// EnsureAppliedColumn idempotently provisions the Applied checkbox column.
// An existing column is reused; otherwise one is appended after the last used
// column. Data rows of the target column are converted to checkboxes, keeping
// boolean-compatible values as checkbox state.
func (uc *implUseCase) EnsureAppliedColumn(ctx context.Context, sc model.Scope, input tracker.EnsureColumnInput) (tracker.EnsureColumnOutput, error) {
	sh, err := uc.sheet(ctx, input.SheetID)
	if err != nil {
		return tracker.EnsureColumnOutput{}, err
	}

	uc.l.Infof(ctx, "EnsureAppliedColumn: user=%s sheet=%s", sc.UserID, input.SheetID)

	col, err := findColumn(ctx, sh, tracker.AppliedHeader)
	if err != nil {
		return tracker.EnsureColumnOutput{}, err
	}

	created := false
	if col == 0 {
		lastCol, lcErr := sh.LastColumn(ctx)
		if lcErr != nil {
			return tracker.EnsureColumnOutput{}, fmt.Errorf("failed to read last column: %w", lcErr)
		}
		col = lastCol + 1
		if err := sh.SetValue(ctx, 1, col, model.StringCell(tracker.AppliedHeader)); err != nil {
			return tracker.EnsureColumnOutput{}, fmt.Errorf("failed to write header: %w", err)
		}
		created = true
		uc.l.Infof(ctx, "EnsureAppliedColumn: appended header at column %d", col)
	}

	lastRow, err := sh.LastRow(ctx)
	if err != nil {
		return tracker.EnsureColumnOutput{}, fmt.Errorf("failed to read last row: %w", err)
	}

	// Rows 2..lastRow; a header-only sheet leaves nothing to convert.
	checkboxRows := 0
	if lastRow >= 2 {
		if err := sh.InsertCheckboxes(ctx, col, 2, lastRow); err != nil {
			return tracker.EnsureColumnOutput{}, fmt.Errorf("failed to insert checkboxes: %w", err)
		}
		checkboxRows = lastRow - 1
	}

	msg := fmt.Sprintf("%q column ready at column %d (%d rows)", tracker.AppliedHeader, col, checkboxRows)
	if nErr := uc.notifier.Notify(ctx, msg); nErr != nil {
		uc.l.Warnf(ctx, "EnsureAppliedColumn: notification failed (non-fatal): %v", nErr)
	}

	return tracker.EnsureColumnOutput{
		Column:       col,
		Created:      created,
		CheckboxRows: checkboxRows,
	}, nil
}
