package usecase

import (
	"context"
	"fmt"
	"strings"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker"
)

// FilterApplied removes rows from the target sheet whose key cell matches an
// applied row of the master sheet. Keys compare trimmed and exact; target
// rows with an empty key are kept. Rows are deleted bottom-up so positions
// stay valid while the sheet shrinks.
func (uc *implUseCase) FilterApplied(ctx context.Context, sc model.Scope, input tracker.FilterInput) (tracker.FilterOutput, error) {
	key := input.KeyColumn
	if key == "" {
		key = tracker.DefaultFilterKey
	}

	appliedKeys, err := uc.appliedKeys(ctx, input.MasterSheetID, key)
	if err != nil {
		return tracker.FilterOutput{}, err
	}

	out := tracker.FilterOutput{MasterApplied: len(appliedKeys)}

	target, err := uc.sheet(ctx, input.TargetSheetID)
	if err != nil {
		return tracker.FilterOutput{}, err
	}

	keyCol, err := findColumn(ctx, target, key)
	if err != nil {
		return tracker.FilterOutput{}, err
	}
	if keyCol == 0 {
		return tracker.FilterOutput{}, fmt.Errorf("target sheet %s has no %q column: %w",
			input.TargetSheetID, key, tracker.ErrColumnNotFound)
	}

	lastRow, err := target.LastRow(ctx)
	if err != nil {
		return tracker.FilterOutput{}, fmt.Errorf("failed to read last row: %w", err)
	}

	for row := lastRow; row >= 2; row-- {
		cells, rErr := target.ReadRange(ctx, row, keyCol, row, keyCol)
		if rErr != nil {
			return tracker.FilterOutput{}, fmt.Errorf("failed to read row %d: %w", row, rErr)
		}
		if len(cells) == 0 || len(cells[0]) == 0 {
			continue
		}
		k := strings.TrimSpace(cells[0][0].Text())
		if k == "" {
			continue
		}
		if _, ok := appliedKeys[k]; !ok {
			continue
		}
		if dErr := target.DeleteRow(ctx, row); dErr != nil {
			return tracker.FilterOutput{}, fmt.Errorf("failed to delete row %d: %w", row, dErr)
		}
		out.Removed++
	}

	remaining, err := target.LastRow(ctx)
	if err != nil {
		return tracker.FilterOutput{}, fmt.Errorf("failed to read last row: %w", err)
	}
	if remaining > 0 {
		out.Remaining = remaining - 1
	}

	uc.l.Infof(ctx, "FilterApplied: target=%s master=%s removed=%d remaining=%d",
		input.TargetSheetID, input.MasterSheetID, out.Removed, out.Remaining)
	return out, nil
}

// appliedKeys collects the key-column values of the master sheet's applied
// rows.
func (uc *implUseCase) appliedKeys(ctx context.Context, sheetID, key string) (map[string]struct{}, error) {
	master, err := uc.sheet(ctx, sheetID)
	if err != nil {
		return nil, err
	}

	appliedCol, err := findColumn(ctx, master, tracker.AppliedHeader)
	if err != nil {
		return nil, err
	}
	if appliedCol == 0 {
		return nil, fmt.Errorf("master sheet %s has no %q column: %w",
			sheetID, tracker.AppliedHeader, tracker.ErrColumnNotFound)
	}

	keyCol, err := findColumn(ctx, master, key)
	if err != nil {
		return nil, err
	}
	if keyCol == 0 {
		return nil, fmt.Errorf("master sheet %s has no %q column: %w",
			sheetID, key, tracker.ErrColumnNotFound)
	}

	lastRow, err := master.LastRow(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read last row: %w", err)
	}

	keys := make(map[string]struct{})
	if lastRow < 2 {
		return keys, nil
	}

	lastCol, err := master.LastColumn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read last column: %w", err)
	}

	rows, err := master.ReadRange(ctx, 2, 1, lastRow, lastCol)
	if err != nil {
		return nil, fmt.Errorf("failed to read data rows: %w", err)
	}
	for _, row := range rows {
		if appliedCol > len(row) || keyCol > len(row) {
			continue
		}
		if !isApplied(row[appliedCol-1]) {
			continue
		}
		if k := strings.TrimSpace(row[keyCol-1].Text()); k != "" {
			keys[k] = struct{}{}
		}
	}
	return keys, nil
}
