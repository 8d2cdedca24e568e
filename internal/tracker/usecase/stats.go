package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker"
)

// Stats counts applied vs. total data rows and, when GroupBy names a header,
// breaks the applied count down per group. A sheet without an Applied column
// simply reports zero applied rows.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope, input tracker.StatsInput) (tracker.StatsOutput, error) {
	sh, err := uc.sheet(ctx, input.SheetID)
	if err != nil {
		return tracker.StatsOutput{}, err
	}

	lastRow, err := sh.LastRow(ctx)
	if err != nil {
		return tracker.StatsOutput{}, fmt.Errorf("failed to read last row: %w", err)
	}

	out := tracker.StatsOutput{}
	if lastRow < 2 {
		return out, nil
	}
	out.TotalRows = lastRow - 1

	appliedCol, err := findColumn(ctx, sh, tracker.AppliedHeader)
	if err != nil {
		return tracker.StatsOutput{}, err
	}

	groupCol := 0
	if input.GroupBy != "" {
		groupCol, err = findColumn(ctx, sh, input.GroupBy)
		if err != nil {
			return tracker.StatsOutput{}, err
		}
		if groupCol != 0 {
			out.GroupColumn = input.GroupBy
		}
	}

	if appliedCol == 0 {
		out.NotApplied = out.TotalRows
		return out, nil
	}

	lastCol, err := sh.LastColumn(ctx)
	if err != nil {
		return tracker.StatsOutput{}, fmt.Errorf("failed to read last column: %w", err)
	}

	rows, err := sh.ReadRange(ctx, 2, 1, lastRow, lastCol)
	if err != nil {
		return tracker.StatsOutput{}, fmt.Errorf("failed to read data rows: %w", err)
	}

	groups := make(map[string]int)
	for _, row := range rows {
		if appliedCol > len(row) || !isApplied(row[appliedCol-1]) {
			continue
		}
		out.Applied++

		if groupCol == 0 {
			continue
		}
		group := "Unknown"
		if groupCol <= len(row) {
			if text := strings.TrimSpace(row[groupCol-1].Text()); text != "" {
				group = text
			}
		}
		groups[group]++
	}
	out.NotApplied = out.TotalRows - out.Applied

	if len(groups) > 0 {
		for g, n := range groups {
			out.Groups = append(out.Groups, tracker.GroupCount{Group: g, Count: n})
		}
		sort.Slice(out.Groups, func(i, j int) bool {
			if out.Groups[i].Count != out.Groups[j].Count {
				return out.Groups[i].Count > out.Groups[j].Count
			}
			return out.Groups[i].Group < out.Groups[j].Group
		})
	}

	uc.l.Infof(ctx, "Stats: sheet=%s total=%d applied=%d", input.SheetID, out.TotalRows, out.Applied)
	return out, nil
}

// appliedStrings are the textual cell values that mark a row as applied, so
// sheets imported from CSV exports report correctly.
var appliedStrings = map[string]struct{}{
	"TRUE": {}, "YES": {}, "Y": {}, "1": {},
}

// isApplied reports whether a cell marks its row as applied: the boolean
// true, or any of the accepted textual forms (trimmed, any case).
func isApplied(cell model.Cell) bool {
	if cell.IsChecked() {
		return true
	}
	if cell.Kind == model.CellBool {
		return false
	}
	_, ok := appliedStrings[strings.ToUpper(strings.TrimSpace(cell.Text()))]
	return ok
}
