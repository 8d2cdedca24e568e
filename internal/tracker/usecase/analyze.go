package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker"
)

// Analyze builds the application funnel report over the applied rows of one
// sheet. Statuses come from the Status column, lowercased and trimmed; an
// applied row without a status counts as plain "applied". An offer implies an
// interview, and ghosted is every application that has not reached an
// interview yet.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input tracker.AnalyzeInput) (tracker.AnalyzeOutput, error) {
	sh, err := uc.sheet(ctx, input.SheetID)
	if err != nil {
		return tracker.AnalyzeOutput{}, err
	}

	lastRow, err := sh.LastRow(ctx)
	if err != nil {
		return tracker.AnalyzeOutput{}, fmt.Errorf("failed to read last row: %w", err)
	}

	out := tracker.AnalyzeOutput{}
	if lastRow < 2 {
		return out, nil
	}

	appliedCol, err := findColumn(ctx, sh, tracker.AppliedHeader)
	if err != nil {
		return tracker.AnalyzeOutput{}, err
	}
	if appliedCol == 0 {
		return out, nil
	}

	// The Status column is optional; without it every applied row counts as
	// plain "applied".
	statusCol, err := findColumn(ctx, sh, tracker.StatusHeader)
	if err != nil {
		return tracker.AnalyzeOutput{}, err
	}

	lastCol, err := sh.LastColumn(ctx)
	if err != nil {
		return tracker.AnalyzeOutput{}, fmt.Errorf("failed to read last column: %w", err)
	}

	rows, err := sh.ReadRange(ctx, 2, 1, lastRow, lastCol)
	if err != nil {
		return tracker.AnalyzeOutput{}, fmt.Errorf("failed to read data rows: %w", err)
	}

	statuses := make(map[string]int)
	for _, row := range rows {
		if appliedCol > len(row) || !isApplied(row[appliedCol-1]) {
			continue
		}
		out.TotalApplied++

		status := "applied"
		if statusCol != 0 && statusCol <= len(row) {
			if text := strings.ToLower(strings.TrimSpace(row[statusCol-1].Text())); text != "" {
				status = text
			}
		}
		statuses[status]++
	}

	if out.TotalApplied == 0 {
		return out, nil
	}

	// An offer implies an interview happened.
	out.Interviews = statuses["interview"] + statuses["offer"]
	out.Offers = statuses["offer"]
	out.Ghosted = out.TotalApplied - out.Interviews

	out.InterviewRate = float64(out.Interviews) / float64(out.TotalApplied) * 100
	out.OfferRate = float64(out.Offers) / float64(out.TotalApplied) * 100
	out.GhostedRate = float64(out.Ghosted) / float64(out.TotalApplied) * 100

	for s, n := range statuses {
		out.Statuses = append(out.Statuses, tracker.StatusCount{Status: s, Count: n})
	}
	sort.Slice(out.Statuses, func(i, j int) bool {
		return out.Statuses[i].Status < out.Statuses[j].Status
	})

	uc.l.Infof(ctx, "Analyze: sheet=%s applied=%d interviews=%d offers=%d",
		input.SheetID, out.TotalApplied, out.Interviews, out.Offers)
	return out, nil
}
