package tracker

import (
	"context"

	"apply-tracker/internal/model"
)

// UseCase defines the business logic interface for the tracker domain.
type UseCase interface {
	// EnsureAppliedColumn idempotently provisions the "Applied" checkbox
	// column on a sheet: reuses an existing column when present, otherwise
	// appends one after the last used column, then converts all data rows
	// of that column to checkboxes.
	EnsureAppliedColumn(ctx context.Context, sc model.Scope, input EnsureColumnInput) (EnsureColumnOutput, error)

	// ApplyEdit reacts to a single-cell edit event. Edits to the header row,
	// to other columns, or on sheets without an Applied column are skipped.
	// Otherwise the full edited row is highlighted when the new value is the
	// boolean true and cleared for anything else.
	ApplyEdit(ctx context.Context, sc model.Scope, input ApplyEditInput) (ApplyEditOutput, error)

	// Stats counts applied vs. total data rows, with an optional per-group
	// breakdown over a named column.
	Stats(ctx context.Context, sc model.Scope, input StatsInput) (StatsOutput, error)

	// Analyze builds the application funnel report: per-status tallies over
	// the Status column of applied rows, plus interview/offer/ghosted rates.
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)

	// FilterApplied removes rows from the target sheet whose key cell matches
	// an applied row of the master sheet.
	FilterApplied(ctx context.Context, sc model.Scope, input FilterInput) (FilterOutput, error)
}
