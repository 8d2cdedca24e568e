package usecase

import (
	"context"
	"fmt"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker"
)

// ApplyEdit reacts to a single-cell edit event. Only edits that land on the
// Applied column below the header row change anything: the whole row is
// painted when the new value is the boolean true, cleared otherwise. The
// column is resolved by header lookup on every event and is never
// auto-provisioned here.
func (uc *implUseCase) ApplyEdit(ctx context.Context, sc model.Scope, input tracker.ApplyEditInput) (tracker.ApplyEditOutput, error) {
	ev := input.Event
	if ev.Row < 1 || ev.Column < 1 {
		return tracker.ApplyEditOutput{}, tracker.ErrInvalidEvent
	}

	// Header row edits never touch highlights.
	if ev.Row == 1 {
		return tracker.ApplyEditOutput{Outcome: tracker.OutcomeSkippedHeader, Row: ev.Row}, nil
	}

	sh, err := uc.sheet(ctx, ev.SheetID)
	if err != nil {
		return tracker.ApplyEditOutput{}, err
	}

	col, err := findColumn(ctx, sh, tracker.AppliedHeader)
	if err != nil {
		return tracker.ApplyEditOutput{}, err
	}
	if col == 0 {
		return tracker.ApplyEditOutput{Outcome: tracker.OutcomeNoAppliedColumn, Row: ev.Row}, nil
	}
	if ev.Column != col {
		return tracker.ApplyEditOutput{Outcome: tracker.OutcomeSkippedColumn, Row: ev.Row}, nil
	}

	lastCol, err := sh.LastColumn(ctx)
	if err != nil {
		return tracker.ApplyEditOutput{}, fmt.Errorf("failed to read last column: %w", err)
	}

	color := model.NoFill
	outcome := tracker.OutcomeCleared
	if ev.Value.IsChecked() {
		color = tracker.HighlightColor
		outcome = tracker.OutcomeHighlighted
	}

	if err := sh.SetRowBackground(ctx, ev.Row, 1, lastCol, color); err != nil {
		return tracker.ApplyEditOutput{}, fmt.Errorf("failed to set row background: %w", err)
	}

	uc.l.Debugf(ctx, "ApplyEdit: event=%s sheet=%s row=%d outcome=%s", ev.ID, ev.SheetID, ev.Row, outcome)

	return tracker.ApplyEditOutput{
		Outcome: outcome,
		Row:     ev.Row,
		Color:   color,
	}, nil
}
