package usecase_test

import (
	"context"
	"errors"
	"testing"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker"
	"apply-tracker/internal/tracker/repository"
	"apply-tracker/internal/tracker/repository/memgrid"
	"apply-tracker/internal/tracker/usecase"
)

// addSheet creates a second sheet on an existing store.
func addSheet(t *testing.T, store *memgrid.Store, headers []string, rows [][]model.Cell) string {
	t.Helper()
	_, id, err := store.CreateSheet(context.Background(), repository.CreateSheetOptions{
		Headers: headers,
		Rows:    rows,
	})
	if err != nil {
		t.Fatalf("CreateSheet: %v", err)
	}
	return id
}

func TestFilterAppliedRemovesMatches(t *testing.T) {
	ctx := context.Background()
	store, _, masterID, notifier := buildSheet(t, []string{"company", "apply_url", "Applied"}, [][]model.Cell{
		{model.StringCell("Acme"), model.StringCell("https://acme.example/1"), model.BoolCell(true)},
		{model.StringCell("Globex"), model.StringCell("https://globex.example/2"), model.StringCell("YES")},
		{model.StringCell("Initech"), model.StringCell("https://initech.example/3"), model.BoolCell(false)},
	})
	targetID := addSheet(t, store, []string{"company", "title", "apply_url"}, [][]model.Cell{
		{model.StringCell("Acme"), model.StringCell("SWE"), model.StringCell("https://acme.example/1")},
		{model.StringCell("Hooli"), model.StringCell("SRE"), model.StringCell("https://hooli.example/9")},
		{model.StringCell("Globex"), model.StringCell("SWE"), model.StringCell("https://globex.example/2")},
		{model.StringCell("Initech"), model.StringCell("SWE"), model.StringCell("https://initech.example/3")},
	})
	uc := usecase.New(&mockLogger{}, store, notifier)

	out, err := uc.FilterApplied(ctx, model.Scope{}, tracker.FilterInput{
		TargetSheetID: targetID,
		MasterSheetID: masterID,
	})
	if err != nil {
		t.Fatalf("FilterApplied: %v", err)
	}

	// Initech is on the master but not applied, so its row survives.
	if out.MasterApplied != 2 || out.Removed != 2 || out.Remaining != 2 {
		t.Fatalf("unexpected output: %+v", out)
	}

	sh, err := store.Sheet(ctx, targetID)
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	rows, err := sh.ReadRange(ctx, 2, 1, 3, 3)
	if err != nil {
		t.Fatalf("ReadRange: %v", err)
	}
	if rows[0][0].Text() != "Hooli" || rows[1][0].Text() != "Initech" {
		t.Errorf("unexpected surviving rows: %+v", rows)
	}
}

func TestFilterAppliedKeepsRowsWithoutKey(t *testing.T) {
	ctx := context.Background()
	store, _, masterID, notifier := buildSheet(t, []string{"apply_url", "Applied"}, [][]model.Cell{
		{model.StringCell("https://acme.example/1"), model.BoolCell(true)},
	})
	targetID := addSheet(t, store, []string{"company", "apply_url"}, [][]model.Cell{
		{model.StringCell("NoURL"), model.EmptyCell()},
		{model.StringCell("Acme"), model.StringCell("https://acme.example/1")},
	})
	uc := usecase.New(&mockLogger{}, store, notifier)

	out, err := uc.FilterApplied(ctx, model.Scope{}, tracker.FilterInput{
		TargetSheetID: targetID,
		MasterSheetID: masterID,
	})
	if err != nil {
		t.Fatalf("FilterApplied: %v", err)
	}
	if out.Removed != 1 || out.Remaining != 1 {
		t.Fatalf("unexpected output: %+v", out)
	}

	sh, _ := store.Sheet(ctx, targetID)
	rows, err := sh.ReadRange(ctx, 2, 1, 2, 1)
	if err != nil {
		t.Fatalf("ReadRange: %v", err)
	}
	if rows[0][0].Text() != "NoURL" {
		t.Errorf("keyless row should survive, got %+v", rows[0][0])
	}
}

func TestFilterAppliedCustomKeyColumn(t *testing.T) {
	ctx := context.Background()
	store, _, masterID, notifier := buildSheet(t, []string{"company", "Applied"}, [][]model.Cell{
		{model.StringCell("Acme"), model.BoolCell(true)},
	})
	targetID := addSheet(t, store, []string{"company", "title"}, [][]model.Cell{
		{model.StringCell("Acme"), model.StringCell("SWE")},
		{model.StringCell("Globex"), model.StringCell("SWE")},
	})
	uc := usecase.New(&mockLogger{}, store, notifier)

	out, err := uc.FilterApplied(ctx, model.Scope{}, tracker.FilterInput{
		TargetSheetID: targetID,
		MasterSheetID: masterID,
		KeyColumn:     "company",
	})
	if err != nil {
		t.Fatalf("FilterApplied: %v", err)
	}
	if out.Removed != 1 || out.Remaining != 1 {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestFilterAppliedMissingColumns(t *testing.T) {
	ctx := context.Background()
	store, _, masterID, notifier := buildSheet(t, []string{"company"}, [][]model.Cell{
		{model.StringCell("Acme")},
	})
	targetID := addSheet(t, store, []string{"company", "apply_url"}, nil)
	uc := usecase.New(&mockLogger{}, store, notifier)

	// Master without an Applied column cannot be used as a filter source.
	_, err := uc.FilterApplied(ctx, model.Scope{}, tracker.FilterInput{
		TargetSheetID: targetID,
		MasterSheetID: masterID,
	})
	if !errors.Is(err, tracker.ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}

	// Target without the key column cannot be filtered.
	master2 := addSheet(t, store, []string{"apply_url", "Applied"}, [][]model.Cell{
		{model.StringCell("https://acme.example/1"), model.BoolCell(true)},
	})
	target2 := addSheet(t, store, []string{"company"}, [][]model.Cell{
		{model.StringCell("Acme")},
	})
	_, err = uc.FilterApplied(ctx, model.Scope{}, tracker.FilterInput{
		TargetSheetID: target2,
		MasterSheetID: master2,
	})
	if !errors.Is(err, tracker.ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}
}
