package usecase_test

import (
	"context"
	"testing"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker"
	"apply-tracker/internal/tracker/usecase"
)

func TestStatsCountsAndGroups(t *testing.T) {
	ctx := context.Background()
	store, _, id, notifier := buildSheet(t, []string{"company", "title", "Applied"}, [][]model.Cell{
		{model.StringCell("Acme"), model.StringCell("SWE"), model.BoolCell(true)},
		{model.StringCell("Acme"), model.StringCell("SRE"), model.StringCell("TRUE")}, // CSV-import style
		{model.StringCell("Initech"), model.StringCell("SWE"), model.BoolCell(false)},
		{model.EmptyCell(), model.StringCell("SWE"), model.BoolCell(true)},
	})
	uc := usecase.New(&mockLogger{}, store, notifier)

	out, err := uc.Stats(ctx, model.Scope{}, tracker.StatsInput{SheetID: id, GroupBy: "company"})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if out.TotalRows != 4 || out.Applied != 3 || out.NotApplied != 1 {
		t.Errorf("unexpected counts: %+v", out)
	}
	if out.GroupColumn != "company" || len(out.Groups) != 2 {
		t.Fatalf("unexpected groups: %+v", out.Groups)
	}
	// Sorted by count descending.
	if out.Groups[0].Group != "Acme" || out.Groups[0].Count != 2 {
		t.Errorf("unexpected top group: %+v", out.Groups[0])
	}
	if out.Groups[1].Group != "Unknown" || out.Groups[1].Count != 1 {
		t.Errorf("missing group value should report as Unknown: %+v", out.Groups[1])
	}
}

func TestStatsWithoutAppliedColumn(t *testing.T) {
	ctx := context.Background()
	store, _, id, notifier := buildSheet(t, []string{"company", "title"}, [][]model.Cell{
		{model.StringCell("Acme"), model.StringCell("SWE")},
	})
	uc := usecase.New(&mockLogger{}, store, notifier)

	out, err := uc.Stats(ctx, model.Scope{}, tracker.StatsInput{SheetID: id})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if out.TotalRows != 1 || out.Applied != 0 || out.NotApplied != 1 {
		t.Errorf("sheet without Applied column should count zero applied: %+v", out)
	}
}

func TestStatsHeaderOnlySheet(t *testing.T) {
	ctx := context.Background()
	store, _, id, notifier := buildSheet(t, []string{"company", "Applied"}, nil)
	uc := usecase.New(&mockLogger{}, store, notifier)

	out, err := uc.Stats(ctx, model.Scope{}, tracker.StatsInput{SheetID: id})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if out.TotalRows != 0 || out.Applied != 0 {
		t.Errorf("expected empty report, got %+v", out)
	}
}
