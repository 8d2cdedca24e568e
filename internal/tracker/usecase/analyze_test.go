package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker"
	"apply-tracker/internal/tracker/usecase"
)

func TestAnalyzeFunnel(t *testing.T) {
	ctx := context.Background()
	store, _, id, notifier := buildSheet(t, []string{"company", "Applied", "Status"}, [][]model.Cell{
		{model.StringCell("Acme"), model.BoolCell(true), model.StringCell("Interview")},
		{model.StringCell("Globex"), model.BoolCell(true), model.StringCell("offer")},
		{model.StringCell("Initech"), model.BoolCell(true), model.EmptyCell()},
		{model.StringCell("Hooli"), model.StringCell("YES"), model.StringCell("rejected")},
		{model.StringCell("Umbrella"), model.BoolCell(false), model.StringCell("interview")}, // not applied
	})
	uc := usecase.New(&mockLogger{}, store, notifier)

	out, err := uc.Analyze(ctx, model.Scope{}, tracker.AnalyzeInput{SheetID: id})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if out.TotalApplied != 4 {
		t.Fatalf("total applied = %d, want 4", out.TotalApplied)
	}
	// An offer implies an interview.
	if out.Interviews != 2 || out.Offers != 1 || out.Ghosted != 2 {
		t.Errorf("unexpected funnel: %+v", out)
	}
	if math.Abs(out.InterviewRate-50) > 0.001 || math.Abs(out.OfferRate-25) > 0.001 {
		t.Errorf("unexpected rates: %+v", out)
	}

	want := []tracker.StatusCount{
		{Status: "applied", Count: 1},
		{Status: "interview", Count: 1},
		{Status: "offer", Count: 1},
		{Status: "rejected", Count: 1},
	}
	if len(out.Statuses) != len(want) {
		t.Fatalf("unexpected statuses: %+v", out.Statuses)
	}
	for i, w := range want {
		if out.Statuses[i] != w {
			t.Errorf("status[%d] = %+v, want %+v", i, out.Statuses[i], w)
		}
	}
}

func TestAnalyzeWithoutStatusColumn(t *testing.T) {
	ctx := context.Background()
	store, _, id, notifier := buildSheet(t, []string{"company", "Applied"}, [][]model.Cell{
		{model.StringCell("Acme"), model.BoolCell(true)},
		{model.StringCell("Globex"), model.BoolCell(true)},
	})
	uc := usecase.New(&mockLogger{}, store, notifier)

	out, err := uc.Analyze(ctx, model.Scope{}, tracker.AnalyzeInput{SheetID: id})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if out.TotalApplied != 2 || out.Interviews != 0 || out.Ghosted != 2 {
		t.Errorf("unexpected funnel: %+v", out)
	}
	if len(out.Statuses) != 1 || out.Statuses[0].Status != "applied" || out.Statuses[0].Count != 2 {
		t.Errorf("all rows should fall back to the applied status: %+v", out.Statuses)
	}
}

func TestAnalyzeWithoutAppliedRows(t *testing.T) {
	ctx := context.Background()
	store, _, id, notifier := buildSheet(t, []string{"company", "Applied", "Status"}, [][]model.Cell{
		{model.StringCell("Acme"), model.BoolCell(false), model.StringCell("interview")},
	})
	uc := usecase.New(&mockLogger{}, store, notifier)

	out, err := uc.Analyze(ctx, model.Scope{}, tracker.AnalyzeInput{SheetID: id})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if out.TotalApplied != 0 || len(out.Statuses) != 0 || out.GhostedRate != 0 {
		t.Errorf("expected empty funnel, got %+v", out)
	}
}

func TestAnalyzeUnknownSheet(t *testing.T) {
	store, _, _, notifier := buildSheet(t, []string{"Applied"}, nil)
	uc := usecase.New(&mockLogger{}, store, notifier)

	_, err := uc.Analyze(context.Background(), model.Scope{}, tracker.AnalyzeInput{SheetID: "nope"})
	if !errors.Is(err, tracker.ErrSheetNotFound) {
		t.Fatalf("expected ErrSheetNotFound, got %v", err)
	}
}

// Accepted textual applied markers beyond TRUE.
func TestStatsCountsCSVAppliedVariants(t *testing.T) {
	ctx := context.Background()
	store, _, id, notifier := buildSheet(t, []string{"company", "Applied"}, [][]model.Cell{
		{model.StringCell("A"), model.StringCell("yes")},
		{model.StringCell("B"), model.StringCell("Y")},
		{model.StringCell("C"), model.NumberCell(1)},
		{model.StringCell("D"), model.StringCell("no")},
		{model.StringCell("E"), model.NumberCell(0)},
	})
	uc := usecase.New(&mockLogger{}, store, notifier)

	out, err := uc.Stats(ctx, model.Scope{}, tracker.StatsInput{SheetID: id})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if out.Applied != 3 || out.NotApplied != 2 {
		t.Errorf("unexpected counts: %+v", out)
	}
}
