package http

import (
	"context"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker"
	"apply-tracker/internal/tracker/repository"
)

// --- Request DTOs ---

type createSheetReq struct {
	ID      string   `json:"id"      binding:"omitempty,max=255"`
	Headers []string `json:"headers" binding:"required,min=1"`
	Rows    [][]any  `json:"rows"`
}

type filterReq struct {
	MasterSheetID string `json:"master_sheet_id" binding:"required,max=255"`
	KeyColumn     string `json:"key_column"      binding:"omitempty,max=255"`
}

func (r filterReq) toInput(targetID string) tracker.FilterInput {
	return tracker.FilterInput{
		TargetSheetID: targetID,
		MasterSheetID: r.MasterSheetID,
		KeyColumn:     r.KeyColumn,
	}
}

func (r createSheetReq) toOptions() repository.CreateSheetOptions {
	rows := make([][]model.Cell, len(r.Rows))
	for i, row := range r.Rows {
		cells := make([]model.Cell, len(row))
		for j, v := range row {
			cells[j] = model.CellOf(v)
		}
		rows[i] = cells
	}
	return repository.CreateSheetOptions{
		ID:      r.ID,
		Headers: r.Headers,
		Rows:    rows,
	}
}

// --- Response DTOs ---

type provisionResp struct {
	Column       int  `json:"column"`
	Created      bool `json:"created"`
	CheckboxRows int  `json:"checkbox_rows"`
}

func newProvisionResp(out tracker.EnsureColumnOutput) provisionResp {
	return provisionResp{
		Column:       out.Column,
		Created:      out.Created,
		CheckboxRows: out.CheckboxRows,
	}
}

type statsResp struct {
	TotalRows   int                  `json:"total_rows"`
	Applied     int                  `json:"applied"`
	NotApplied  int                  `json:"not_applied"`
	GroupColumn string               `json:"group_column,omitempty"`
	Groups      []tracker.GroupCount `json:"groups,omitempty"`
}

func newStatsResp(out tracker.StatsOutput) statsResp {
	return statsResp{
		TotalRows:   out.TotalRows,
		Applied:     out.Applied,
		NotApplied:  out.NotApplied,
		GroupColumn: out.GroupColumn,
		Groups:      out.Groups,
	}
}

type analyzeResp struct {
	TotalApplied  int                   `json:"total_applied"`
	Interviews    int                   `json:"interviews"`
	Offers        int                   `json:"offers"`
	Ghosted       int                   `json:"ghosted"`
	InterviewRate float64               `json:"interview_rate"`
	OfferRate     float64               `json:"offer_rate"`
	GhostedRate   float64               `json:"ghosted_rate"`
	Statuses      []tracker.StatusCount `json:"statuses,omitempty"`
}

func newAnalyzeResp(out tracker.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		TotalApplied:  out.TotalApplied,
		Interviews:    out.Interviews,
		Offers:        out.Offers,
		Ghosted:       out.Ghosted,
		InterviewRate: out.InterviewRate,
		OfferRate:     out.OfferRate,
		GhostedRate:   out.GhostedRate,
		Statuses:      out.Statuses,
	}
}

type filterResp struct {
	MasterApplied int `json:"master_applied"`
	Removed       int `json:"removed"`
	Remaining     int `json:"remaining"`
}

func newFilterResp(out tracker.FilterOutput) filterResp {
	return filterResp{
		MasterApplied: out.MasterApplied,
		Removed:       out.Removed,
		Remaining:     out.Remaining,
	}
}

type createSheetResp struct {
	ID string `json:"id"`
}

type sheetResp struct {
	ID      string  `json:"id"`
	Rows    int     `json:"rows"`
	Columns int     `json:"columns"`
	Values  [][]any `json:"values"`
}

func (h *handler) newSheetResp(ctx context.Context, id string, sh repository.Sheet) (sheetResp, error) {
	lastRow, err := sh.LastRow(ctx)
	if err != nil {
		return sheetResp{}, err
	}
	lastCol, err := sh.LastColumn(ctx)
	if err != nil {
		return sheetResp{}, err
	}

	resp := sheetResp{ID: id, Rows: lastRow, Columns: lastCol, Values: [][]any{}}
	if lastRow == 0 || lastCol == 0 {
		return resp, nil
	}

	block, err := sh.ReadRange(ctx, 1, 1, lastRow, lastCol)
	if err != nil {
		return sheetResp{}, err
	}
	for _, row := range block {
		vals := make([]any, len(row))
		for i, cell := range row {
			vals[i] = cell.Value()
		}
		resp.Values = append(resp.Values, vals)
	}
	return resp, nil
}
