package tracker

import "apply-tracker/internal/model"

// AppliedHeader is the header text identifying the tracked column.
// Matching is exact and case-sensitive; the first match left to right wins.
const AppliedHeader = "Applied"

// HighlightColor is the row background applied to checked rows.
const HighlightColor model.Color = "#B7E1CD"

// EnsureColumnInput is the input for column provisioning.
type EnsureColumnInput struct {
	SheetID string
}

// EnsureColumnOutput describes what provisioning did.
type EnsureColumnOutput struct {
	Column       int  // 1-based column holding the Applied header
	Created      bool // true when a new column was appended
	CheckboxRows int  // number of data rows converted to checkboxes
}

// ApplyEditInput is the input for the edit reactor.
type ApplyEditInput struct {
	Event model.EditEvent
}

// EditOutcome names what the edit reactor decided to do.
type EditOutcome string

const (
	OutcomeHighlighted     EditOutcome = "highlighted"
	OutcomeCleared         EditOutcome = "cleared"
	OutcomeSkippedHeader   EditOutcome = "skipped_header"
	OutcomeSkippedColumn   EditOutcome = "skipped_column"
	OutcomeNoAppliedColumn EditOutcome = "no_applied_column"
)

// ApplyEditOutput is the result of processing one edit event.
type ApplyEditOutput struct {
	Outcome EditOutcome
	Row     int         // edited row, echoed back
	Color   model.Color // color written, empty when cleared or skipped
}

// StatusHeader is the header text of the free-form status column read by the
// funnel analysis. Matching follows the same exact, case-sensitive rule as
// AppliedHeader.
const StatusHeader = "Status"

// DefaultFilterKey is the key column used to match rows between sheets when
// none is given.
const DefaultFilterKey = "apply_url"

// StatsInput is the input for the stats report.
type StatsInput struct {
	SheetID string
	GroupBy string // header of the breakdown column; empty disables grouping
}

// GroupCount is one entry of the per-group breakdown.
type GroupCount struct {
	Group string `json:"group"`
	Count int    `json:"count"`
}

// StatsOutput is the stats report for one sheet.
type StatsOutput struct {
	TotalRows   int          `json:"total_rows"`
	Applied     int          `json:"applied"`
	NotApplied  int          `json:"not_applied"`
	Groups      []GroupCount `json:"groups,omitempty"`
	GroupColumn string       `json:"group_column,omitempty"`
}

// AnalyzeInput is the input for the application funnel analysis.
type AnalyzeInput struct {
	SheetID string
}

// StatusCount is one entry of the per-status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// AnalyzeOutput is the funnel report over the applied rows of one sheet.
// An offer implies an interview; ghosted is every application that has not
// reached an interview yet. Rates are percentages of the applied total.
type AnalyzeOutput struct {
	TotalApplied  int           `json:"total_applied"`
	Interviews    int           `json:"interviews"`
	Offers        int           `json:"offers"`
	Ghosted       int           `json:"ghosted"`
	InterviewRate float64       `json:"interview_rate"`
	OfferRate     float64       `json:"offer_rate"`
	GhostedRate   float64       `json:"ghosted_rate"`
	Statuses      []StatusCount `json:"statuses,omitempty"`
}

// FilterInput is the input for the applied-row filter. Rows of the target
// sheet whose key cell matches the key of an applied row on the master sheet
// are removed from the target.
type FilterInput struct {
	TargetSheetID string
	MasterSheetID string
	KeyColumn     string // header of the key column; empty means DefaultFilterKey
}

// FilterOutput reports what the filter removed.
type FilterOutput struct {
	MasterApplied int `json:"master_applied"` // applied keys collected from the master sheet
	Removed       int `json:"removed"`        // rows deleted from the target sheet
	Remaining     int `json:"remaining"`      // data rows left on the target sheet
}
