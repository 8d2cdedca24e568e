package gsheets

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/api/sheets/v4"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker/repository"
	pkgGSheets "apply-tracker/pkg/gsheets"
	pkgLog "apply-tracker/pkg/log"
)

// Sheet is a Google Sheets tab exposed through the grid interface.
// Values go through the Values API; checkboxes and backgrounds go through
// batchUpdate structural requests.
type Sheet struct {
	l             pkgLog.Logger
	client        *pkgGSheets.Client
	spreadsheetID string
	title         string
	gridID        int64
}

var _ repository.Sheet = (*Sheet)(nil)

// LastRow returns the number of rows carrying values.
func (s *Sheet) LastRow(ctx context.Context) (int, error) {
	values, err := s.client.GetValues(ctx, s.spreadsheetID, s.quotedTitle())
	if err != nil {
		return 0, err
	}
	return len(values), nil
}

// LastColumn returns the widest row carrying values.
func (s *Sheet) LastColumn(ctx context.Context) (int, error) {
	values, err := s.client.GetValues(ctx, s.spreadsheetID, s.quotedTitle())
	if err != nil {
		return 0, err
	}
	max := 0
	for _, row := range values {
		if len(row) > max {
			max = len(row)
		}
	}
	return max, nil
}

// ReadRange returns the rectangle between the inclusive corners.
func (s *Sheet) ReadRange(ctx context.Context, startRow, startCol, endRow, endCol int) ([][]model.Cell, error) {
	if startRow < 1 || startCol < 1 || endRow < startRow || endCol < startCol {
		return nil, nil
	}

	rng := fmt.Sprintf("%s!%s%d:%s%d", s.quotedTitle(), columnName(startCol), startRow, columnName(endCol), endRow)
	values, err := s.client.GetValues(ctx, s.spreadsheetID, rng)
	if err != nil {
		return nil, err
	}

	// The API trims trailing empty rows/cells; pad back to the full rectangle.
	out := make([][]model.Cell, endRow-startRow+1)
	for r := range out {
		row := make([]model.Cell, endCol-startCol+1)
		for c := range row {
			row[c] = model.EmptyCell()
		}
		if r < len(values) {
			for c, v := range values[r] {
				if c < len(row) {
					row[c] = model.CellOf(v)
				}
			}
		}
		out[r] = row
	}
	return out, nil
}

// SetValue writes a single cell.
func (s *Sheet) SetValue(ctx context.Context, row, col int, value model.Cell) error {
	rng := fmt.Sprintf("%s!%s%d", s.quotedTitle(), columnName(col), row)
	return s.client.UpdateValues(ctx, s.spreadsheetID, rng, [][]interface{}{{value.Value()}})
}

// InsertCheckboxes applies a BOOLEAN data validation rule to the column
// segment, which renders the cells as checkboxes. Existing boolean values
// stay; everything else reads back as unchecked.
func (s *Sheet) InsertCheckboxes(ctx context.Context, col, startRow, endRow int) error {
	req := &sheets.Request{
		SetDataValidation: &sheets.SetDataValidationRequest{
			Range: s.gridRange(startRow, col, endRow, col),
			Rule: &sheets.DataValidationRule{
				Condition: &sheets.BooleanCondition{Type: "BOOLEAN"},
				ShowCustomUi: true,
			},
		},
	}
	return s.client.BatchUpdate(ctx, s.spreadsheetID, []*sheets.Request{req})
}

// SetRowBackground paints or clears the background of a row segment.
func (s *Sheet) SetRowBackground(ctx context.Context, row, startCol, endCol int, color model.Color) error {
	cell := &sheets.CellData{}
	if color != model.NoFill {
		rgb, err := parseHexColor(string(color))
		if err != nil {
			return err
		}
		cell.UserEnteredFormat = &sheets.CellFormat{BackgroundColor: rgb}
	} else {
		// Empty format with the backgroundColor field mask resets to default.
		cell.UserEnteredFormat = &sheets.CellFormat{}
	}

	req := &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range:  s.gridRange(row, startCol, row, endCol),
			Cell:   cell,
			Fields: "userEnteredFormat.backgroundColor",
		},
	}
	return s.client.BatchUpdate(ctx, s.spreadsheetID, []*sheets.Request{req})
}

// DeleteRow removes a row, shifting the rows below it up.
func (s *Sheet) DeleteRow(ctx context.Context, row int) error {
	req := &sheets.Request{
		DeleteDimension: &sheets.DeleteDimensionRequest{
			Range: &sheets.DimensionRange{
				SheetId:    s.gridID,
				Dimension:  "ROWS",
				StartIndex: int64(row - 1),
				EndIndex:   int64(row),
			},
		},
	}
	return s.client.BatchUpdate(ctx, s.spreadsheetID, []*sheets.Request{req})
}

func (s *Sheet) quotedTitle() string {
	return "'" + s.title + "'"
}

// gridRange converts 1-based inclusive coordinates to the API's 0-based
// half-open GridRange.
func (s *Sheet) gridRange(startRow, startCol, endRow, endCol int) *sheets.GridRange {
	return &sheets.GridRange{
		SheetId:          s.gridID,
		StartRowIndex:    int64(startRow - 1),
		EndRowIndex:      int64(endRow),
		StartColumnIndex: int64(startCol - 1),
		EndColumnIndex:   int64(endCol),
	}
}

// columnName converts a 1-based column number to its A1 letter form.
func columnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}

// parseHexColor converts "#RRGGBB" to the API's float color.
func parseHexColor(hex string) (*sheets.Color, error) {
	if len(hex) == 7 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return &sheets.Color{
		Red:   float64(v>>16&0xFF) / 255,
		Green: float64(v>>8&0xFF) / 255,
		Blue:  float64(v&0xFF) / 255,
	}, nil
}
