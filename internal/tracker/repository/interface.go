package repository

import (
	"context"

	"apply-tracker/internal/model"
)

// SheetRepository resolves sheet handles by ID.
// What an ID means is backend-specific: a generated UUID for the in-memory
// store, a tab title for Google Sheets, a worksheet name for xlsx files.
type SheetRepository interface {
	Sheet(ctx context.Context, id string) (Sheet, error)
}

// Sheet exposes the grid operations of a single spreadsheet tab.
// All coordinates are 1-based; row 1 is the header row.
type Sheet interface {
	// LastRow returns the last row containing data, 0 for an empty sheet.
	LastRow(ctx context.Context) (int, error)

	// LastColumn returns the last column containing data, 0 for an empty sheet.
	LastColumn(ctx context.Context) (int, error)

	// ReadRange returns the rectangular block of cells between the given
	// inclusive corners. Cells outside the written area come back empty.
	ReadRange(ctx context.Context, startRow, startCol, endRow, endCol int) ([][]model.Cell, error)

	// SetValue writes a single cell.
	SetValue(ctx context.Context, row, col int, value model.Cell) error

	// InsertCheckboxes converts rows startRow..endRow (inclusive) of the
	// given column to checkbox cells. Boolean-compatible values are kept as
	// checkbox state; everything else becomes unchecked.
	InsertCheckboxes(ctx context.Context, col, startRow, endRow int) error

	// SetRowBackground sets the background of columns startCol..endCol of a
	// row. model.NoFill clears back to the sheet default.
	SetRowBackground(ctx context.Context, row, startCol, endCol int, color model.Color) error

	// DeleteRow removes a row, shifting the rows below it up.
	DeleteRow(ctx context.Context, row int) error
}

// CreateSheetOptions configures sheet creation on backends that support it.
type CreateSheetOptions struct {
	ID      string // optional; backends generate one when empty
	Headers []string
	Rows    [][]model.Cell
}

// Creator is implemented by repositories that can create sheets on demand.
type Creator interface {
	CreateSheet(ctx context.Context, opts CreateSheetOptions) (Sheet, string, error)
}
