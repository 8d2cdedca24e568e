package model

import "time"

// EditEvent is a single-cell edit delivered by the spreadsheet host.
// Row and Column are 1-based; row 1 is the header row.
// Multi-cell range edits are split by the producer: the core only ever
// sees one (row, column, value) triple per event.
type EditEvent struct {
	ID         string    // Assigned on receipt
	SheetID    string    // Sheet the edit happened on
	Row        int       // 1-based row of the edited cell
	Column     int       // 1-based column of the edited cell
	Value      Cell      // New value of the cell
	ReceivedAt time.Time // When the event entered the system
}

// Color is a hex RGB string like "#B7E1CD". The empty string means no fill.
type Color string

// NoFill clears a background back to the sheet default.
const NoFill Color = ""
