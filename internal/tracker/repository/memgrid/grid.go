package memgrid

import (
	"context"
	"sync"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker/repository"
)

// Sheet is an in-memory 2-D grid of cells with per-cell backgrounds.
// A single mutex serializes all access, matching the host model where
// edit events are delivered one at a time per sheet.
type Sheet struct {
	mu     sync.Mutex
	cells  [][]model.Cell
	colors [][]model.Color
}

var _ repository.Sheet = (*Sheet)(nil)

func newSheet() *Sheet {
	return &Sheet{}
}

// LastRow returns the number of rows written so far.
func (s *Sheet) LastRow(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cells), nil
}

// LastColumn returns the widest written row.
func (s *Sheet) LastColumn(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	max := 0
	for _, row := range s.cells {
		if len(row) > max {
			max = len(row)
		}
	}
	return max, nil
}

// ReadRange returns the rectangle between the inclusive corners.
// Cells outside the written area come back empty.
func (s *Sheet) ReadRange(ctx context.Context, startRow, startCol, endRow, endCol int) ([][]model.Cell, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if startRow < 1 || startCol < 1 || endRow < startRow || endCol < startCol {
		return nil, nil
	}

	out := make([][]model.Cell, 0, endRow-startRow+1)
	for r := startRow; r <= endRow; r++ {
		row := make([]model.Cell, 0, endCol-startCol+1)
		for c := startCol; c <= endCol; c++ {
			row = append(row, s.cellLocked(r, c))
		}
		out = append(out, row)
	}
	return out, nil
}

// SetValue writes a single cell, growing the grid as needed.
func (s *Sheet) SetValue(ctx context.Context, row, col int, value model.Cell) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setValueLocked(row, col, value)
	return nil
}

// InsertCheckboxes converts a column segment to checkbox cells.
// Boolean values keep their state; anything else resets to unchecked.
func (s *Sheet) InsertCheckboxes(ctx context.Context, col, startRow, endRow int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for r := startRow; r <= endRow; r++ {
		cur := s.cellLocked(r, col)
		cb := model.BoolCell(cur.Kind == model.CellBool && cur.Bool)
		cb.Checkbox = true
		s.setValueLocked(r, col, cb)
	}
	return nil
}

// SetRowBackground sets the background of a row segment.
func (s *Sheet) SetRowBackground(ctx context.Context, row, startCol, endCol int, color model.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for c := startCol; c <= endCol; c++ {
		s.growLocked(row, c)
		s.colors[row-1][c-1] = color
	}
	return nil
}

// DeleteRow removes a row, shifting the rows below it up.
func (s *Sheet) DeleteRow(ctx context.Context, row int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if row < 1 || row > len(s.cells) {
		return nil
	}
	s.cells = append(s.cells[:row-1], s.cells[row:]...)
	s.colors = append(s.colors[:row-1], s.colors[row:]...)
	return nil
}

// Background returns the stored background of a cell. Used by tests and the
// dev API grid dump.
func (s *Sheet) Background(row, col int) model.Color {
	s.mu.Lock()
	defer s.mu.Unlock()

	if row < 1 || col < 1 || row > len(s.colors) || col > len(s.colors[row-1]) {
		return model.NoFill
	}
	return s.colors[row-1][col-1]
}

// Value returns the stored cell. Used by tests and the dev API grid dump.
func (s *Sheet) Value(row, col int) model.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cellLocked(row, col)
}

func (s *Sheet) cellLocked(row, col int) model.Cell {
	if row < 1 || col < 1 || row > len(s.cells) || col > len(s.cells[row-1]) {
		return model.EmptyCell()
	}
	return s.cells[row-1][col-1]
}

func (s *Sheet) setValueLocked(row, col int, value model.Cell) {
	s.growLocked(row, col)
	s.cells[row-1][col-1] = value
}

// growLocked extends the grid so that (row, col) exists.
func (s *Sheet) growLocked(row, col int) {
	for len(s.cells) < row {
		s.cells = append(s.cells, nil)
		s.colors = append(s.colors, nil)
	}
	for len(s.cells[row-1]) < col {
		s.cells[row-1] = append(s.cells[row-1], model.EmptyCell())
	}
	for len(s.colors[row-1]) < col {
		s.colors[row-1] = append(s.colors[row-1], model.NoFill)
	}
}
