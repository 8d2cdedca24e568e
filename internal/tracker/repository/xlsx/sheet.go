package xlsx

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker/repository"
	pkgLog "apply-tracker/pkg/log"
)

// Sheet is one worksheet of an open workbook.
type Sheet struct {
	l    pkgLog.Logger
	file *excelize.File
	name string

	// style cache per fill color, the zero style clears
	styles map[model.Color]int
}

var _ repository.Sheet = (*Sheet)(nil)

// LastRow returns the number of rows carrying values.
func (s *Sheet) LastRow(ctx context.Context) (int, error) {
	rows, err := s.file.GetRows(s.name)
	if err != nil {
		return 0, fmt.Errorf("failed to read rows: %w", err)
	}
	return len(rows), nil
}

// LastColumn returns the widest row carrying values.
func (s *Sheet) LastColumn(ctx context.Context) (int, error) {
	rows, err := s.file.GetRows(s.name)
	if err != nil {
		return 0, fmt.Errorf("failed to read rows: %w", err)
	}
	max := 0
	for _, row := range rows {
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

	out := make([][]model.Cell, 0, endRow-startRow+1)
	for r := startRow; r <= endRow; r++ {
		row := make([]model.Cell, 0, endCol-startCol+1)
		for c := startCol; c <= endCol; c++ {
			cell, err := s.readCell(r, c)
			if err != nil {
				return nil, err
			}
			row = append(row, cell)
		}
		out = append(out, row)
	}
	return out, nil
}

// SetValue writes a single cell.
func (s *Sheet) SetValue(ctx context.Context, row, col int, value model.Cell) error {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("invalid coordinates (%d,%d): %w", row, col, err)
	}
	if err := s.file.SetCellValue(s.name, axis, value.Value()); err != nil {
		return fmt.Errorf("failed to write cell %s: %w", axis, err)
	}
	return nil
}

// InsertCheckboxes converts a column segment to boolean cells with checkbox
// form controls. Existing boolean values keep their state.
func (s *Sheet) InsertCheckboxes(ctx context.Context, col, startRow, endRow int) error {
	for r := startRow; r <= endRow; r++ {
		cur, err := s.readCell(r, col)
		if err != nil {
			return err
		}
		checked := cur.Kind == model.CellBool && cur.Bool

		axis, err := excelize.CoordinatesToCellName(col, r)
		if err != nil {
			return fmt.Errorf("invalid coordinates (%d,%d): %w", r, col, err)
		}
		if err := s.file.SetCellBool(s.name, axis, checked); err != nil {
			return fmt.Errorf("failed to write checkbox value %s: %w", axis, err)
		}
		if err := s.file.AddFormControl(s.name, excelize.FormControl{
			Cell:     axis,
			Type:     excelize.FormControlCheckBox,
			Checked:  checked,
			CellLink: axis,
		}); err != nil {
			return fmt.Errorf("failed to add checkbox control %s: %w", axis, err)
		}
	}
	return nil
}

// SetRowBackground fills or clears the background of a row segment.
func (s *Sheet) SetRowBackground(ctx context.Context, row, startCol, endCol int, color model.Color) error {
	start, err := excelize.CoordinatesToCellName(startCol, row)
	if err != nil {
		return fmt.Errorf("invalid coordinates (%d,%d): %w", row, startCol, err)
	}
	end, err := excelize.CoordinatesToCellName(endCol, row)
	if err != nil {
		return fmt.Errorf("invalid coordinates (%d,%d): %w", row, endCol, err)
	}

	styleID := 0
	if color != model.NoFill {
		styleID, err = s.fillStyle(color)
		if err != nil {
			return err
		}
	}
	if err := s.file.SetCellStyle(s.name, start, end, styleID); err != nil {
		return fmt.Errorf("failed to style %s:%s: %w", start, end, err)
	}
	return nil
}

// DeleteRow removes a row, shifting the rows below it up.
func (s *Sheet) DeleteRow(ctx context.Context, row int) error {
	if err := s.file.RemoveRow(s.name, row); err != nil {
		return fmt.Errorf("failed to remove row %d: %w", row, err)
	}
	return nil
}

func (s *Sheet) fillStyle(color model.Color) (int, error) {
	if s.styles == nil {
		s.styles = make(map[model.Color]int)
	}
	if id, ok := s.styles[color]; ok {
		return id, nil
	}

	id, err := s.file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{strings.TrimPrefix(string(color), "#")},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to build fill style for %s: %w", color, err)
	}
	s.styles[color] = id
	return id, nil
}

func (s *Sheet) readCell(row, col int) (model.Cell, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return model.Cell{}, fmt.Errorf("invalid coordinates (%d,%d): %w", row, col, err)
	}

	raw, err := s.file.GetCellValue(s.name, axis)
	if err != nil {
		return model.Cell{}, fmt.Errorf("failed to read cell %s: %w", axis, err)
	}
	if raw == "" {
		return model.EmptyCell(), nil
	}

	cellType, err := s.file.GetCellType(s.name, axis)
	if err != nil {
		return model.Cell{}, fmt.Errorf("failed to read cell type %s: %w", axis, err)
	}

	switch cellType {
	case excelize.CellTypeBool:
		return model.BoolCell(strings.EqualFold(raw, "TRUE") || raw == "1"), nil
	case excelize.CellTypeNumber:
		f, pErr := strconv.ParseFloat(raw, 64)
		if pErr != nil {
			return model.StringCell(raw), nil
		}
		return model.NumberCell(f), nil
	default:
		return model.StringCell(raw), nil
	}
}
