package model

import "strconv"

// CellKind discriminates the scalar types a sheet cell can hold.
type CellKind string

const (
	CellEmpty  CellKind = "empty"
	CellBool   CellKind = "bool"
	CellString CellKind = "string"
	CellNumber CellKind = "number"
)

// Cell is a single sheet cell. Hosts expose loosely typed scalars per cell;
// Kind tags which value field is meaningful. Checkbox marks the cell as
// rendered with a checkbox control (the value itself stays boolean).
type Cell struct {
	Kind     CellKind
	Bool     bool
	Str      string
	Number   float64
	Checkbox bool
}

// EmptyCell returns a cell with no value.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// BoolCell returns a boolean-valued cell.
func BoolCell(b bool) Cell {
	return Cell{Kind: CellBool, Bool: b}
}

// StringCell returns a string-valued cell.
func StringCell(s string) Cell {
	return Cell{Kind: CellString, Str: s}
}

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// CellOf converts a loosely typed host value into a Cell.
// nil and unrecognized types map to empty.
func CellOf(v any) Cell {
	switch t := v.(type) {
	case nil:
		return EmptyCell()
	case bool:
		return BoolCell(t)
	case string:
		if t == "" {
			return EmptyCell()
		}
		return StringCell(t)
	case float64:
		return NumberCell(t)
	case int:
		return NumberCell(float64(t))
	case int64:
		return NumberCell(float64(t))
	default:
		return EmptyCell()
	}
}

// IsChecked reports whether the cell holds the literal boolean true.
// Strings like "TRUE" do not count here; only real booleans toggle highlights.
func (c Cell) IsChecked() bool {
	return c.Kind == CellBool && c.Bool
}

// IsEmpty reports whether the cell has no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty || c.Kind == ""
}

// Text returns the cell content as a string, used for header comparisons.
func (c Cell) Text() string {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellBool:
		return strconv.FormatBool(c.Bool)
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Value returns the loosely typed host representation of the cell.
func (c Cell) Value() any {
	switch c.Kind {
	case CellBool:
		return c.Bool
	case CellString:
		return c.Str
	case CellNumber:
		return c.Number
	default:
		return nil
	}
}
