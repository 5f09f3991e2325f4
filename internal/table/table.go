package table

import (
	"fmt"
	"strconv"
)

// TotalColumn is the name of the derived attendance-count column every
// roster table carries.
const TotalColumn = "Total"

// Column is a named, ordered sequence of cell values.
type Column struct {
	Name  string
	Cells []any
}

// Table is an ordered sequence of named columns aligned by row index.
// Row order is preserved across every operation; rows are never sorted
// or re-keyed.
type Table struct {
	Columns []Column
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// Names returns the column names in their current order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Column returns the named column, or nil.
func (t *Table) Column(name string) *Column {
	i := t.Index(name)
	if i < 0 {
		return nil
	}
	return &t.Columns[i]
}

// AppendColumn adds a new column at the end, filled with the given value
// for every existing row.
func (t *Table) AppendColumn(name string, fill any) {
	cells := make([]any, t.NumRows())
	for i := range cells {
		cells[i] = fill
	}
	t.Columns = append(t.Columns, Column{Name: name, Cells: cells})
}

// SetColumn replaces the cells of the named column, creating the column
// at the end when it does not exist yet.
func (t *Table) SetColumn(name string, cells []any) error {
	if len(cells) != t.NumRows() && len(t.Columns) > 0 {
		return fmt.Errorf("column %q: %d cells for %d rows", name, len(cells), t.NumRows())
	}
	if i := t.Index(name); i >= 0 {
		t.Columns[i].Cells = cells
		return nil
	}
	t.Columns = append(t.Columns, Column{Name: name, Cells: cells})
	return nil
}

// CellString returns the stringified value of a cell, matching how
// identifier values are keyed throughout the system: numbers render
// without an exponent, nil renders empty.
func (t *Table) CellString(name string, row int) string {
	c := t.Column(name)
	if c == nil || row < 0 || row >= len(c.Cells) {
		return ""
	}
	return Stringify(c.Cells[row])
}

// Reorder rearranges the columns into the canonical layout
// [identifier, name, Total, rest…], where the rest keep their relative
// original order. Unknown names are ignored so a reorder can never drop
// data.
func (t *Table) Reorder(idCol, nameCol string) {
	lead := []string{idCol, nameCol, TotalColumn}
	ordered := make([]Column, 0, len(t.Columns))
	for _, name := range lead {
		if i := t.Index(name); i >= 0 {
			ordered = append(ordered, t.Columns[i])
		}
	}
	for _, c := range t.Columns {
		if c.Name != idCol && c.Name != nameCol && c.Name != TotalColumn {
			ordered = append(ordered, c)
		}
	}
	t.Columns = ordered
}

// Clone returns a deep copy of the table. Cell values are shared (they
// are immutable scalars); column headers and cell slices are not.
func (t *Table) Clone() *Table {
	dup := &Table{Columns: make([]Column, len(t.Columns))}
	for i, c := range t.Columns {
		cells := make([]any, len(c.Cells))
		copy(cells, c.Cells)
		dup.Columns[i] = Column{Name: c.Name, Cells: cells}
	}
	return dup
}

// AttendanceColumns returns the names of every column that is neither
// the identifier, the name, nor the Total column — i.e. the dated
// session columns.
func (t *Table) AttendanceColumns(idCol, nameCol string) []string {
	var names []string
	for _, c := range t.Columns {
		if c.Name != idCol && c.Name != nameCol && c.Name != TotalColumn {
			names = append(names, c.Name)
		}
	}
	return names
}

// Stringify renders a single cell value as a string.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
