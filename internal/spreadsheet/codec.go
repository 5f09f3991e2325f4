// Package spreadsheet converts between roster .xlsx files and the
// in-memory table model. Reads take the first sheet's header row as the
// column names; writes rebuild the whole workbook and replace the target
// file atomically so a failed save never leaves a partial file behind.
package spreadsheet

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/natefinch/atomic"
	"github.com/xuri/excelize/v2"

	"github.com/AdityaSah2030/Attendance-System/internal/table"
)

// ErrNotTabular indicates the workbook has no sheet or no header row to
// parse column names from.
var ErrNotTabular = errors.New("workbook has no tabular data")

// Read parses the first sheet of an xlsx file into a Table. Cell values
// are restored to int64/float64 where they parse as numbers, matching
// how identifiers written as numbers round-trip to the same string key.
func Read(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNotTabular
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrNotTabular
	}

	header := rows[0]
	t := &table.Table{Columns: make([]table.Column, 0, len(header))}
	for colIdx, name := range header {
		if name == "" {
			continue
		}
		cells := make([]any, 0, len(rows)-1)
		for _, row := range rows[1:] {
			// GetRows trims trailing empty cells, so short rows pad out.
			if colIdx < len(row) {
				cells = append(cells, parseValue(row[colIdx]))
			} else {
				cells = append(cells, "")
			}
		}
		t.Columns = append(t.Columns, table.Column{Name: name, Cells: cells})
	}
	return t, nil
}

// Write encodes the table into a single-sheet workbook and atomically
// replaces the file at path with it.
func Write(path string, t *table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for colIdx, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col.Name); err != nil {
			return fmt.Errorf("write header %q: %w", col.Name, err)
		}
		for rowIdx, v := range col.Cells {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("encode workbook: %w", err)
	}
	if err := atomic.WriteFile(path, buf); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// parseValue restores a cell string to a number where possible.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
