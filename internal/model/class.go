package model

import "github.com/AdityaSah2030/Attendance-System/internal/table"

// ClassRecord is one loaded roster: the parsed table, the resolved
// identifier/name columns, and the source file it was read from and will
// be written back to. The table always carries a "Total" column.
type ClassRecord struct {
	Name             string
	Table            *table.Table
	IdentifierColumn string
	NameColumn       string
	SourcePath       string
}

// Student is one roster row as the presentation layer needs it: the
// stringified identifier and the display name, in roster order.
type Student struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Students returns the (id, name) pairs of the roster in row order.
func (r *ClassRecord) Students() []Student {
	n := r.Table.NumRows()
	students := make([]Student, 0, n)
	for row := 0; row < n; row++ {
		students = append(students, Student{
			ID:   r.Table.CellString(r.IdentifierColumn, row),
			Name: r.Table.CellString(r.NameColumn, row),
		})
	}
	return students
}

// ClassSummary is the listing view of a loaded class.
type ClassSummary struct {
	Name             string `json:"name"`
	IdentifierColumn string `json:"identifier_column"`
	NameColumn       string `json:"name_column"`
	StudentCount     int    `json:"student_count"`
}

// Summary builds the listing view for this record.
func (r *ClassRecord) Summary() ClassSummary {
	return ClassSummary{
		Name:             r.Name,
		IdentifierColumn: r.IdentifierColumn,
		NameColumn:       r.NameColumn,
		StudentCount:     r.Table.NumRows(),
	}
}

// LoadClassRequest is the payload for registering a class from a
// server-side roster file path.
type LoadClassRequest struct {
	Path string `json:"path" binding:"required,min=1,max=512"`
}

// ToggleRequest is the payload for flipping one student's present flag.
type ToggleRequest struct {
	StudentID string `json:"student_id" binding:"required,min=1,max=64"`
}
