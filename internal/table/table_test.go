package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityaSah2030/Attendance-System/internal/table"
)

func sampleTable() *table.Table {
	return &table.Table{Columns: []table.Column{
		{Name: "05-06-24", Cells: []any{"Present", "Absent"}},
		{Name: "Student Name", Cells: []any{"Asha", "Ravi"}},
		{Name: "Total", Cells: []any{1, 0}},
		{Name: "Roll No", Cells: []any{int64(101), int64(102)}},
		{Name: "06-06-24", Cells: []any{"Absent", "Absent"}},
	}}
}

func TestTableReorder(t *testing.T) {
	tbl := sampleTable()
	tbl.Reorder("Roll No", "Student Name")

	assert.Equal(t,
		[]string{"Roll No", "Student Name", "Total", "05-06-24", "06-06-24"},
		tbl.Names())

	// Rows stay aligned after the reorder.
	assert.Equal(t, "101", tbl.CellString("Roll No", 0))
	assert.Equal(t, "Present", tbl.CellString("05-06-24", 0))
	assert.Equal(t, "Absent", tbl.CellString("06-06-24", 1))

	// Reordering an already canonical table is a no-op.
	before := tbl.Names()
	tbl.Reorder("Roll No", "Student Name")
	assert.Equal(t, before, tbl.Names())
}

func TestTableAttendanceColumns(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t,
		[]string{"05-06-24", "06-06-24"},
		tbl.AttendanceColumns("Roll No", "Student Name"))
}

func TestTableAppendAndSetColumn(t *testing.T) {
	tbl := &table.Table{Columns: []table.Column{
		{Name: "Roll No", Cells: []any{int64(1), int64(2), int64(3)}},
	}}

	tbl.AppendColumn("Total", 0)
	require.Equal(t, 3, len(tbl.Column("Total").Cells))
	assert.Equal(t, "0", tbl.CellString("Total", 2))

	// SetColumn overwrites in place without moving the column.
	require.NoError(t, tbl.SetColumn("Total", []any{1, 2, 3}))
	assert.Equal(t, []string{"Roll No", "Total"}, tbl.Names())
	assert.Equal(t, "2", tbl.CellString("Total", 1))

	// SetColumn with an unknown name appends.
	require.NoError(t, tbl.SetColumn("07-06-24", []any{"Present", "Absent", "Absent"}))
	assert.Equal(t, []string{"Roll No", "Total", "07-06-24"}, tbl.Names())

	// Row-count mismatches are rejected.
	require.Error(t, tbl.SetColumn("Total", []any{1}))
}

func TestTableClone(t *testing.T) {
	tbl := sampleTable()
	dup := tbl.Clone()

	require.NoError(t, dup.SetColumn("Total", []any{9, 9}))
	dup.Reorder("Roll No", "Student Name")

	// The original is untouched by mutations of the clone.
	assert.Equal(t, "1", tbl.CellString("Total", 0))
	assert.Equal(t, "05-06-24", tbl.Columns[0].Name)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", table.Stringify(nil))
	assert.Equal(t, "101", table.Stringify(int64(101)))
	assert.Equal(t, "101", table.Stringify(101))
	assert.Equal(t, "1.5", table.Stringify(1.5))
	assert.Equal(t, "101", table.Stringify(float64(101)))
	assert.Equal(t, "Asha", table.Stringify("Asha"))
	assert.Equal(t, "true", table.Stringify(true))
}
