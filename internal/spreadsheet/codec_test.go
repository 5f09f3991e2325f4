package spreadsheet_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/AdityaSah2030/Attendance-System/internal/spreadsheet"
	"github.com/AdityaSah2030/Attendance-System/internal/table"
)

func TestReadWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Class-10A.xlsx")

	in := &table.Table{Columns: []table.Column{
		{Name: "Roll No", Cells: []any{int64(101), int64(102), int64(103)}},
		{Name: "Student Name", Cells: []any{"Asha", "Ravi", "Meera"}},
		{Name: "Total", Cells: []any{0, 1, 2}},
		{Name: "05-06-24", Cells: []any{"Absent", "Present", "Present"}},
	}}
	require.NoError(t, spreadsheet.Write(path, in))

	out, err := spreadsheet.Read(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Roll No", "Student Name", "Total", "05-06-24"}, out.Names())
	assert.Equal(t, 3, out.NumRows())

	// Numeric cells come back as numbers so identifier keys round-trip.
	assert.Equal(t, int64(101), out.Column("Roll No").Cells[0])
	assert.Equal(t, int64(1), out.Column("Total").Cells[1])
	assert.Equal(t, "Present", out.Column("05-06-24").Cells[2])
	assert.Equal(t, "Meera", out.CellString("Student Name", 2))
}

func TestReadPadsShortRows(t *testing.T) {
	// Build a workbook where the last column is empty for the final row;
	// excelize trims trailing empties, so the codec must pad.
	path := filepath.Join(t.TempDir(), "ragged.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Roll No", "Student Name", "Remarks"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{101, "Asha", "late"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{102, "Ravi"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	out, err := spreadsheet.Read(path)
	require.NoError(t, err)

	require.Equal(t, 2, out.NumRows())
	assert.Equal(t, "late", out.CellString("Remarks", 0))
	assert.Equal(t, "", out.CellString("Remarks", 1))
}

func TestReadMissingFile(t *testing.T) {
	_, err := spreadsheet.Read(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}

func TestReadNotASpreadsheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := spreadsheet.Read(path)
	require.Error(t, err)
}

func TestReadEmptyWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := spreadsheet.Read(path)
	require.ErrorIs(t, err, spreadsheet.ErrNotTabular)
}

func TestWriteReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Class-10A.xlsx")

	first := &table.Table{Columns: []table.Column{
		{Name: "Roll No", Cells: []any{int64(101)}},
		{Name: "Student Name", Cells: []any{"Asha"}},
	}}
	require.NoError(t, spreadsheet.Write(path, first))

	second := &table.Table{Columns: []table.Column{
		{Name: "Roll No", Cells: []any{int64(201), int64(202)}},
		{Name: "Student Name", Cells: []any{"Meera", "Ravi"}},
	}}
	require.NoError(t, spreadsheet.Write(path, second))

	out, err := spreadsheet.Read(path)
	require.NoError(t, err)
	assert.Equal(t, 2, out.NumRows())
	assert.Equal(t, "201", out.CellString("Roll No", 0))
}
