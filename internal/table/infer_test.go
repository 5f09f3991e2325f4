package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityaSah2030/Attendance-System/internal/table"
)

func TestInferColumns(t *testing.T) {
	t.Run("matches in different columns regardless of position", func(t *testing.T) {
		cases := []struct {
			name     string
			columns  []string
			wantID   string
			wantName string
		}{
			{"canonical order", []string{"Roll No", "Student Name"}, "Roll No", "Student Name"},
			{"reversed order", []string{"Name", "Enrollment No"}, "Enrollment No", "Name"},
			{"buried in the middle", []string{"Remarks", "ID", "Full Name", "Marks"}, "ID", "Full Name"},
			{"number pattern", []string{"Admission Number", "Candidate"}, "Admission Number", "Candidate"},
			{"case insensitive", []string{"ROLL", "NAME"}, "ROLL", "NAME"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				id, name, err := table.InferColumns(tc.columns)
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, id)
				assert.Equal(t, tc.wantName, name)
				assert.NotEqual(t, id, name)
			})
		}
	})

	t.Run("first qualifying column wins each slot", func(t *testing.T) {
		id, name, err := table.InferColumns([]string{"Roll", "Enrollment", "Name", "Student"})
		require.NoError(t, err)
		assert.Equal(t, "Roll", id)
		assert.Equal(t, "Name", name)
	})

	t.Run("no matches falls back to first two columns", func(t *testing.T) {
		id, name, err := table.InferColumns([]string{"Alpha", "Beta", "Gamma"})
		require.NoError(t, err)
		assert.Equal(t, "Alpha", id)
		assert.Equal(t, "Beta", name)
	})

	// Known quirk, kept deliberately: a header matching both pattern sets
	// ("Student ID" contains both "id" and "student") is consumed by the
	// identifier slot and skipped for the name slot, so the name falls
	// back to the second column.
	t.Run("identifier match shadows name match", func(t *testing.T) {
		id, name, err := table.InferColumns([]string{"Student ID", "Homeroom"})
		require.NoError(t, err)
		assert.Equal(t, "Student ID", id)
		assert.Equal(t, "Homeroom", name)
	})

	t.Run("name slot still fills from a later column", func(t *testing.T) {
		id, name, err := table.InferColumns([]string{"Student ID", "Full Name"})
		require.NoError(t, err)
		assert.Equal(t, "Student ID", id)
		assert.Equal(t, "Full Name", name)
	})

	t.Run("too few columns for fallback", func(t *testing.T) {
		_, _, err := table.InferColumns([]string{"Misc"})
		require.ErrorIs(t, err, table.ErrTooFewColumns)

		_, _, err = table.InferColumns(nil)
		require.ErrorIs(t, err, table.ErrTooFewColumns)

		// An identifier match alone does not save a one-column table: the
		// name fallback still needs a second column.
		_, _, err = table.InferColumns([]string{"Roll No"})
		require.ErrorIs(t, err, table.ErrTooFewColumns)
	})
}
