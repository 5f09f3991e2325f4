package service

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) (*RosterService, *AttendanceService, string) {
	t.Helper()
	roster := NewRosterService(zerolog.Nop())
	attendance := NewAttendanceService(roster, zerolog.Nop())

	path := writeRoster(t, t.TempDir(), "Class-10A.xlsx", threeStudentRoster())
	_, err := roster.LoadClass(path)
	require.NoError(t, err)

	return roster, attendance, path
}

func TestOpenSession(t *testing.T) {
	t.Run("everyone starts absent", func(t *testing.T) {
		_, attendance, _ := newTestServices(t)
		require.NoError(t, attendance.OpenSession("Class-10A"))

		states, err := attendance.State("Class-10A")
		require.NoError(t, err)
		require.Len(t, states, 3)
		assert.Equal(t, "101", states[0].ID)
		assert.Equal(t, "Asha", states[0].Name)
		for _, st := range states {
			assert.False(t, st.Present)
		}
	})

	t.Run("reopening resets the ledger", func(t *testing.T) {
		_, attendance, _ := newTestServices(t)
		require.NoError(t, attendance.OpenSession("Class-10A"))

		_, err := attendance.Toggle("Class-10A", "101")
		require.NoError(t, err)

		require.NoError(t, attendance.OpenSession("Class-10A"))
		states, err := attendance.State("Class-10A")
		require.NoError(t, err)
		for _, st := range states {
			assert.False(t, st.Present)
		}
	})

	t.Run("unknown class", func(t *testing.T) {
		_, attendance, _ := newTestServices(t)
		require.ErrorIs(t, attendance.OpenSession("ghost"), ErrClassNotFound)
	})
}

func TestToggle(t *testing.T) {
	t.Run("is its own inverse", func(t *testing.T) {
		_, attendance, _ := newTestServices(t)
		require.NoError(t, attendance.OpenSession("Class-10A"))

		present, err := attendance.Toggle("Class-10A", "102")
		require.NoError(t, err)
		assert.True(t, present)

		present, err = attendance.Toggle("Class-10A", "102")
		require.NoError(t, err)
		assert.False(t, present)

		states, err := attendance.State("Class-10A")
		require.NoError(t, err)
		assert.False(t, states[1].Present)
	})

	t.Run("unknown student leaves the ledger unchanged", func(t *testing.T) {
		_, attendance, _ := newTestServices(t)
		require.NoError(t, attendance.OpenSession("Class-10A"))

		_, err := attendance.Toggle("Class-10A", "999")
		require.ErrorIs(t, err, ErrUnknownStudent)

		states, err := attendance.State("Class-10A")
		require.NoError(t, err)
		for _, st := range states {
			assert.False(t, st.Present)
		}
	})

	t.Run("without an open session", func(t *testing.T) {
		_, attendance, _ := newTestServices(t)
		_, err := attendance.Toggle("Class-10A", "101")
		require.ErrorIs(t, err, ErrNoSession)
	})
}

func TestAttendanceSaveSession(t *testing.T) {
	t.Run("commits the open ledger", func(t *testing.T) {
		roster, attendance, _ := newTestServices(t)
		roster.now = fixedClock(2024, time.June, 5)

		require.NoError(t, attendance.OpenSession("Class-10A"))
		_, err := attendance.Toggle("Class-10A", "101")
		require.NoError(t, err)

		date, err := attendance.SaveSession("Class-10A")
		require.NoError(t, err)
		assert.Equal(t, "05-06-24", date)

		rec, err := roster.Get("Class-10A")
		require.NoError(t, err)
		assert.Equal(t, "Present", rec.Table.CellString("05-06-24", 0))
		assert.Equal(t, "1", rec.Table.CellString("Total", 0))

		// The ledger survives the save until the next OpenSession.
		assert.True(t, attendance.Open("Class-10A"))
	})

	t.Run("without an open session", func(t *testing.T) {
		_, attendance, _ := newTestServices(t)
		_, err := attendance.SaveSession("Class-10A")
		require.ErrorIs(t, err, ErrNoSession)
	})
}
