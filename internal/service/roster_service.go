package service

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/AdityaSah2030/Attendance-System/internal/model"
	"github.com/AdityaSah2030/Attendance-System/internal/spreadsheet"
	"github.com/AdityaSah2030/Attendance-System/internal/table"
)

// Attendance cell literals. Total counts exact matches of present only.
const (
	statusPresent = "Present"
	statusAbsent  = "Absent"
)

// dateLayout renders session labels as DD-MM-YY.
const dateLayout = "02-01-06"

// RosterService owns the loaded class records and their spreadsheet
// persistence. The core algorithms are sequential; the mutex exists only
// because the HTTP host calls in from concurrent handlers.
type RosterService struct {
	mu      sync.RWMutex
	classes map[string]*model.ClassRecord
	log     zerolog.Logger

	// now supplies the session date label; swapped out in tests.
	now func() time.Time
}

// NewRosterService creates a new RosterService.
func NewRosterService(log zerolog.Logger) *RosterService {
	return &RosterService{
		classes: make(map[string]*model.ClassRecord),
		log:     log.With().Str("component", "roster_service").Logger(),
		now:     time.Now,
	}
}

// LoadClass parses the roster file at path and registers it as a class.
// The class name is the file's base name up to the first dot; loading a
// second file that derives the same name replaces the earlier record.
func (s *RosterService) LoadClass(path string) (*model.ClassRecord, error) {
	t, err := spreadsheet.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	if !t.Has(table.TotalColumn) {
		t.AppendColumn(table.TotalColumn, 0)
	}

	idCol, nameCol, err := table.InferColumns(t.Names())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	t.Reorder(idCol, nameCol)

	rec := &model.ClassRecord{
		Name:             className(path),
		Table:            t,
		IdentifierColumn: idCol,
		NameColumn:       nameCol,
		SourcePath:       path,
	}

	s.mu.Lock()
	if _, exists := s.classes[rec.Name]; exists {
		s.log.Warn().Str("class", rec.Name).Msg("class already loaded, replacing")
	}
	s.classes[rec.Name] = rec
	s.mu.Unlock()

	s.log.Info().
		Str("class", rec.Name).
		Str("identifier_column", idCol).
		Str("name_column", nameCol).
		Int("students", t.NumRows()).
		Msg("class loaded")

	return rec, nil
}

// Get returns the record for a loaded class.
func (s *RosterService) Get(name string) (*model.ClassRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.classes[name]
	if !ok {
		return nil, ErrClassNotFound
	}
	return rec, nil
}

// List returns summaries of all loaded classes, sorted by name.
func (s *RosterService) List() []model.ClassSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summaries := make([]model.ClassSummary, 0, len(s.classes))
	for _, rec := range s.classes {
		summaries = append(summaries, rec.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries
}

// Students returns the ordered (id, name) pairs for a loaded class.
func (s *RosterService) Students(name string) ([]model.Student, error) {
	rec, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	return rec.Students(), nil
}

// SaveSession merges the ledger into the class table as today's dated
// column, recomputes Total, restores the canonical column order and
// rewrites the source file. It returns the session's date label. The
// merge happens on a copy; the in-memory record is only updated once the
// file write succeeded, so a failed save leaves both the file and the
// store untouched.
func (s *RosterService) SaveSession(className string, ledger map[string]bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.classes[className]
	if !ok {
		return "", ErrClassNotFound
	}

	t := rec.Table.Clone()
	if !t.Has(rec.IdentifierColumn) || !t.Has(rec.NameColumn) {
		return "", fmt.Errorf("%w: identifier or name column missing from table", ErrSaveFailed)
	}

	label := s.now().Format(dateLayout)
	n := t.NumRows()

	// An identifier missing from the ledger stays absent rather than
	// failing the whole save.
	marks := make([]any, n)
	for row := 0; row < n; row++ {
		id := t.CellString(rec.IdentifierColumn, row)
		if ledger[id] {
			marks[row] = statusPresent
		} else {
			marks[row] = statusAbsent
		}
	}
	// Overwrites in place when a column for today already exists, so two
	// saves on the same day never create a duplicate column.
	if err := t.SetColumn(label, marks); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	// Total is recomputed from scratch as the exact "Present" count over
	// every attendance column, never adjusted incrementally.
	attendance := t.AttendanceColumns(rec.IdentifierColumn, rec.NameColumn)
	totals := make([]any, n)
	for row := 0; row < n; row++ {
		count := 0
		for _, colName := range attendance {
			if v, ok := t.Column(colName).Cells[row].(string); ok && v == statusPresent {
				count++
			}
		}
		totals[row] = count
	}
	if err := t.SetColumn(table.TotalColumn, totals); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	t.Reorder(rec.IdentifierColumn, rec.NameColumn)

	if err := spreadsheet.Write(rec.SourcePath, t); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	rec.Table = t

	s.log.Info().
		Str("class", className).
		Str("date", label).
		Int("students", n).
		Msg("session saved")

	return label, nil
}

// className derives the class name from the file's base name, cut at the
// first dot.
func className(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}
