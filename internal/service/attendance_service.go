package service

import (
	"sync"

	"github.com/rs/zerolog"
)

// StudentState is one ledger entry joined with the roster row, in roster
// order, for the session state view.
type StudentState struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// AttendanceService holds the per-class session ledgers: a boolean
// present flag per student identifier for the currently open session.
type AttendanceService struct {
	roster *RosterService
	log    zerolog.Logger

	mu       sync.Mutex
	sessions map[string]map[string]bool
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(roster *RosterService, log zerolog.Logger) *AttendanceService {
	return &AttendanceService{
		roster:   roster,
		log:      log.With().Str("component", "attendance_service").Logger(),
		sessions: make(map[string]map[string]bool),
	}
}

// OpenSession starts a fresh session for the class: one entry per roster
// row, keyed by the stringified identifier, everyone absent. Re-opening
// replaces any previous ledger wholesale; nothing carries over.
func (s *AttendanceService) OpenSession(className string) error {
	students, err := s.roster.Students(className)
	if err != nil {
		return err
	}

	ledger := make(map[string]bool, len(students))
	for _, st := range students {
		ledger[st.ID] = false
	}

	s.mu.Lock()
	s.sessions[className] = ledger
	s.mu.Unlock()

	s.log.Info().Str("class", className).Int("students", len(students)).Msg("session opened")
	return nil
}

// Toggle flips the present flag for one student and returns the new
// state, so the caller can update its view without a second lookup.
func (s *AttendanceService) Toggle(className, studentID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, ok := s.sessions[className]
	if !ok {
		return false, ErrNoSession
	}
	current, ok := ledger[studentID]
	if !ok {
		return false, ErrUnknownStudent
	}
	ledger[studentID] = !current
	return !current, nil
}

// State returns the current session ledger joined with the roster, in
// roster order.
func (s *AttendanceService) State(className string) ([]StudentState, error) {
	students, err := s.roster.Students(className)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	ledger, ok := s.sessions[className]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoSession
	}
	states := make([]StudentState, 0, len(students))
	for _, st := range students {
		states = append(states, StudentState{ID: st.ID, Name: st.Name, Present: ledger[st.ID]})
	}
	s.mu.Unlock()

	return states, nil
}

// SaveSession commits the open session through the roster store and
// returns the session's date label. The ledger stays in place
// afterwards; the next OpenSession replaces it.
func (s *AttendanceService) SaveSession(className string) (string, error) {
	s.mu.Lock()
	ledger, ok := s.sessions[className]
	if !ok {
		s.mu.Unlock()
		return "", ErrNoSession
	}
	// Copy so the save works on a stable view even if toggles race in.
	snapshot := make(map[string]bool, len(ledger))
	for id, present := range ledger {
		snapshot[id] = present
	}
	s.mu.Unlock()

	return s.roster.SaveSession(className, snapshot)
}

// Open reports whether the class currently has an open session.
func (s *AttendanceService) Open(className string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[className]
	return ok
}
