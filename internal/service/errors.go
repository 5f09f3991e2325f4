package service

import "errors"

// Sentinel errors for roster and session operations. Handlers map these
// to HTTP statuses with errors.Is; all of them are recoverable and never
// terminate the process.
var (
	// ErrLoadFailed wraps any failure to read or parse a roster file.
	ErrLoadFailed = errors.New("roster load failed")

	// ErrSaveFailed wraps any I/O or structural failure while committing a
	// session; the source file is left in its pre-save state.
	ErrSaveFailed = errors.New("attendance save failed")

	// ErrClassNotFound indicates the class name is not in the roster store.
	ErrClassNotFound = errors.New("class not loaded")

	// ErrNoSession indicates no session has been opened for the class.
	ErrNoSession = errors.New("no open session for this class")

	// ErrUnknownStudent indicates a toggle for an identifier missing from
	// the active ledger; the ledger is left unchanged.
	ErrUnknownStudent = errors.New("student not in session ledger")
)
