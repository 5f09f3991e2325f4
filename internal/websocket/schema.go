package websocket

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventSessionOpened Event = "session_opened"
	EventToggled       Event = "toggled"
	EventSessionSaved  Event = "session_saved"
	EventError         Event = "error"
)

// SessionOpenedEvent is broadcast when a fresh session replaces the
// class ledger.
type SessionOpenedEvent struct {
	Event    Event  `json:"event"`
	Class    string `json:"class"`
	Students int    `json:"students"`
}

// ToggledEvent is broadcast after every successful toggle.
type ToggledEvent struct {
	Event     Event  `json:"event"`
	Class     string `json:"class"`
	StudentID string `json:"student_id"`
	Present   bool   `json:"present"`
}

// SessionSavedEvent is broadcast after a session was committed to the
// roster file.
type SessionSavedEvent struct {
	Event Event  `json:"event"`
	Class string `json:"class"`
	Date  string `json:"date"`
}

// ErrorResponse is sent to a single client on a stream-level failure.
type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}
