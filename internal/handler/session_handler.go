package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AdityaSah2030/Attendance-System/internal/model"
	"github.com/AdityaSah2030/Attendance-System/internal/response"
	"github.com/AdityaSah2030/Attendance-System/internal/service"
	"github.com/AdityaSah2030/Attendance-System/internal/validator"
	ws "github.com/AdityaSah2030/Attendance-System/internal/websocket"
)

// SessionHandler drives the attendance session: open, toggle, save.
type SessionHandler struct {
	attendance *service.AttendanceService
	hub        *ws.Hub
	log        zerolog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(attendance *service.AttendanceService, hub *ws.Hub, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		attendance: attendance,
		hub:        hub,
		log:        log.With().Str("component", "session_handler").Logger(),
	}
}

// OpenSession godoc
// POST /api/v1/classes/:name/session
// Opens a fresh all-absent session for the class, replacing any prior one.
func (h *SessionHandler) OpenSession(c *gin.Context) {
	className := c.Param("name")

	if err := h.attendance.OpenSession(className); err != nil {
		h.failSession(c, err)
		return
	}

	states, err := h.attendance.State(className)
	if err != nil {
		h.failSession(c, err)
		return
	}

	h.hub.Broadcast(className, ws.SessionOpenedEvent{
		Event:    ws.EventSessionOpened,
		Class:    className,
		Students: len(states),
	})

	response.Success(c, http.StatusCreated, gin.H{"class": className, "students": states})
}

// GetSession godoc
// GET /api/v1/classes/:name/session
// Returns the current ledger state in roster order.
func (h *SessionHandler) GetSession(c *gin.Context) {
	states, err := h.attendance.State(c.Param("name"))
	if err != nil {
		h.failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"students": states})
}

// Toggle godoc
// POST /api/v1/classes/:name/session/toggle
// Flips one student's present flag and returns the new state.
func (h *SessionHandler) Toggle(c *gin.Context) {
	className := c.Param("name")

	var req model.ToggleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	present, err := h.attendance.Toggle(className, req.StudentID)
	if err != nil {
		h.failSession(c, err)
		return
	}

	h.hub.Broadcast(className, ws.ToggledEvent{
		Event:     ws.EventToggled,
		Class:     className,
		StudentID: req.StudentID,
		Present:   present,
	})

	response.Success(c, http.StatusOK, gin.H{"student_id": req.StudentID, "present": present})
}

// SaveSession godoc
// POST /api/v1/classes/:name/session/save
// Commits the session into the roster file as today's dated column.
func (h *SessionHandler) SaveSession(c *gin.Context) {
	className := c.Param("name")

	date, err := h.attendance.SaveSession(className)
	if err != nil {
		h.failSession(c, err)
		return
	}

	h.hub.Broadcast(className, ws.SessionSavedEvent{
		Event: ws.EventSessionSaved,
		Class: className,
		Date:  date,
	})

	response.Success(c, http.StatusOK, gin.H{"class": className, "date": date})
}

// failSession maps service errors onto the response taxonomy.
func (h *SessionHandler) failSession(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClassNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrClassNotFound)
	case errors.Is(err, service.ErrNoSession):
		response.Fail(c, http.StatusConflict, response.ErrNoSession)
	case errors.Is(err, service.ErrUnknownStudent):
		response.Fail(c, http.StatusNotFound, response.ErrUnknownStudent)
	case errors.Is(err, service.ErrSaveFailed):
		h.log.Error().Err(err).Msg("session save failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrSaveFailed)
	default:
		h.log.Error().Err(err).Msg("session operation failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
