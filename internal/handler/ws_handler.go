package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/AdityaSah2030/Attendance-System/internal/response"
	"github.com/AdityaSah2030/Attendance-System/internal/service"
	ws "github.com/AdityaSah2030/Attendance-System/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams session events to watchers of a class.
type WSHandler struct {
	roster   *service.RosterService
	hub      *ws.Hub
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(roster *service.RosterService, hub *ws.Hub, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		roster:   roster,
		hub:      hub,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// SessionStream godoc
// WS /ws/v1/classes/:name/session/stream
// Upgrades to WebSocket and forwards every session event for the class
// (opened, toggled, saved) until the client disconnects.
func (h *WSHandler) SessionStream(c *gin.Context) {
	className := c.Param("name")

	if _, err := h.roster.Get(className); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrClassNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	h.hub.Subscribe(className, conn)
	defer h.hub.Unsubscribe(className, conn)

	h.log.Debug().Str("class", className).Msg("session watcher connected")

	// Clients only listen; the read loop exists to notice disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
