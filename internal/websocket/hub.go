package websocket

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans session events out to the watchers of each class. Broadcasts
// hold the hub lock while writing, which also serializes writes per
// connection; a connection that fails a write is dropped on the spot.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[*websocket.Conn]struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*websocket.Conn]struct{})}
}

// Subscribe registers a connection as a watcher of the class.
func (h *Hub) Subscribe(class string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[class] == nil {
		h.subs[class] = make(map[*websocket.Conn]struct{})
	}
	h.subs[class][conn] = struct{}{}
}

// Unsubscribe removes a connection; it does not close it.
func (h *Hub) Unsubscribe(class string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[class], conn)
	if len(h.subs[class]) == 0 {
		delete(h.subs, class)
	}
}

// Broadcast sends the event to every watcher of the class.
func (h *Hub) Broadcast(class string, v interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.subs[class] {
		if err := WriteTyped(conn, v); err != nil {
			conn.Close()
			delete(h.subs[class], conn)
		}
	}
}
