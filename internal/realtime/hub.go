package realtime

import (
	"sync"

	"teamboard/internal/models"
)

// BoardHub fans posted board messages out to every connected listener.
// The board is a single global room; there is no per-task or per-chat
// keying.
type BoardHub struct {
	mu    sync.RWMutex
	conns map[*Conn]struct{}
}

func NewBoardHub() *BoardHub {
	return &BoardHub{conns: make(map[*Conn]struct{})}
}

func (h *BoardHub) Register(conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *BoardHub) Unregister(conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	_ = conn.Close()
}

// Broadcast delivers best-effort: a write failure on one connection
// does not stop delivery to the others.
func (h *BoardHub) Broadcast(msg *models.Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.conns {
		_ = conn.WriteJSON(msg)
	}
}

// Listeners reports the current connection count.
func (h *BoardHub) Listeners() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
