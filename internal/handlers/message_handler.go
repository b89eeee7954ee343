package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamboard/internal/realtime"
	"teamboard/internal/services"
)

type MessageHandler struct {
	service services.MessageService
	hub     *realtime.BoardHub
}

func NewMessageHandler(service services.MessageService, hub *realtime.BoardHub) *MessageHandler {
	return &MessageHandler{service: service, hub: hub}
}

// POST /messages
func (h *MessageHandler) Post(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Content  string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.service.Post(c.Request.Context(), req.Username, req.Content)
	if err != nil {
		log.Printf("[message][post][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to post message"})
		return
	}
	// relay after the write lands; listeners only ever see persisted
	// messages
	h.hub.Broadcast(msg)
	c.JSON(http.StatusCreated, gin.H{"id": msg.ID})
}

// GET /messages
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("[message][list][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// GET /ws — upgrades to a websocket and streams board messages until
// the peer hangs up.
func (h *MessageHandler) Board(c *gin.Context) {
	conn, err := realtime.Upgrade(c.Writer, c.Request)
	if err != nil {
		log.Printf("[message][ws][err] upgrade: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade failed"})
		return
	}
	h.hub.Register(conn)
	log.Printf("[message][ws][ok] listener connected, total=%d", h.hub.Listeners())

	// drain until close; inbound frames are ignored, posting goes
	// through POST /messages
	go func() {
		defer h.hub.Unregister(conn)
		for {
			var discard interface{}
			if err := conn.ReadJSON(&discard); err != nil {
				return
			}
		}
	}()
}
