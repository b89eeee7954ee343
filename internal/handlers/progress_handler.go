package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamboard/internal/services"
)

type ProgressHandler struct {
	service services.ProgressService
}

func NewProgressHandler(service services.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// POST /tasks/:id/progress
func (h *ProgressHandler) Add(c *gin.Context) {
	taskID, err := uuidParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req struct {
		Content string `json:"content" binding:"required"`
		Percent int    `json:"percent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.service.Add(c.Request.Context(), taskID, req.Content, req.Percent)
	if err != nil {
		log.Printf("[progress][add][err] task=%s: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add progress"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GET /tasks/:id/progress
func (h *ProgressHandler) List(c *gin.Context) {
	taskID, err := uuidParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	entries, err := h.service.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		log.Printf("[progress][list][err] task=%s: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve progress"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
