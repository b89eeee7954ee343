package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamboard/internal/services"
)

type EvaluationHandler struct {
	service services.EvaluationService
}

func NewEvaluationHandler(service services.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{service: service}
}

// POST /tasks/:id/evaluations
func (h *EvaluationHandler) Add(c *gin.Context) {
	taskID, err := uuidParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req struct {
		Username string `json:"username" binding:"required"`
		Content  string `json:"content" binding:"required"`
		Rate     int    `json:"rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.service.Add(c.Request.Context(), taskID, req.Username, req.Content, req.Rate)
	if err != nil {
		log.Printf("[evaluation][add][err] task=%s: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add evaluation"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GET /tasks/:id/evaluations
func (h *EvaluationHandler) List(c *gin.Context) {
	taskID, err := uuidParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	entries, err := h.service.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		log.Printf("[evaluation][list][err] task=%s: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve evaluations"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
