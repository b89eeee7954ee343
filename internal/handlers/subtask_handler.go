package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"teamboard/internal/models"
	"teamboard/internal/repositories"
	"teamboard/internal/services"
)

type SubTaskHandler struct {
	service services.SubTaskService
}

func NewSubTaskHandler(service services.SubTaskService) *SubTaskHandler {
	return &SubTaskHandler{service: service}
}

// POST /tasks/:id/subtasks
func (h *SubTaskHandler) Create(c *gin.Context) {
	taskID, err := uuidParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req struct {
		Title       string     `json:"title" binding:"required"`
		Description *string    `json:"description"`
		DueDate     *time.Time `json:"due_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[subtask][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.service.Create(c.Request.Context(), taskID, req.Title, req.Description, req.DueDate)
	if err != nil {
		// an unknown task id lands here as a foreign-key violation
		log.Printf("[subtask][create][err] task=%s: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sub-task"})
		return
	}
	log.Printf("[subtask][create][ok] id=%s task=%s", id, taskID)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GET /tasks/:id/subtasks
func (h *SubTaskHandler) List(c *gin.Context) {
	taskID, err := uuidParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	subTasks, err := h.service.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		log.Printf("[subtask][list][err] task=%s: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve sub-tasks"})
		return
	}
	c.JSON(http.StatusOK, subTasks)
}

// PUT /tasks/:id/subtasks/:subtask_id
func (h *SubTaskHandler) Update(c *gin.Context) {
	subTaskID, err := uuidParam(c, "subtask_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req models.SubTaskUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[subtask][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Update(c.Request.Context(), subTaskID, req); err != nil {
		log.Printf("[subtask][update][err] id=%s: %v", subTaskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update sub-task"})
		return
	}
	log.Printf("[subtask][update][ok] id=%s", subTaskID)
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DELETE /tasks/:id/subtasks/:subtask_id
func (h *SubTaskHandler) Delete(c *gin.Context) {
	subTaskID, err := uuidParam(c, "subtask_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	err = h.service.Delete(c.Request.Context(), subTaskID)
	switch {
	case err == nil:
		log.Printf("[subtask][delete][ok] id=%s", subTaskID)
		c.Status(http.StatusNoContent)
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "sub-task not found"})
	default:
		log.Printf("[subtask][delete][err] id=%s: %v", subTaskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete sub-task"})
	}
}
