package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamboard/internal/repositories"
	"teamboard/internal/services"
)

type TaskHandler struct {
	service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// @Summary      Publish a task
// @Description  Creates a task together with one role slot per role name, atomically
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description"`
		TeamSize    int      `json:"team_size"`
		Roles       []string `json:"roles"`
	}
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// role names may be empty or repeat; each entry becomes its own slot
	id, err := h.service.Create(c.Request.Context(), req.Title, req.Description, userID, req.TeamSize, req.Roles)
	if err != nil {
		log.Printf("[task][create][err] creator=%s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}
	log.Printf("[task][create][ok] id=%s creator=%s slots=%d", id, userID, len(req.Roles))
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      List open tasks
// @Tags         Tasks
// @Produce      json
// @Success      200  {array}  models.TaskSummary
// @Router       /tasks [get]
func (h *TaskHandler) ListOpen(c *gin.Context) {
	tasks, err := h.service.ListOpen(c.Request.Context())
	if err != nil {
		log.Printf("[task][list][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GET /tasks/:id
func (h *TaskHandler) GetDetail(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	task, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		log.Printf("[task][detail][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get task"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// @Summary      Edit task title and description
// @Description  Reports updated=false when the task is missing or nothing changed
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Task id"
// @Success      200  {object}  map[string]interface{}
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Edit(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.service.Edit(c.Request.Context(), id, req.Title, req.Description)
	switch {
	case err == nil:
		log.Printf("[task][edit][ok] id=%s", id)
		c.JSON(http.StatusOK, gin.H{"updated": true})
	case errors.Is(err, repositories.ErrNoEffect):
		// not an error: the caller must still see the distinction
		log.Printf("[task][edit][noop] id=%s", id)
		c.JSON(http.StatusOK, gin.H{"updated": false, "message": "task not found or nothing changed"})
	default:
		log.Printf("[task][edit][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
	}
}

// @Summary      Finish a task
// @Description  One-way transition; finishing twice reports finished=false the second time
// @Tags         Tasks
// @Produce      json
// @Param        id  path  string  true  "Task id"
// @Success      200  {object}  map[string]interface{}
// @Router       /tasks/{id}/finish [post]
func (h *TaskHandler) Finish(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	err = h.service.Finish(c.Request.Context(), id)
	switch {
	case err == nil:
		log.Printf("[task][finish][ok] id=%s", id)
		c.JSON(http.StatusOK, gin.H{"finished": true})
	case errors.Is(err, repositories.ErrNoEffect):
		log.Printf("[task][finish][noop] id=%s", id)
		c.JSON(http.StatusOK, gin.H{"finished": false, "message": "task not found or already finished"})
	default:
		log.Printf("[task][finish][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to finish task"})
	}
}

// GET /my/tasks
func (h *TaskHandler) MyPublishedTasks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	tasks, err := h.service.MyPublishedTasks(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[task][published][err] user=%s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}
