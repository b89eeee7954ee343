package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamboard/internal/repositories"
	"teamboard/internal/services"
)

type RoleHandler struct {
	service services.RoleService
}

func NewRoleHandler(service services.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// GET /tasks/:id/roles
func (h *RoleHandler) TaskRoles(c *gin.Context) {
	taskID, err := uuidParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	roles, err := h.service.TaskRoles(c.Request.Context(), taskID)
	if err != nil {
		log.Printf("[role][list][err] task=%s: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve roles"})
		return
	}
	c.JSON(http.StatusOK, roles)
}

// @Summary      Claim a role slot
// @Description  Atomically takes an open slot; losing the race (or a missing slot) reports a single conflict
// @Tags         Roles
// @Produce      json
// @Param        id  path  string  true  "Slot id"
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string
// @Router       /roles/{id}/claim [post]
func (h *RoleHandler) Claim(c *gin.Context) {
	slotID, err := uuidParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	err = h.service.Claim(c.Request.Context(), slotID, userID)
	switch {
	case err == nil:
		log.Printf("[role][claim][ok] slot=%s user=%s", slotID, userID)
		c.JSON(http.StatusOK, gin.H{"claimed": true})
	case errors.Is(err, repositories.ErrConflict):
		log.Printf("[role][claim][conflict] slot=%s user=%s", slotID, userID)
		c.JSON(http.StatusConflict, gin.H{"error": "slot already claimed or not found"})
	default:
		log.Printf("[role][claim][err] slot=%s user=%s: %v", slotID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to claim role"})
	}
}

// @Summary      Remove a member from a task
// @Description  Reopens every slot the member holds on the task and unassigns their sub-tasks
// @Tags         Roles
// @Produce      json
// @Param        id  path  string  true  "Slot id"
// @Success      200  {object}  map[string]interface{}
// @Router       /roles/{id}/remove-member [post]
func (h *RoleHandler) RemoveMember(c *gin.Context) {
	slotID, err := uuidParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.ReleaseMember(c.Request.Context(), slotID); err != nil {
		log.Printf("[role][release][err] slot=%s: %v", slotID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove member"})
		return
	}
	// unclaimed or unknown slots release silently
	log.Printf("[role][release][ok] slot=%s", slotID)
	c.JSON(http.StatusOK, gin.H{"released": true})
}

// GET /my/roles
func (h *RoleHandler) MyRoles(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	roles, err := h.service.MyRoles(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[role][mine][err] user=%s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve roles"})
		return
	}
	c.JSON(http.StatusOK, roles)
}
