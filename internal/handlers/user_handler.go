package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teamboard/internal/models"
	"teamboard/internal/repositories"
	"teamboard/internal/services"
)

type UserHandler struct {
	service   services.UserService
	filesRoot string
}

func NewUserHandler(service services.UserService, filesRoot string) *UserHandler {
	return &UserHandler{service: service, filesRoot: filesRoot}
}

// GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("[user][get][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req models.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[user][profile][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	switch {
	case err == nil:
		log.Printf("[user][profile][ok] id=%s", userID)
		c.JSON(http.StatusOK, gin.H{"updated": true})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	default:
		log.Printf("[user][profile][err] id=%s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
	}
}

// @Summary      Upload an avatar
// @Description  Stores the file under the static root and persists its public path
// @Tags         Users
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /profile/avatar [post]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing avatar file"})
		return
	}

	dir := filepath.Join(h.filesRoot, "avatars")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[user][avatar][err] mkdir %s: %v", dir, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store avatar"})
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".tmp"
	}
	filename := uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		log.Printf("[user][avatar][err] save id=%s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store avatar"})
		return
	}

	publicPath := "/static/avatars/" + filename
	if err := h.service.UpdateAvatar(c.Request.Context(), userID, publicPath); err != nil {
		log.Printf("[user][avatar][err] persist id=%s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update avatar"})
		return
	}
	log.Printf("[user][avatar][ok] id=%s path=%s", userID, publicPath)
	c.JSON(http.StatusOK, gin.H{"avatar_url": publicPath})
}
