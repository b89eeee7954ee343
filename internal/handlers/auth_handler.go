package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"teamboard/internal/middleware"
	"teamboard/internal/models"
	"teamboard/internal/repositories"
	"teamboard/internal/services"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// @Summary      Register a new account
// @Description  Creates a user from username and password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        register  body      models.RegisterRequest  true  "Credentials"
// @Success      201       {object}  map[string]interface{}
// @Failure      400       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][register][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username must not be blank"})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), username, req.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			log.Printf("[auth][register][conflict] username=%q", username)
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		log.Printf("[auth][register][err] username=%q: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}
	log.Printf("[auth][register][ok] id=%s username=%q", user.ID, user.Username)
	c.JSON(http.StatusCreated, gin.H{"id": user.ID})
}

// @Summary      Log in
// @Description  Verifies credentials and returns a bearer token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credentials"
// @Success      200    {object}  map[string]interface{}
// @Failure      401    {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][login][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	username := strings.TrimSpace(req.Username)
	log.Printf("[auth][login] attempt username=%q", username)

	user, err := h.userService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		log.Printf("[auth][login][err] lookup username=%q: %v", username, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("[auth][login][deny] bcrypt mismatch userID=%s", user.ID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	claims := &middleware.Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(middleware.JWTKey)
	if err != nil {
		log.Printf("[auth][login][err] sign token userID=%s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	log.Printf("[auth][login][ok] userID=%s", user.ID)
	c.JSON(http.StatusOK, gin.H{"token": tokenString, "user_id": user.ID})
}
