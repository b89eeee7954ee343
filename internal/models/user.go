package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	StudentID    *string   `json:"student_id,omitempty"`
	Email        *string   `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdate carries the mutable profile fields. Username and
// password are not editable through this path.
type ProfileUpdate struct {
	Name      string  `json:"name" binding:"required"`
	Phone     *string `json:"phone"`
	StudentID *string `json:"student_id"`
	Email     *string `json:"email"`
}
