package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"teamboard/internal/models"
	"teamboard/internal/repositories"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) error
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error
}

type userService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register hashes the password and stores the account. The display
// name starts out as the username until the profile is updated.
func (s *userService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		Name:         username,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) error {
	return s.repo.UpdateProfile(ctx, id, upd)
}

func (s *userService) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	return s.repo.UpdateAvatar(ctx, id, avatarURL)
}
