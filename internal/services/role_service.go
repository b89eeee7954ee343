package services

import (
	"context"

	"github.com/google/uuid"

	"teamboard/internal/models"
	"teamboard/internal/repositories"
)

// RoleService drives the claim/release protocol over role slots.
type RoleService interface {
	Claim(ctx context.Context, slotID, userID uuid.UUID) error
	ReleaseMember(ctx context.Context, slotID uuid.UUID) error
	TaskRoles(ctx context.Context, taskID uuid.UUID) ([]models.RoleInfo, error)
	MyRoles(ctx context.Context, userID uuid.UUID) ([]models.MyRole, error)
}

type roleService struct {
	repo repositories.RoleRepository
}

func NewRoleService(repo repositories.RoleRepository) RoleService {
	return &roleService{repo: repo}
}

func (s *roleService) Claim(ctx context.Context, slotID, userID uuid.UUID) error {
	return s.repo.Claim(ctx, slotID, userID)
}

func (s *roleService) ReleaseMember(ctx context.Context, slotID uuid.UUID) error {
	return s.repo.ReleaseMember(ctx, slotID)
}

func (s *roleService) TaskRoles(ctx context.Context, taskID uuid.UUID) ([]models.RoleInfo, error) {
	return s.repo.ListByTask(ctx, taskID)
}

func (s *roleService) MyRoles(ctx context.Context, userID uuid.UUID) ([]models.MyRole, error) {
	return s.repo.ListByUser(ctx, userID)
}
