package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"teamboard/internal/models"
	"teamboard/internal/repositories"
)

type SubTaskService interface {
	Create(ctx context.Context, taskID uuid.UUID, title string, description *string, dueDate *time.Time) (uuid.UUID, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.SubTaskView, error)
	Update(ctx context.Context, id uuid.UUID, upd models.SubTaskUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type subTaskService struct {
	repo repositories.SubTaskRepository
}

func NewSubTaskService(repo repositories.SubTaskRepository) SubTaskService {
	return &subTaskService{repo: repo}
}

// Create always starts the sub-task as not_started; there is no
// status transition path after that.
func (s *subTaskService) Create(ctx context.Context, taskID uuid.UUID, title string, description *string, dueDate *time.Time) (uuid.UUID, error) {
	st := &models.SubTask{
		ID:          uuid.New(),
		TaskID:      taskID,
		Title:       title,
		Description: description,
		Status:      models.SubTaskStatusNotStarted,
		CreatedAt:   time.Now().UTC(),
		DueDate:     dueDate,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return uuid.Nil, err
	}
	return st.ID, nil
}

func (s *subTaskService) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.SubTaskView, error) {
	return s.repo.ListByTask(ctx, taskID)
}

func (s *subTaskService) Update(ctx context.Context, id uuid.UUID, upd models.SubTaskUpdate) error {
	return s.repo.Update(ctx, id, upd)
}

func (s *subTaskService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
