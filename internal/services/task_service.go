package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"teamboard/internal/models"
	"teamboard/internal/repositories"
)

// TaskService defines the business logic for the task lifecycle:
// transactional creation with role slots, guarded edits, the one-way
// open -> finished transition, and the published-task views.
type TaskService interface {
	Create(ctx context.Context, title, description string, creatorID uuid.UUID, teamSize int, roleNames []string) (uuid.UUID, error)
	Edit(ctx context.Context, id uuid.UUID, title, description string) error
	Finish(ctx context.Context, id uuid.UUID) error
	ListOpen(ctx context.Context) ([]models.TaskSummary, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*models.TaskSummary, error)
	MyPublishedTasks(ctx context.Context, creatorID uuid.UUID) ([]models.TaskWithMembers, error)
}

type taskService struct {
	tasks repositories.TaskRepository
	roles repositories.RoleRepository
}

func NewTaskService(tasks repositories.TaskRepository, roles repositories.RoleRepository) TaskService {
	return &taskService{tasks: tasks, roles: roles}
}

func (s *taskService) Create(ctx context.Context, title, description string, creatorID uuid.UUID, teamSize int, roleNames []string) (uuid.UUID, error) {
	task := &models.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		CreatorID:   creatorID,
		CreatedAt:   time.Now().UTC(),
		TeamSize:    teamSize,
		Status:      models.TaskStatusOpen,
	}
	if err := s.tasks.CreateWithRoles(ctx, task, roleNames); err != nil {
		return uuid.Nil, err
	}
	return task.ID, nil
}

func (s *taskService) Edit(ctx context.Context, id uuid.UUID, title, description string) error {
	return s.tasks.Edit(ctx, id, title, description)
}

func (s *taskService) Finish(ctx context.Context, id uuid.UUID) error {
	return s.tasks.Finish(ctx, id)
}

func (s *taskService) ListOpen(ctx context.Context) ([]models.TaskSummary, error) {
	return s.tasks.ListOpen(ctx)
}

func (s *taskService) GetDetail(ctx context.Context, id uuid.UUID) (*models.TaskSummary, error) {
	return s.tasks.GetDetail(ctx, id)
}

// MyPublishedTasks annotates each task the user created with its full
// member roster. Task order (open before finished) comes from the
// repository.
func (s *taskService) MyPublishedTasks(ctx context.Context, creatorID uuid.UUID) ([]models.TaskWithMembers, error) {
	tasks, err := s.tasks.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	result := make([]models.TaskWithMembers, 0, len(tasks))
	for _, t := range tasks {
		members, err := s.roles.ListMembers(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, models.TaskWithMembers{
			ID:      t.ID,
			Title:   t.Title,
			Status:  t.Status,
			Members: members,
		})
	}
	return result, nil
}
