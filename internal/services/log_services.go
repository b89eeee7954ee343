// Services over the append-only logs: per-task progress notes and
// evaluations, plus the global message board.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"teamboard/internal/models"
	"teamboard/internal/repositories"
)

type ProgressService interface {
	Add(ctx context.Context, taskID uuid.UUID, content string, percent int) (uuid.UUID, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Progress, error)
}

type progressService struct {
	repo repositories.ProgressRepository
}

func NewProgressService(repo repositories.ProgressRepository) ProgressService {
	return &progressService{repo: repo}
}

func (s *progressService) Add(ctx context.Context, taskID uuid.UUID, content string, percent int) (uuid.UUID, error) {
	p := &models.Progress{
		ID:        uuid.New(),
		TaskID:    taskID,
		Content:   content,
		Percent:   percent,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return uuid.Nil, err
	}
	return p.ID, nil
}

func (s *progressService) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Progress, error) {
	return s.repo.ListByTask(ctx, taskID)
}

type EvaluationService interface {
	Add(ctx context.Context, taskID uuid.UUID, username, content string, rate int) (uuid.UUID, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Evaluation, error)
}

type evaluationService struct {
	repo repositories.EvaluationRepository
}

func NewEvaluationService(repo repositories.EvaluationRepository) EvaluationService {
	return &evaluationService{repo: repo}
}

func (s *evaluationService) Add(ctx context.Context, taskID uuid.UUID, username, content string, rate int) (uuid.UUID, error) {
	e := &models.Evaluation{
		ID:        uuid.New(),
		TaskID:    taskID,
		Username:  username,
		Content:   content,
		Rate:      rate,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return uuid.Nil, err
	}
	return e.ID, nil
}

func (s *evaluationService) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Evaluation, error) {
	return s.repo.ListByTask(ctx, taskID)
}

type MessageService interface {
	Post(ctx context.Context, username, content string) (*models.Message, error)
	List(ctx context.Context) ([]models.Message, error)
}

type messageService struct {
	repo repositories.MessageRepository
}

func NewMessageService(repo repositories.MessageRepository) MessageService {
	return &messageService{repo: repo}
}

func (s *messageService) Post(ctx context.Context, username, content string) (*models.Message, error) {
	m := &models.Message{
		ID:        uuid.New(),
		Username:  username,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *messageService) List(ctx context.Context) ([]models.Message, error) {
	return s.repo.List(ctx)
}
