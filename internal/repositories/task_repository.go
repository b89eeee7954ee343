package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"teamboard/internal/models"
)

type TaskRepository interface {
	CreateWithRoles(ctx context.Context, task *models.Task, roleNames []string) error
	Edit(ctx context.Context, id uuid.UUID, title, description string) error
	Finish(ctx context.Context, id uuid.UUID) error
	ListOpen(ctx context.Context) ([]models.TaskSummary, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*models.TaskSummary, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Task, error)
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

// CreateWithRoles persists the task and one role slot per name inside a
// single transaction. Any insert failure rolls the whole creation back,
// so a task is never observable without its slots.
func (r *taskRepository) CreateWithRoles(ctx context.Context, task *models.Task, roleNames []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create task: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO tasks (id, title, description, creator_id, created_at, team_size, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		task.ID, task.Title, task.Description, task.CreatorID, task.CreatedAt, task.TeamSize, task.Status,
	)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert task: %w", err)
	}

	for _, roleName := range roleNames {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO task_roles (id, task_id, role_name, user_id)
			VALUES ($1,$2,$3,NULL)`,
			uuid.New(), task.ID, roleName,
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert role slot %q: %w", roleName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create task: %w", err)
	}
	return nil
}

// Edit updates title/description. The guard in the WHERE clause makes
// an identical-value edit count as zero rows, so "not found" and
// "nothing changed" both surface as ErrNoEffect.
func (r *taskRepository) Edit(ctx context.Context, id uuid.UUID, title, description string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET title=$1, description=$2
		WHERE id=$3 AND (title IS DISTINCT FROM $1 OR description IS DISTINCT FROM $2)`,
		title, description, id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoEffect
	}
	return nil
}

// Finish moves a task to finished. Re-finishing a finished task matches
// zero rows and reports ErrNoEffect, never an error.
func (r *taskRepository) Finish(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status=$1 WHERE id=$2 AND status <> $1`,
		models.TaskStatusFinished, id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoEffect
	}
	return nil
}

const taskSummaryColumns = `
	t.id, t.title, t.description, t.creator_id, t.created_at, t.team_size, t.status,
	u.name AS creator_name, u.username AS creator_username`

func (r *taskRepository) ListOpen(ctx context.Context) ([]models.TaskSummary, error) {
	query := `
		SELECT` + taskSummaryColumns + `
		FROM tasks t
		INNER JOIN users u ON t.creator_id = u.id
		WHERE t.status = $1
		ORDER BY t.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, models.TaskStatusOpen)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.TaskSummary
	for rows.Next() {
		var t models.TaskSummary
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.CreatorID, &t.CreatedAt,
			&t.TeamSize, &t.Status, &t.CreatorName, &t.CreatorUsername,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) GetDetail(ctx context.Context, id uuid.UUID) (*models.TaskSummary, error) {
	query := `
		SELECT` + taskSummaryColumns + `
		FROM tasks t
		INNER JOIN users u ON t.creator_id = u.id
		WHERE t.id = $1`

	t := &models.TaskSummary{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.CreatorID, &t.CreatedAt,
		&t.TeamSize, &t.Status, &t.CreatorName, &t.CreatorUsername,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// ListByCreator returns every task published by the user, open tasks
// before finished ones, newest first within each group.
func (r *taskRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Task, error) {
	query := `
		SELECT id, title, description, creator_id, created_at, team_size, status
		FROM tasks
		WHERE creator_id = $1
		ORDER BY CASE WHEN status = $2 THEN 0 ELSE 1 END, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, creatorID, models.TaskStatusOpen)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.CreatorID, &t.CreatedAt, &t.TeamSize, &t.Status,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
