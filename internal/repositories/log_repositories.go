// Append-only log stores: progress notes, evaluations, board messages.
// Entries are inserted and listed, never mutated or deleted.
package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"teamboard/internal/models"
)

type ProgressRepository interface {
	Create(ctx context.Context, p *models.Progress) error
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Progress, error)
}

type progressRepository struct {
	db *sql.DB
}

func NewProgressRepository(db *sql.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(ctx context.Context, p *models.Progress) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO progress (id, task_id, content, percent, created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		p.ID, p.TaskID, p.Content, p.Percent, p.CreatedAt,
	)
	return err
}

func (r *progressRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Progress, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_id, content, percent, created_at
		FROM progress WHERE task_id = $1
		ORDER BY created_at DESC`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Progress
	for rows.Next() {
		var p models.Progress
		if err := rows.Scan(&p.ID, &p.TaskID, &p.Content, &p.Percent, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type EvaluationRepository interface {
	Create(ctx context.Context, e *models.Evaluation) error
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Evaluation, error)
}

type evaluationRepository struct {
	db *sql.DB
}

func NewEvaluationRepository(db *sql.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Create(ctx context.Context, e *models.Evaluation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO evaluations (id, task_id, username, content, rate, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		e.ID, e.TaskID, e.Username, e.Content, e.Rate, e.CreatedAt,
	)
	return err
}

func (r *evaluationRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Evaluation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_id, username, content, rate, created_at
		FROM evaluations WHERE task_id = $1
		ORDER BY created_at DESC`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Evaluation
	for rows.Next() {
		var e models.Evaluation
		if err := rows.Scan(&e.ID, &e.TaskID, &e.Username, &e.Content, &e.Rate, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type MessageRepository interface {
	Create(ctx context.Context, m *models.Message) error
	List(ctx context.Context) ([]models.Message, error)
}

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, m *models.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, username, content, created_at)
		VALUES ($1,$2,$3,$4)`,
		m.ID, m.Username, m.Content, m.CreatedAt,
	)
	return err
}

// List returns the whole board in insertion order.
func (r *messageRepository) List(ctx context.Context) ([]models.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, content, created_at
		FROM messages
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Username, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
