package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"teamboard/internal/models"
)

type SubTaskRepository interface {
	Create(ctx context.Context, st *models.SubTask) error
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.SubTaskView, error)
	Update(ctx context.Context, id uuid.UUID, upd models.SubTaskUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type subTaskRepository struct {
	db *sql.DB
}

func NewSubTaskRepository(db *sql.DB) SubTaskRepository {
	return &subTaskRepository{db: db}
}

// Create inserts the sub-task as-is. The task id is not pre-checked; a
// dangling reference surfaces as a foreign-key violation from the
// store.
func (r *subTaskRepository) Create(ctx context.Context, st *models.SubTask) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sub_tasks (id, task_id, title, description, created_at, due_date, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		st.ID, st.TaskID, st.Title, st.Description, st.CreatedAt, st.DueDate, st.Status,
	)
	return err
}

func (r *subTaskRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.SubTaskView, error) {
	query := `
		SELECT st.id, st.title, st.description, st.status, st.due_date, st.assignee_id,
		       COALESCE(u.name, u.username) AS assignee_name
		FROM sub_tasks st
		LEFT JOIN users u ON st.assignee_id = u.id
		WHERE st.task_id = $1
		ORDER BY st.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subTasks []models.SubTaskView
	for rows.Next() {
		var v models.SubTaskView
		if err := rows.Scan(
			&v.ID, &v.Title, &v.Description, &v.Status, &v.DueDate, &v.AssigneeID, &v.AssigneeName,
		); err != nil {
			return nil, err
		}
		subTasks = append(subTasks, v)
	}
	return subTasks, rows.Err()
}

// Update fully replaces the four mutable fields; status is not part of
// the update contract. A nil assignee unassigns.
func (r *subTaskRepository) Update(ctx context.Context, id uuid.UUID, upd models.SubTaskUpdate) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE sub_tasks SET title=$1, description=$2, due_date=$3, assignee_id=$4
		WHERE id=$5`,
		upd.Title, upd.Description, upd.DueDate, upd.AssigneeID, id,
	)
	return err
}

func (r *subTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sub_tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
