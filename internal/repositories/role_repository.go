package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"teamboard/internal/models"
)

type RoleRepository interface {
	Claim(ctx context.Context, slotID, userID uuid.UUID) error
	ReleaseMember(ctx context.Context, slotID uuid.UUID) error
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.RoleInfo, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MyRole, error)
	ListMembers(ctx context.Context, taskID uuid.UUID) ([]models.MemberRole, error)
}

type roleRepository struct {
	db *sql.DB
}

func NewRoleRepository(db *sql.DB) RoleRepository {
	return &roleRepository{db: db}
}

// Claim takes an open slot for the user. The conditional UPDATE is the
// sole serialization mechanism: among concurrent claimants of one slot
// the store lets exactly one statement match the row. Zero rows
// affected is reported as ErrConflict, whether the slot was taken or
// never existed.
func (r *roleRepository) Claim(ctx context.Context, slotID, userID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE task_roles SET user_id=$1 WHERE id=$2 AND user_id IS NULL`,
		userID, slotID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

// ReleaseMember removes the slot's claimant from the whole task: every
// slot the member holds on that task is reopened and every sub-task
// assigned to them is unassigned. Both writes run in one transaction,
// so readers never observe a half-removed member. A slot without a
// claimant, or a slot id that matches nothing, is a silent success.
func (r *roleRepository) ReleaseMember(ctx context.Context, slotID uuid.UUID) error {
	var taskID uuid.UUID
	var userID *uuid.UUID
	err := r.db.QueryRowContext(ctx,
		`SELECT task_id, user_id FROM task_roles WHERE id = $1`, slotID,
	).Scan(&taskID, &userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return err
	}
	if userID == nil {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin release: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE task_roles SET user_id = NULL WHERE task_id = $1 AND user_id = $2`,
		taskID, *userID,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("release role slots: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE sub_tasks SET assignee_id = NULL WHERE task_id = $1 AND assignee_id = $2`,
		taskID, *userID,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("release sub-task assignments: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit release: %w", err)
	}
	return nil
}

func (r *roleRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.RoleInfo, error) {
	query := `
		SELECT tr.id AS role_id, tr.role_name, tr.user_id,
		       u.name, u.username, u.phone, u.student_id, u.email
		FROM task_roles tr
		LEFT JOIN users u ON tr.user_id = u.id
		WHERE tr.task_id = $1`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []models.RoleInfo
	for rows.Next() {
		var ri models.RoleInfo
		if err := rows.Scan(
			&ri.RoleID, &ri.RoleName, &ri.UserID,
			&ri.Name, &ri.Username, &ri.Phone, &ri.StudentID, &ri.Email,
		); err != nil {
			return nil, err
		}
		roles = append(roles, ri)
	}
	return roles, rows.Err()
}

// ListByUser returns every slot the user has claimed, joined to its
// task. Open tasks come strictly before finished ones, newest first
// within each group.
func (r *roleRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MyRole, error) {
	query := `
		SELECT t.id AS task_id, t.title, t.description, tr.role_name, t.status
		FROM task_roles tr
		JOIN tasks t ON tr.task_id = t.id
		WHERE tr.user_id = $1
		ORDER BY CASE WHEN t.status = $2 THEN 0 ELSE 1 END, t.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID, models.TaskStatusOpen)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []models.MyRole
	for rows.Next() {
		var mr models.MyRole
		if err := rows.Scan(&mr.TaskID, &mr.Title, &mr.Description, &mr.RoleName, &mr.Status); err != nil {
			return nil, err
		}
		roles = append(roles, mr)
	}
	return roles, rows.Err()
}

// ListMembers returns the roster of one task, unfilled slots rendered
// with null profile fields.
func (r *roleRepository) ListMembers(ctx context.Context, taskID uuid.UUID) ([]models.MemberRole, error) {
	query := `
		SELECT u.name, u.username, tr.role_name, u.phone, u.student_id, u.email
		FROM task_roles tr
		LEFT JOIN users u ON tr.user_id = u.id
		WHERE tr.task_id = $1`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.MemberRole
	for rows.Next() {
		var m models.MemberRole
		if err := rows.Scan(&m.Name, &m.Username, &m.RoleName, &m.Phone, &m.StudentID, &m.Email); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
