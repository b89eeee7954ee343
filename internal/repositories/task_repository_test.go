package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"teamboard/internal/models"
)

func newTask() *models.Task {
	return &models.Task{
		ID:          uuid.New(),
		Title:       "project report",
		Description: "write the final report",
		CreatorID:   uuid.New(),
		CreatedAt:   time.Now().UTC(),
		TeamSize:    2,
		Status:      models.TaskStatusOpen,
	}
}

func TestCreateWithRolesCommitsTaskAndSlots(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	task := newTask()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tasks").
		WithArgs(task.ID, task.Title, task.Description, task.CreatorID, task.CreatedAt, task.TeamSize, task.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO task_roles").
		WithArgs(sqlmock.AnyArg(), task.ID, "leader").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO task_roles").
		WithArgs(sqlmock.AnyArg(), task.ID, "writer").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewTaskRepository(db)
	if err := repo.CreateWithRoles(context.Background(), task, []string{"leader", "writer"}); err != nil {
		t.Fatalf("CreateWithRoles: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCreateWithRolesRollsBackOnSlotFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	task := newTask()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tasks").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO task_roles").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO task_roles").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	repo := NewTaskRepository(db)
	err = repo.CreateWithRoles(context.Background(), task, []string{"leader", "writer"})
	if err == nil {
		t.Fatal("expected error when a slot insert fails")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("creation was not rolled back: %v", err)
	}
}

func TestCreateWithRolesAllowsEmptyRoleList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	task := newTask()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tasks").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewTaskRepository(db)
	if err := repo.CreateWithRoles(context.Background(), task, nil); err != nil {
		t.Fatalf("CreateWithRoles: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestEditReportsNoEffect(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec("UPDATE tasks SET title").
		WithArgs("same title", "same description", id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewTaskRepository(db)
	err = repo.Edit(context.Background(), id, "same title", "same description")
	if !errors.Is(err, ErrNoEffect) {
		t.Fatalf("want ErrNoEffect, got %v", err)
	}
}

func TestEditSucceedsWhenRowChanges(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec("UPDATE tasks SET title").
		WithArgs("new title", "new description", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTaskRepository(db)
	if err := repo.Edit(context.Background(), id, "new title", "new description"); err != nil {
		t.Fatalf("Edit: %v", err)
	}
}

func TestFinishIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec("UPDATE tasks SET status").
		WithArgs(models.TaskStatusFinished, id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE tasks SET status").
		WithArgs(models.TaskStatusFinished, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewTaskRepository(db)
	if err := repo.Finish(context.Background(), id); err != nil {
		t.Fatalf("first Finish: %v", err)
	}
	err = repo.Finish(context.Background(), id)
	if !errors.Is(err, ErrNoEffect) {
		t.Fatalf("second Finish: want ErrNoEffect, got %v", err)
	}
}

func TestListOpenScansJoinedCreator(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	taskID := uuid.New()
	creatorID := uuid.New()
	created := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "creator_id", "created_at", "team_size", "status",
		"creator_name", "creator_username",
	}).AddRow(taskID.String(), "t", "d", creatorID.String(), created, 3, "open", "Alice", "alice")

	mock.ExpectQuery("FROM tasks t").
		WithArgs(models.TaskStatusOpen).
		WillReturnRows(rows)

	repo := NewTaskRepository(db)
	tasks, err := repo.ListOpen(context.Background())
	if err != nil {
		t.Fatalf("ListOpen: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("want 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.ID != taskID || got.CreatorUsername != "alice" || got.Status != models.TaskStatusOpen {
		t.Errorf("unexpected summary: %+v", got)
	}
	if got.CreatorName == nil || *got.CreatorName != "Alice" {
		t.Errorf("creator name not scanned: %+v", got.CreatorName)
	}
}

func TestGetDetailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery("FROM tasks t").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewTaskRepository(db)
	_, err = repo.GetDetail(context.Background(), id)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
