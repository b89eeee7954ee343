package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"teamboard/internal/models"
)

type fakeTaskRepo struct {
	created      *models.Task
	createdRoles []string
	byCreator    []models.Task
}

func (f *fakeTaskRepo) CreateWithRoles(_ context.Context, task *models.Task, roleNames []string) error {
	f.created = task
	f.createdRoles = roleNames
	return nil
}

func (f *fakeTaskRepo) Edit(context.Context, uuid.UUID, string, string) error { return nil }
func (f *fakeTaskRepo) Finish(context.Context, uuid.UUID) error               { return nil }

func (f *fakeTaskRepo) ListOpen(context.Context) ([]models.TaskSummary, error) { return nil, nil }

func (f *fakeTaskRepo) GetDetail(context.Context, uuid.UUID) (*models.TaskSummary, error) {
	return nil, nil
}

func (f *fakeTaskRepo) ListByCreator(context.Context, uuid.UUID) ([]models.Task, error) {
	return f.byCreator, nil
}

type rosterRoleRepo struct {
	fakeRoleRepo
	rosters map[uuid.UUID][]models.MemberRole
}

func (f *rosterRoleRepo) ListMembers(_ context.Context, taskID uuid.UUID) ([]models.MemberRole, error) {
	return f.rosters[taskID], nil
}

func TestCreateStartsOpenWithFreshID(t *testing.T) {
	repo := &fakeTaskRepo{}
	svc := NewTaskService(repo, newFakeRoleRepo())

	creator := uuid.New()
	// duplicate role names stay distinct slots
	id, err := svc.Create(context.Background(), "t", "d", creator, 2, []string{"writer", "writer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("task id not assigned")
	}
	if repo.created.Status != models.TaskStatusOpen {
		t.Errorf("new task status = %q, want open", repo.created.Status)
	}
	if repo.created.CreatorID != creator {
		t.Errorf("creator not carried through")
	}
	if len(repo.createdRoles) != 2 {
		t.Errorf("want 2 role slots, got %d", len(repo.createdRoles))
	}
	if repo.created.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestMyPublishedTasksAttachesRosters(t *testing.T) {
	open := models.Task{ID: uuid.New(), Title: "open one", Status: models.TaskStatusOpen}
	finished := models.Task{ID: uuid.New(), Title: "done one", Status: models.TaskStatusFinished}

	taskRepo := &fakeTaskRepo{byCreator: []models.Task{open, finished}}
	name := "Alice"
	roleRepo := &rosterRoleRepo{
		fakeRoleRepo: *newFakeRoleRepo(),
		rosters: map[uuid.UUID][]models.MemberRole{
			open.ID: {{Name: &name, RoleName: "leader"}},
			// the finished task keeps an unfilled slot on its roster
			finished.ID: {{RoleName: "writer"}},
		},
	}

	svc := NewTaskService(taskRepo, roleRepo)
	tasks, err := svc.MyPublishedTasks(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("MyPublishedTasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("want 2 tasks, got %d", len(tasks))
	}
	// repository order (open before finished) must be preserved
	if tasks[0].ID != open.ID || tasks[1].ID != finished.ID {
		t.Errorf("task order changed: %+v", tasks)
	}
	if len(tasks[0].Members) != 1 || tasks[0].Members[0].RoleName != "leader" {
		t.Errorf("roster not attached: %+v", tasks[0].Members)
	}
	if len(tasks[1].Members) != 1 || tasks[1].Members[0].Name != nil {
		t.Errorf("unfilled slot should keep nil profile fields: %+v", tasks[1].Members)
	}
}
