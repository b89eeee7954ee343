package models

import (
	"time"

	"github.com/google/uuid"
)

// SubTaskStatus defines the possible statuses for a sub-task. There is
// no exposed transition operation: a sub-task is created as
// "not_started" and keeps its status through updates.
type SubTaskStatus string

const (
	SubTaskStatusNotStarted SubTaskStatus = "not_started"
	SubTaskStatusInProgress SubTaskStatus = "in_progress"
	SubTaskStatusDone       SubTaskStatus = "done"
)

// SubTask is a deliverable attached to a task. AssigneeID is advisory:
// the assignee does not have to hold a role slot on the same task.
type SubTask struct {
	ID          uuid.UUID     `json:"id"`
	TaskID      uuid.UUID     `json:"task_id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	AssigneeID  *uuid.UUID    `json:"assignee_id"`
	Status      SubTaskStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	DueDate     *time.Time    `json:"due_date"`
}

// SubTaskView is a sub-task joined with its assignee's display name.
type SubTaskView struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Description  *string       `json:"description"`
	Status       SubTaskStatus `json:"status"`
	DueDate      *time.Time    `json:"due_date"`
	AssigneeID   *uuid.UUID    `json:"assignee_id"`
	AssigneeName *string       `json:"assignee_name"`
}

// SubTaskUpdate is a full replace of the four mutable fields. A nil
// AssigneeID unassigns.
type SubTaskUpdate struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
}
