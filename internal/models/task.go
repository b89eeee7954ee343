package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus defines the possible statuses for a published task.
type TaskStatus string

const (
	TaskStatusOpen     TaskStatus = "open"
	TaskStatusFinished TaskStatus = "finished"
)

// Task represents a published team task. TeamSize is advisory: it is
// stored and returned but never enforced against the number of role
// slots or claims.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatorID   uuid.UUID  `json:"creator_id"`
	CreatedAt   time.Time  `json:"created_at"`
	TeamSize    int        `json:"team_size"`
	Status      TaskStatus `json:"status"`
}

// TaskSummary is a task joined with its creator's display fields, used
// by the open-task listing and the task detail view.
type TaskSummary struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	CreatorID       uuid.UUID  `json:"creator_id"`
	CreatedAt       time.Time  `json:"created_at"`
	TeamSize        int        `json:"team_size"`
	Status          TaskStatus `json:"status"`
	CreatorName     *string    `json:"creator_name"`
	CreatorUsername string     `json:"creator_username"`
}
