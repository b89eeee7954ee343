package models

import "github.com/google/uuid"

// TaskRole is a named, independently claimable slot in a task's team.
// UserID is nil while the slot is open. Role names are free text and
// may repeat within one task; each row is a distinct slot.
type TaskRole struct {
	ID       uuid.UUID  `json:"id"`
	TaskID   uuid.UUID  `json:"task_id"`
	RoleName string     `json:"role_name"`
	UserID   *uuid.UUID `json:"user_id"`
}

// RoleInfo is a slot joined with its claimant's profile fields. For an
// unfilled slot the profile fields are all nil.
type RoleInfo struct {
	RoleID    uuid.UUID  `json:"role_id"`
	RoleName  string     `json:"role_name"`
	UserID    *uuid.UUID `json:"user_id"`
	Name      *string    `json:"name"`
	Username  *string    `json:"username"`
	Phone     *string    `json:"phone"`
	StudentID *string    `json:"student_id"`
	Email     *string    `json:"email"`
}

// MyRole is one claimed slot joined with its task, for the "my roles"
// view.
type MyRole struct {
	TaskID      uuid.UUID  `json:"task_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	RoleName    string     `json:"role_name"`
	Status      TaskStatus `json:"status"`
}

// MemberRole is one roster entry of a published task.
type MemberRole struct {
	Name      *string `json:"name"`
	Username  *string `json:"username"`
	RoleName  string  `json:"role_name"`
	Phone     *string `json:"phone"`
	StudentID *string `json:"student_id"`
	Email     *string `json:"email"`
}

// TaskWithMembers annotates a task with its full member roster,
// unfilled slots included.
type TaskWithMembers struct {
	ID      uuid.UUID    `json:"id"`
	Title   string       `json:"title"`
	Status  TaskStatus   `json:"status"`
	Members []MemberRole `json:"members"`
}
