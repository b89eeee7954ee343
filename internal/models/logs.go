package models

import (
	"time"

	"github.com/google/uuid"
)

// Progress, Evaluation and Message are append-only log entries; none
// of them is ever mutated or deleted. Percent and Rate are carried as
// given, without range validation.

type Progress struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task_id"`
	Content   string    `json:"content"`
	Percent   int       `json:"percent"`
	CreatedAt time.Time `json:"created_at"`
}

type Evaluation struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Rate      int       `json:"rate"`
	CreatedAt time.Time `json:"created_at"`
}

type Message struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
