package domain

import (
	"time"
)

// Task represents a single entry in the task list.
// IDs are chosen by the user and serve as the lookup key for the task's
// whole lifecycle; a task is never edited in place, only added and removed.
type Task struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	DateTime    string    `json:"datetime"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTask creates a Task with the given fields and creation timestamp.
func NewTask(id, description, datetime string, createdAt time.Time) Task {
	return Task{
		ID:          id,
		Description: description,
		DateTime:    datetime,
		CreatedAt:   createdAt,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID != "" && t.Description != "" && t.DateTime != ""
}

// String returns the task ID for display purposes.
func (t Task) String() string {
	return t.ID
}
