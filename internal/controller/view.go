package controller

import (
	"time"

	"task-manager/internal/domain"
)

// TaskView is the display projection of a task. When carries the datetime
// rendered for display; DateTime keeps the raw stored value.
type TaskView struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	DateTime    string    `json:"datetime"`
	When        string    `json:"when"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTaskView projects a task for display using the given datetime layout.
func NewTaskView(task domain.Task, layout string) TaskView {
	return TaskView{
		ID:          task.ID,
		Description: task.Description,
		DateTime:    task.DateTime,
		When:        domain.FormatForDisplay(task.DateTime, layout),
		CreatedAt:   task.CreatedAt,
	}
}

// NewTaskViews projects a task list for display, preserving order.
func NewTaskViews(tasks []domain.Task, layout string) []TaskView {
	views := make([]TaskView, len(tasks))
	for i, task := range tasks {
		views[i] = NewTaskView(task, layout)
	}
	return views
}
