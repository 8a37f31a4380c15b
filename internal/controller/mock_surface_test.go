package controller

import (
	"context"
	"strings"
	"time"

	"task-manager/internal/domain"
)

// mockSurface records every render and notification for assertions.
type mockSurface struct {
	renderedLists  [][]TaskView
	searchResults  []TaskView
	searchMessages []string
	clearedSearch  int
	clearedForm    int
	notifications  []mockNotification

	confirmAnswer bool
	confirmedIDs  []string
}

type mockNotification struct {
	level   NotifyLevel
	message string
}

func newMockSurface() *mockSurface {
	return &mockSurface{confirmAnswer: true}
}

func (m *mockSurface) RenderTasks(tasks []TaskView) {
	m.renderedLists = append(m.renderedLists, tasks)
}

func (m *mockSurface) RenderSearchResult(task TaskView) {
	m.searchResults = append(m.searchResults, task)
}

func (m *mockSurface) RenderSearchMessage(message string) {
	m.searchMessages = append(m.searchMessages, message)
}

func (m *mockSurface) ClearSearch() {
	m.clearedSearch++
}

func (m *mockSurface) ClearForm() {
	m.clearedForm++
}

func (m *mockSurface) Notify(level NotifyLevel, message string) {
	m.notifications = append(m.notifications, mockNotification{level: level, message: message})
}

func (m *mockSurface) ConfirmDelete(id string) bool {
	m.confirmedIDs = append(m.confirmedIDs, id)
	return m.confirmAnswer
}

func (m *mockSurface) lastNotification() mockNotification {
	if len(m.notifications) == 0 {
		return mockNotification{}
	}
	return m.notifications[len(m.notifications)-1]
}

// mockStore implements the Store interface with a plain ordered map and
// records which operations were called.
type mockStore struct {
	tasks map[string]domain.Task
	order []string

	addErr      error
	getCalls    int
	lastGetKey  string
	removeCalls int
	clearCalls  int
}

func newMockStore() *mockStore {
	return &mockStore{tasks: make(map[string]domain.Task)}
}

func (m *mockStore) Add(ctx context.Context, id, description, datetime string) (domain.Task, error) {
	if m.addErr != nil {
		return domain.Task{}, m.addErr
	}

	task := domain.NewTask(
		strings.TrimSpace(id),
		strings.TrimSpace(description),
		strings.TrimSpace(datetime),
		time.Date(2025, 7, 15, 14, 30, 0, 0, time.UTC),
	)
	m.tasks[task.ID] = task
	m.order = append(m.order, task.ID)
	return task, nil
}

func (m *mockStore) Get(id string) (domain.Task, bool) {
	m.getCalls++
	m.lastGetKey = id
	task, ok := m.tasks[id]
	return task, ok
}

func (m *mockStore) List() []domain.Task {
	tasks := make([]domain.Task, 0, len(m.order))
	for _, id := range m.order {
		tasks = append(tasks, m.tasks[id])
	}
	return tasks
}

func (m *mockStore) Remove(ctx context.Context, id string) bool {
	m.removeCalls++
	if _, ok := m.tasks[id]; !ok {
		return false
	}
	delete(m.tasks, id)
	for i, key := range m.order {
		if key == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

func (m *mockStore) Clear(ctx context.Context) {
	m.clearCalls++
	m.tasks = make(map[string]domain.Task)
	m.order = nil
}
