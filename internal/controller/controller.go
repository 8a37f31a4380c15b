package controller

import (
	"context"
	"fmt"
	"strings"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// searchPrompt is shown when a search is requested with an empty term.
const searchPrompt = "Enter a task ID to search."

// Store is the slice of the task store the controller drives.
type Store interface {
	Add(ctx context.Context, id, description, datetime string) (domain.Task, error)
	Get(id string) (domain.Task, bool)
	List() []domain.Task
	Remove(ctx context.Context, id string) bool
	Clear(ctx context.Context)
}

// TaskController translates user-facing events into store operations and
// re-renders the dependent views through the bound surface. It holds no task
// data itself beyond the currently displayed search term. One controller is
// created per session and handed to the active surface.
type TaskController struct {
	store         Store
	surface       Surface
	displayLayout string
	searchTerm    string
}

// New creates a controller over store. Datetimes render through layout.
// The surface is bound separately because surfaces are built around the
// controller they report to.
func New(store Store, layout string) *TaskController {
	return &TaskController{
		store:         store,
		displayLayout: layout,
	}
}

// Bind attaches the presentation surface. Must be called before any event
// is dispatched.
func (c *TaskController) Bind(surface Surface) {
	c.surface = surface
}

// SubmitNewTask handles the submit action with the three raw field values.
// On success the form is cleared and the list re-rendered; on failure the
// form keeps its values so the user can correct them. Store errors are
// converted to user-facing text here and nowhere else.
func (c *TaskController) SubmitNewTask(ctx context.Context, id, description, datetime string) {
	task, err := c.store.Add(ctx, id, description, datetime)
	if err != nil {
		c.surface.Notify(NotifyError, errors.GetUserMessage(err))
		return
	}

	c.surface.ClearForm()
	c.renderList()
	c.surface.Notify(NotifySuccess, fmt.Sprintf("Task %q added.", task.ID))
}

// Search handles the search action. The term is trimmed here, at the UI
// boundary; the store itself compares keys exactly.
func (c *TaskController) Search(term string) {
	term = strings.TrimSpace(term)
	c.searchTerm = term

	if term == "" {
		c.surface.RenderSearchMessage(searchPrompt)
		return
	}

	task, found := c.store.Get(term)
	if !found {
		c.surface.RenderSearchMessage(fmt.Sprintf("No task found with ID %q.", term))
		return
	}

	c.surface.RenderSearchResult(NewTaskView(task, c.displayLayout))
}

// RequestDelete handles a per-task delete trigger. Nothing happens without
// the surface's confirmation. When the deleted id is also the current search
// term, the stale search view is cleared.
func (c *TaskController) RequestDelete(ctx context.Context, id string) {
	if !c.surface.ConfirmDelete(id) {
		return
	}

	if !c.store.Remove(ctx, id) {
		c.surface.Notify(NotifyError, fmt.Sprintf("No task found with ID %q.", id))
		return
	}

	c.renderList()
	c.surface.Notify(NotifySuccess, fmt.Sprintf("Task %q deleted.", id))

	if c.searchTerm == id {
		c.searchTerm = ""
		c.surface.ClearSearch()
	}
}

// Refresh re-renders the full task list. No store mutation.
func (c *TaskController) Refresh() {
	c.renderList()
}

// ClearAll empties the store and re-renders the now-empty list.
func (c *TaskController) ClearAll(ctx context.Context) {
	c.store.Clear(ctx)
	c.renderList()
	c.surface.Notify(NotifySuccess, "All tasks cleared.")
}

// Tasks returns the current sorted task list projected for display.
func (c *TaskController) Tasks() []TaskView {
	return NewTaskViews(c.store.List(), c.displayLayout)
}

// SearchTerm returns the currently displayed search term.
func (c *TaskController) SearchTerm() string {
	return c.searchTerm
}

func (c *TaskController) renderList() {
	c.surface.RenderTasks(c.Tasks())
}
