package controller

// NotifyLevel classifies a transient notification.
type NotifyLevel string

const (
	NotifySuccess NotifyLevel = "success"
	NotifyError   NotifyLevel = "error"
)

// Surface is the presentation side of the controller: a frontend implements
// it to receive renders and answer confirmations. Surfaces own their timers;
// the controller never schedules a dismiss itself.
type Surface interface {
	// RenderTasks replaces the full-list view. An empty slice means the
	// surface renders its own fixed empty-state text.
	RenderTasks(tasks []TaskView)

	// RenderSearchResult shows a found task in the search target.
	RenderSearchResult(task TaskView)

	// RenderSearchMessage shows prompt or miss text in the search target.
	RenderSearchMessage(message string)

	// ClearSearch empties the search input and its result.
	ClearSearch()

	// ClearForm resets the three submit fields.
	ClearForm()

	// Notify shows a transient success or error message.
	Notify(level NotifyLevel, message string)

	// ConfirmDelete synchronously asks the user to confirm deleting id.
	ConfirmDelete(id string) bool
}
