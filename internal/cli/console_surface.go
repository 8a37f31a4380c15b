package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"task-manager/internal/controller"
)

// ConsoleSurface renders controller output for one-shot commands.
// Results and success notifications go to stdout, error notifications
// to stderr, so pipelines can separate the two.
type ConsoleSurface struct {
	out    io.Writer
	errOut io.Writer
	in     *bufio.Reader

	// AssumeYes answers every confirmation prompt without asking.
	AssumeYes bool

	failed bool
}

// NewConsoleSurface creates a surface over the given streams.
func NewConsoleSurface(in io.Reader, out, errOut io.Writer) *ConsoleSurface {
	return &ConsoleSurface{
		out:    out,
		errOut: errOut,
		in:     bufio.NewReader(in),
	}
}

// RenderTasks prints the task list, one row per task in store order.
func (s *ConsoleSurface) RenderTasks(tasks []controller.TaskView) {
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, "No tasks.")
		return
	}
	fmt.Fprintf(s.out, "%-16s  %-18s  %s\n", "ID", "WHEN", "DESCRIPTION")
	for _, task := range tasks {
		fmt.Fprintf(s.out, "%-16s  %-18s  %s\n", task.ID, task.When, task.Description)
	}
}

// RenderSearchResult prints the details of a single matched task.
func (s *ConsoleSurface) RenderSearchResult(task controller.TaskView) {
	fmt.Fprintf(s.out, "ID:          %s\n", task.ID)
	fmt.Fprintf(s.out, "Description: %s\n", task.Description)
	fmt.Fprintf(s.out, "When:        %s\n", task.When)
	fmt.Fprintf(s.out, "Created:     %s\n", task.CreatedAt.Format(time.RFC3339))
}

// RenderSearchMessage prints a search outcome that has no task to show.
func (s *ConsoleSurface) RenderSearchMessage(message string) {
	fmt.Fprintln(s.out, message)
}

// ClearSearch is a no-op: console commands have no persistent search pane.
func (s *ConsoleSurface) ClearSearch() {}

// ClearForm is a no-op: console input arrives as command arguments.
func (s *ConsoleSurface) ClearForm() {}

// Notify prints a transient message with an OK or ERROR prefix. Error
// notifications mark the surface failed so the command can exit nonzero.
func (s *ConsoleSurface) Notify(level controller.NotifyLevel, message string) {
	if level == controller.NotifyError {
		s.failed = true
		fmt.Fprintf(s.errOut, "ERROR: %s\n", message)
		return
	}
	fmt.Fprintf(s.out, "OK: %s\n", message)
}

// ConfirmDelete asks before a single task is removed.
func (s *ConsoleSurface) ConfirmDelete(id string) bool {
	ok := s.Confirm(fmt.Sprintf("Delete task %q?", id))
	if !ok {
		fmt.Fprintln(s.out, "Delete cancelled.")
	}
	return ok
}

// Confirm prompts y/N on the input stream. AssumeYes short-circuits the
// prompt; anything but an explicit yes declines.
func (s *ConsoleSurface) Confirm(prompt string) bool {
	if s.AssumeYes {
		return true
	}
	fmt.Fprintf(s.out, "%s [y/N]: ", prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// Failed reports whether an error notification was printed since the
// last reset.
func (s *ConsoleSurface) Failed() bool {
	return s.failed
}

// ResetStatus clears the failure marker before a command runs.
func (s *ConsoleSurface) ResetStatus() {
	s.failed = false
}
