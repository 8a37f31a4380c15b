// Package ui provides the interactive terminal frontend.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"task-manager/internal/controller"
)

type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeSearch
	modeConfirm
)

// field indexes of the add form, in focus order.
const (
	fieldID = iota
	fieldDescription
	fieldDateTime
	fieldCount
)

// Options configure the terminal UI.
type Options struct {
	DismissAfter time.Duration
}

// Run starts the terminal UI bound to the controller and blocks until
// the user quits. The controller renders through the model from then
// on, so the console surface must not be used concurrently.
func Run(ctx context.Context, ctrl *controller.TaskController, opts Options) error {
	if !isTTY(os.Stdout) {
		return fmt.Errorf("ui requires a TTY")
	}

	model := NewModel(ctx, ctrl, opts)
	ctrl.Bind(model)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// Model is the bubbletea model. It doubles as the controller's Surface:
// every render call lands in model state and the next View picks it up.
type Model struct {
	ctx          context.Context
	controller   *controller.TaskController
	dismissAfter time.Duration

	mode   mode
	tasks  []controller.TaskView
	cursor int

	formFields [fieldCount]string
	formFocus  int
	formDone   bool

	searchInput   string
	searchResult  *controller.TaskView
	searchMessage string

	confirmID     string
	confirmAnswer bool

	notification string
	notifyLevel  controller.NotifyLevel
	notifySeq    int
}

type dismissMsg struct {
	seq int
}

// NewModel creates the UI model. Callers must Bind it to the controller
// before running the program.
func NewModel(ctx context.Context, ctrl *controller.TaskController, opts Options) *Model {
	dismissAfter := opts.DismissAfter
	if dismissAfter <= 0 {
		dismissAfter = 3 * time.Second
	}
	return &Model{
		ctx:          ctx,
		controller:   ctrl,
		dismissAfter: dismissAfter,
	}
}

// Init renders the initial task list.
func (m *Model) Init() tea.Cmd {
	m.controller.Refresh()
	return nil
}

// Update handles one event. All controller calls happen here, in the
// same goroutine that reads input, so no locking is needed anywhere.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}
	case dismissMsg:
		if msg.seq == m.notifySeq {
			m.notification = ""
		}
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "a":
		m.mode = modeForm
	case "/":
		m.mode = modeSearch
	case "d":
		if len(m.tasks) > 0 {
			m.confirmID = m.tasks[m.cursor].ID
			m.mode = modeConfirm
		}
	case "r":
		m.controller.Refresh()
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeBrowse
	case "tab", "down":
		m.formFocus = (m.formFocus + 1) % fieldCount
	case "shift+tab", "up":
		m.formFocus = (m.formFocus + fieldCount - 1) % fieldCount
	case "enter":
		prevSeq := m.notifySeq
		m.formDone = false
		m.controller.SubmitNewTask(m.ctx, m.formFields[fieldID], m.formFields[fieldDescription], m.formFields[fieldDateTime])
		if m.formDone {
			m.mode = modeBrowse
		}
		return m, m.scheduleDismiss(prevSeq)
	case "backspace":
		m.formFields[m.formFocus] = trimLastRune(m.formFields[m.formFocus])
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.formFields[m.formFocus] += msg.String()
		}
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.ClearSearch()
		m.mode = modeBrowse
	case "enter":
		m.controller.Search(m.searchInput)
	case "backspace":
		m.searchInput = trimLastRune(m.searchInput)
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.searchInput += msg.String()
		}
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prevSeq := m.notifySeq
	m.confirmAnswer = msg.String() == "y"
	m.mode = modeBrowse

	id := m.confirmID
	m.confirmID = ""
	m.controller.RequestDelete(m.ctx, id)
	m.confirmAnswer = false

	return m, m.scheduleDismiss(prevSeq)
}

// scheduleDismiss starts the auto-dismiss timer when the last
// controller call produced a notification. The sequence number makes
// ticks from superseded notifications harmless.
func (m *Model) scheduleDismiss(prevSeq int) tea.Cmd {
	if m.notifySeq == prevSeq || m.notification == "" {
		return nil
	}
	seq := m.notifySeq
	return tea.Tick(m.dismissAfter, func(time.Time) tea.Msg {
		return dismissMsg{seq: seq}
	})
}

// View renders the current mode.
func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b)
	m.writeNotification(&b)

	switch m.mode {
	case modeForm:
		m.writeForm(&b)
	case modeSearch:
		m.writeSearch(&b)
	case modeConfirm:
		m.writeTaskList(&b)
		fmt.Fprintf(&b, "delete task %q? (y/n)\n\n", m.confirmID)
		b.WriteString("y confirm | any other key cancels\n")
	default:
		m.writeTaskList(&b)
		b.WriteString("a add | / search | d delete | r refresh | q quit\n")
	}

	return b.String()
}

func writeTitle(b *strings.Builder) {
	title := "Task Manager"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func (m *Model) writeNotification(b *strings.Builder) {
	if m.notification == "" {
		return
	}
	prefix := "OK"
	if m.notifyLevel == controller.NotifyError {
		prefix = "ERROR"
	}
	fmt.Fprintf(b, "%s: %s\n\n", prefix, m.notification)
}

func (m *Model) writeTaskList(b *strings.Builder) {
	if len(m.tasks) == 0 {
		b.WriteString("No tasks.\n\n")
		return
	}
	for i, task := range m.tasks {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		fmt.Fprintf(b, "%s%-16s  %-18s  %s\n", marker, task.ID, task.When, task.Description)
	}
	b.WriteString("\n")
}

func (m *Model) writeForm(b *strings.Builder) {
	b.WriteString("Add Task\n\n")

	labels := [fieldCount]string{"ID", "Description", "Datetime"}
	for i := 0; i < fieldCount; i++ {
		marker := "  "
		value := m.formFields[i]
		if i == m.formFocus {
			marker = "> "
			value += "_"
		}
		fmt.Fprintf(b, "%s%-12s %s\n", marker, labels[i]+":", value)
	}

	b.WriteString("\nenter submit | tab next field | esc back\n")
}

func (m *Model) writeSearch(b *strings.Builder) {
	b.WriteString("Search by ID\n\n")
	fmt.Fprintf(b, "> %s_\n\n", m.searchInput)

	switch {
	case m.searchResult != nil:
		task := m.searchResult
		fmt.Fprintf(b, "ID:          %s\n", task.ID)
		fmt.Fprintf(b, "Description: %s\n", task.Description)
		fmt.Fprintf(b, "When:        %s\n", task.When)
		fmt.Fprintf(b, "Created:     %s\n\n", task.CreatedAt.Format(time.RFC3339))
	case m.searchMessage != "":
		b.WriteString(m.searchMessage + "\n\n")
	}

	b.WriteString("enter search | esc back\n")
}

// RenderTasks implements controller.Surface.
func (m *Model) RenderTasks(tasks []controller.TaskView) {
	m.tasks = tasks
	if m.cursor >= len(tasks) {
		m.cursor = len(tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// RenderSearchResult implements controller.Surface.
func (m *Model) RenderSearchResult(task controller.TaskView) {
	m.searchResult = &task
	m.searchMessage = ""
}

// RenderSearchMessage implements controller.Surface.
func (m *Model) RenderSearchMessage(message string) {
	m.searchResult = nil
	m.searchMessage = message
}

// ClearSearch implements controller.Surface.
func (m *Model) ClearSearch() {
	m.searchInput = ""
	m.searchResult = nil
	m.searchMessage = ""
}

// ClearForm implements controller.Surface. The controller only calls
// it after a successful submit, which is what sends the form back to
// the browse view.
func (m *Model) ClearForm() {
	m.formFields = [fieldCount]string{}
	m.formFocus = 0
	m.formDone = true
}

// Notify implements controller.Surface. Each notification supersedes
// the previous one; bumping the sequence strands any timer already
// running for it.
func (m *Model) Notify(level controller.NotifyLevel, message string) {
	m.notification = message
	m.notifyLevel = level
	m.notifySeq++
}

// ConfirmDelete implements controller.Surface. The answer was staged by
// the confirm-mode keypress that triggered the delete.
func (m *Model) ConfirmDelete(id string) bool {
	return m.confirmAnswer
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

// isTTY returns true if w is a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
