package store

import (
	"context"
	"sort"
	"time"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/storage"
	"task-manager/internal/validation"

	"github.com/charmbracelet/log"
)

const (
	// SlotKey is the durable slot holding the serialized task collection.
	SlotKey = "taskManager_tasks"

	// CorruptSlotKey receives the raw blob when restore finds content it
	// cannot decode, so the data survives the reset to empty.
	CorruptSlotKey = SlotKey + ".corrupt"
)

// TaskStore is the sole owner of the task collection. It guarantees key
// uniqueness and field validity, and rewrites the durable slot wholesale
// after every mutation. Go maps have no iteration order, so insertion
// sequence is tracked in a separate key slice.
//
// All operations run synchronously inside one user event; the store does no
// locking of its own.
type TaskStore struct {
	backend   storage.Backend
	validator *validation.TaskValidator
	logger    *log.Logger
	clock     func() time.Time

	tasks map[string]domain.Task
	order []string
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithClock replaces the creation-timestamp clock. Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *TaskStore) {
		s.clock = clock
	}
}

// New creates a TaskStore bound to backend and rehydrates it from the
// durable slot. A malformed blob is backed up and logged, and the store
// starts empty; a backend read failure is returned, since without a readable
// backend the store cannot honor durability at all.
func New(ctx context.Context, backend storage.Backend, validator *validation.TaskValidator, logger *log.Logger, opts ...Option) (*TaskStore, error) {
	s := &TaskStore{
		backend:   backend,
		validator: validator,
		logger:    logger,
		clock:     time.Now,
		tasks:     make(map[string]domain.Task),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.restore(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Add validates and inserts a new task, then re-persists the collection.
// The duplicate check runs before field validation, so a taken id is
// reported as such even when other fields are blank. A persist failure does
// not unwind the insertion: the in-memory state is authoritative.
func (s *TaskStore) Add(ctx context.Context, id, description, datetime string) (domain.Task, error) {
	key := s.validator.TrimID(id)

	if _, exists := s.tasks[key]; exists {
		return domain.Task{}, errors.NewDuplicateKeyError(key)
	}

	if err := s.validator.ValidateNewTask(id, description, datetime); err != nil {
		message := "all fields are required"
		if ve, ok := err.(*validation.ValidationError); ok {
			message = ve.GetUserFriendlyMessage()
		}
		return domain.Task{}, errors.NewInvalidInputError(message, err)
	}

	task := domain.NewTask(
		key,
		s.validator.TrimDescription(description),
		s.validator.TrimDateTime(datetime),
		s.clock(),
	)

	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.persist(ctx, "add")

	return task, nil
}

// Get looks up a task by its exact stored key. No trimming is applied to the
// query key; a miss is a negative result, not an error.
func (s *TaskStore) Get(id string) (domain.Task, bool) {
	task, ok := s.tasks[id]
	return task, ok
}

// Has reports whether a task with the given id exists.
func (s *TaskStore) Has(id string) bool {
	_, ok := s.tasks[id]
	return ok
}

// Count returns the number of stored tasks.
func (s *TaskStore) Count() int {
	return len(s.tasks)
}

// List returns a fresh ordering of all tasks, sorted ascending by parsed
// datetime. Tasks whose datetime does not parse sort after all parseable
// ones; ties and runs of unparseable values keep insertion order.
func (s *TaskStore) List() []domain.Task {
	type datedTask struct {
		task domain.Task
		at   time.Time
		ok   bool
	}

	entries := make([]datedTask, 0, len(s.order))
	for _, id := range s.order {
		task := s.tasks[id]
		at, err := domain.ParseDateTime(task.DateTime)
		entries = append(entries, datedTask{task: task, at: at, ok: err == nil})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ok != entries[j].ok {
			return entries[i].ok
		}
		if !entries[i].ok {
			return false
		}
		return entries[i].at.Before(entries[j].at)
	})

	tasks := make([]domain.Task, len(entries))
	for i, entry := range entries {
		tasks[i] = entry.task
	}
	return tasks
}

// Remove deletes the task with the given id and re-persists the collection.
// A miss is a no-op: it returns false and triggers no write.
func (s *TaskStore) Remove(ctx context.Context, id string) bool {
	if _, exists := s.tasks[id]; !exists {
		return false
	}

	delete(s.tasks, id)
	for i, key := range s.order {
		if key == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.persist(ctx, "remove")
	return true
}

// Clear empties the collection and re-persists the empty state
// unconditionally.
func (s *TaskStore) Clear(ctx context.Context) {
	s.tasks = make(map[string]domain.Task)
	s.order = nil
	s.persist(ctx, "clear")
}

// snapshot returns the tasks in insertion order.
func (s *TaskStore) snapshot() []domain.Task {
	tasks := make([]domain.Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, s.tasks[id])
	}
	return tasks
}

// persist rewrites the whole collection to the durable slot. Failures are
// logged and swallowed; the mutating operation that triggered the write
// still reports success to its caller.
func (s *TaskStore) persist(ctx context.Context, operation string) {
	blob, err := encodeTaskPairs(s.snapshot())
	if err != nil {
		s.logger.Error("failed to persist tasks",
			"err", errors.NewPersistenceError(operation, err))
		return
	}

	if err := s.backend.WriteSlot(ctx, SlotKey, blob); err != nil {
		s.logger.Error("failed to persist tasks",
			"err", errors.NewPersistenceError(operation, err))
	}
}

// restore rehydrates the collection from the durable slot.
func (s *TaskStore) restore(ctx context.Context) error {
	blob, found, err := s.backend.ReadSlot(ctx, SlotKey)
	if err != nil {
		return errors.NewStorageError("restore tasks", err)
	}
	if !found {
		return nil
	}

	tasks, err := decodeTaskPairs(blob)
	if err != nil {
		s.quarantine(ctx, blob, err)
		return nil
	}

	for _, task := range tasks {
		s.tasks[task.ID] = task
		s.order = append(s.order, task.ID)
	}
	return nil
}

// quarantine preserves a malformed blob in the backup slot before the store
// starts over empty.
func (s *TaskStore) quarantine(ctx context.Context, blob []byte, cause error) {
	s.logger.Error("stored tasks could not be decoded, starting empty",
		"slot", SlotKey,
		"err", errors.NewDeserializationError(cause))

	if err := s.backend.WriteSlot(ctx, CorruptSlotKey, blob); err != nil {
		s.logger.Error("failed to back up undecodable blob",
			"slot", CorruptSlotKey, "err", err)
		return
	}

	s.logger.Info("backed up undecodable blob", "slot", CorruptSlotKey)
}
