package cli

import (
	stderrors "errors"
	"testing"

	"task-manager/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestErrorHandler_Handle(t *testing.T) {
	handler := NewErrorHandler()

	t.Run("app error uses the user message", func(t *testing.T) {
		err := handler.Handle("export tasks", errors.NewStorageError("write export file", stderrors.New("disk full")))

		assert.EqualError(t, err, "failed to export tasks: A storage error occurred. Please try again.")
	})

	t.Run("plain error is wrapped", func(t *testing.T) {
		cause := stderrors.New("boom")
		err := handler.Handle("export tasks", cause)

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "failed to export tasks")
	})
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	handler := NewErrorHandler()

	t.Run("app error uses the user message", func(t *testing.T) {
		err := handler.HandleSimple(errors.NewInvalidInputError("unsupported export format \"xml\"", nil))

		assert.EqualError(t, err, `unsupported export format "xml"`)
	})

	t.Run("plain error passes through", func(t *testing.T) {
		cause := stderrors.New("boom")
		assert.Same(t, cause, handler.HandleSimple(cause))
	})
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(ErrCommandFailed))
	assert.Equal(t, 1, ExitCode(errors.NewDuplicateKeyError("T1")))
	assert.Equal(t, 2, ExitCode(errors.NewConfigurationError("storage.backend: unknown backend")))
}
