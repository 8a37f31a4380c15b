package cli

import (
	stderrors "errors"
	"fmt"

	"task-manager/internal/errors"
)

// ErrCommandFailed signals a failure the surface has already reported;
// only the nonzero exit code remains for the caller to set.
var ErrCommandFailed = stderrors.New("command failed")

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle wraps err with the failed operation and its user-facing message
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple returns the user-facing message without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}
	return err
}

// ExitCode maps an error escaping a command to the process exit code.
// Configuration problems exit 2 so scripts can tell them from task
// failures.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.IsErrorType(err, errors.ErrorTypeConfiguration) {
		return 2
	}
	return 1
}
