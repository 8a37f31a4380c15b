package cli

import (
	"context"

	"task-manager/internal/controller"
	"task-manager/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	controller *controller.TaskController
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{controller: app.Controller}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("usage: tm list", nil)
	}

	c.controller.Refresh()
	return nil
}
