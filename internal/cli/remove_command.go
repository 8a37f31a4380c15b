package cli

import (
	"context"

	"task-manager/internal/controller"
	"task-manager/internal/errors"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	controller *controller.TaskController
	surface    *ConsoleSurface
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{
		controller: app.Controller,
		surface:    app.Surface,
	}
}

// Execute runs the remove command. The surface prompts before the
// delete goes through unless --yes was given; a declined prompt is not
// a failure.
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("usage: tm remove <id>", nil)
	}

	c.surface.ResetStatus()
	c.controller.RequestDelete(ctx, args[0])
	if c.surface.Failed() {
		return ErrCommandFailed
	}
	return nil
}
