package cli

import (
	"context"

	"task-manager/internal/controller"
	"task-manager/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	controller *controller.TaskController
	surface    *ConsoleSurface
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		controller: app.Controller,
		surface:    app.Surface,
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.NewInvalidInputError("usage: tm add <id> <description> <datetime>", nil)
	}

	c.surface.ResetStatus()
	c.controller.SubmitNewTask(ctx, args[0], args[1], args[2])
	if c.surface.Failed() {
		return ErrCommandFailed
	}
	return nil
}
