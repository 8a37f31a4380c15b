package cli

import (
	"context"
	"fmt"
	"io"

	"task-manager/internal/controller"
	"task-manager/internal/errors"
)

// ClearCommand handles the clear command
type ClearCommand struct {
	controller *controller.TaskController
	surface    *ConsoleSurface
	out        io.Writer
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{
		controller: app.Controller,
		surface:    app.Surface,
		out:        app.Out,
	}
}

// Execute runs the clear command behind a confirmation prompt.
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("usage: tm clear", nil)
	}

	if !c.surface.Confirm("Remove all tasks?") {
		fmt.Fprintln(c.out, "Clear cancelled.")
		return nil
	}

	c.surface.ResetStatus()
	c.controller.ClearAll(ctx)
	if c.surface.Failed() {
		return ErrCommandFailed
	}
	return nil
}
