package cli

import (
	"context"

	"task-manager/internal/config"
	"task-manager/internal/controller"
	"task-manager/internal/errors"
	"task-manager/internal/ui"
)

// UICommand launches the interactive terminal frontend
type UICommand struct {
	controller *controller.TaskController
	config     *config.Config
}

// NewUICommand creates a new ui command handler
func NewUICommand(app *App) *UICommand {
	return &UICommand{
		controller: app.Controller,
		config:     app.Config,
	}
}

// Execute runs the terminal UI until the user quits. The UI binds its
// own surface to the controller, replacing the console one.
func (c *UICommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("usage: tm ui", nil)
	}

	return ui.Run(ctx, c.controller, ui.Options{
		DismissAfter: c.config.GetDismissAfter(),
	})
}
