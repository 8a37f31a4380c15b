package cli

import (
	"context"

	"task-manager/internal/controller"
	"task-manager/internal/errors"
)

// GetCommand handles the get command
type GetCommand struct {
	controller *controller.TaskController
}

// NewGetCommand creates a new get command handler
func NewGetCommand(app *App) *GetCommand {
	return &GetCommand{controller: app.Controller}
}

// Execute runs the get command. A miss is reported on the surface but
// is not a command failure.
func (c *GetCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("usage: tm get <id>", nil)
	}

	c.controller.Search(args[0])
	return nil
}
