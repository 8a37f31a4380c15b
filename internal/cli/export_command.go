package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"task-manager/internal/controller"
	"task-manager/internal/errors"
	"task-manager/internal/export"
)

// ExportCommand handles the export command
type ExportCommand struct {
	controller   *controller.TaskController
	exporter     *export.Exporter
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		controller:   app.Controller,
		exporter:     app.Exporter,
		errorHandler: NewErrorHandler(),
		out:          app.Out,
	}
}

// Execute renders the sorted task list in the requested format and
// writes it to outputPath, defaulting to tasks.<format>.
func (c *ExportCommand) Execute(ctx context.Context, formatRaw, outputPath string) error {
	format, err := export.ParseFormat(formatRaw)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	tasks := c.controller.Tasks()
	data, err := c.exporter.Export(tasks, format)
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}

	if outputPath == "" {
		outputPath = export.DefaultFilename(format)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return c.errorHandler.Handle("export tasks", errors.NewStorageError("write export file", err))
	}

	fmt.Fprintf(c.out, "Exported %d task(s) to %s\n", len(tasks), outputPath)
	return nil
}
