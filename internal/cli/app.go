package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"task-manager/internal/config"
	"task-manager/internal/controller"
	"task-manager/internal/export"
	"task-manager/internal/logging"
	"task-manager/internal/storage"
	"task-manager/internal/store"
	"task-manager/internal/validation"
)

// App bundles the wired services a command handler needs for one
// invocation: the store hydrated from the configured backend, the
// controller bound to the console surface, and the exporter.
type App struct {
	Config     *config.Config
	Logger     *log.Logger
	Backend    storage.Backend
	Store      *store.TaskStore
	Controller *controller.TaskController
	Surface    *ConsoleSurface
	Exporter   *export.Exporter
	Out        io.Writer
}

// NewApp wires configuration, logging, storage, store and controller.
// The console surface is bound by default; the ui command rebinds its
// own surface before running.
func NewApp(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	logger := logging.NewFromConfig(cfg.Logging.Level, cfg.Logging.Format)

	backend, err := config.CreateBackend(cfg)
	if err != nil {
		return nil, err
	}

	taskStore, err := store.New(ctx, backend, validation.NewTaskValidator(), logger)
	if err != nil {
		backend.Close()
		return nil, err
	}

	surface := NewConsoleSurface(in, out, errOut)
	ctrl := controller.New(taskStore, cfg.Display.DateTimeFormat)
	ctrl.Bind(surface)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Backend:    backend,
		Store:      taskStore,
		Controller: ctrl,
		Surface:    surface,
		Exporter:   export.NewExporter(),
		Out:        out,
	}, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.Backend.Close()
}
