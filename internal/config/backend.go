package config

import (
	"fmt"
	"os"
	"path/filepath"

	"task-manager/internal/errors"
	"task-manager/internal/storage"
	"task-manager/internal/storage/sqlite"
)

// CreateBackend creates the durable slot backend selected by the
// configuration. The sqlite backend gets its parent directory created
// on demand; the memory backend keeps slots for the process lifetime
// only.
func CreateBackend(cfg *Config) (storage.Backend, error) {
	switch cfg.Storage.Backend {
	case BackendMemory:
		return storage.NewMemoryBackend(), nil
	case BackendSQLite:
		dbPath := cfg.GetDatabasePath()
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, errors.NewStorageError("create database directory", err)
		}
		backend, err := sqlite.New(dbPath)
		if err != nil {
			return nil, err
		}
		return backend, nil
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("storage.backend: unknown backend %q (expected sqlite or memory)", cfg.Storage.Backend))
	}
}
