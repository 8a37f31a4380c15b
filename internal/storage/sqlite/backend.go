package sqlite

import (
	"context"
	"database/sql"
	"time"

	"task-manager/internal/errors"
	"task-manager/internal/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// SlotBackend implements the storage.Backend interface over a local sqlite
// file. Each slot is one row of the slots table; writes replace the whole
// row, matching the wholesale-rewrite contract of the durable slot.
type SlotBackend struct {
	db *sql.DB
}

// New opens (or creates) the sqlite database at dbPath and brings its schema
// up to date.
func New(dbPath string) (*SlotBackend, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SlotBackend{db: db}, nil
}

// Close closes the database connection.
func (b *SlotBackend) Close() error {
	return b.db.Close()
}

// ReadSlot returns the value stored under key. A missing slot reports
// found=false with a nil error.
func (b *SlotBackend) ReadSlot(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT value FROM slots WHERE key = ?`
	return querySingle(ctx, b.db, query, scanSlotValue, key)
}

// WriteSlot stores value under key, replacing any previous value and
// stamping the row with the write time.
func (b *SlotBackend) WriteSlot(ctx context.Context, key string, value []byte) error {
	query := `
	INSERT INTO slots (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	_, err := executeWithRowsAffected(ctx, b.db, query, key, string(value), timeNow().Format(time.RFC3339))
	return err
}

// UpdatedAt returns the time the slot under key was last written.
func (b *SlotBackend) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	query := `SELECT updated_at FROM slots WHERE key = ?`
	raw, found, err := querySingle(ctx, b.db, query, scanSlotUpdatedAt, key)
	if err != nil || !found {
		return time.Time{}, found, err
	}

	stamp, err := time.Parse(time.RFC3339, string(raw))
	if err != nil {
		return time.Time{}, true, errors.NewStorageError("parse updated_at", err)
	}
	return stamp, true, nil
}
