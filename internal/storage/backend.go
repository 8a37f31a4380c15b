package storage

import (
	"context"
)

// Backend defines the interface for durable slot storage. A slot is a named
// blob of bytes, rewritten wholesale on every mutation; the store reads and
// writes exactly one slot per operation.
type Backend interface {
	// ReadSlot returns the value stored under key. The second return value
	// reports whether the slot exists; a missing slot is not an error.
	ReadSlot(ctx context.Context, key string) ([]byte, bool, error)

	// WriteSlot stores value under key, replacing any previous value.
	WriteSlot(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the backend.
	Close() error
}
