package storage

import (
	"context"
	"sync"
)

// MemoryBackend implements the Backend interface with an in-process map.
// Nothing survives the process; it backs unit tests and ephemeral runs.
// The mutex exists so parallel tests may share one backend safely.
type MemoryBackend struct {
	mu    sync.Mutex
	slots map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		slots: make(map[string][]byte),
	}
}

// ReadSlot returns the value stored under key, if any.
func (b *MemoryBackend) ReadSlot(ctx context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	value, ok := b.slots[key]
	if !ok {
		return nil, false, nil
	}

	// Copy so callers cannot mutate the stored value.
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// WriteSlot stores value under key, replacing any previous value.
func (b *MemoryBackend) WriteSlot(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	b.slots[key] = stored
	return nil
}

// Close is a no-op for the memory backend.
func (b *MemoryBackend) Close() error {
	return nil
}
