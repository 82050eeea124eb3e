package repository

import (
	"context"
	"sync"

	"mvz_quote/internal/usecase/interfaces"
)

// SnapshotMemoryRepository is the default snapshot store. Snapshots are lost
// on restart.

type SnapshotMemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ interfaces.ISnapshotStore = (*SnapshotMemoryRepository)(nil)

func NewSnapshotMemoryRepository() *SnapshotMemoryRepository {
	return &SnapshotMemoryRepository{data: make(map[string][]byte)}
}

func (r *SnapshotMemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payload, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), payload...), nil
}

func (r *SnapshotMemoryRepository) Put(_ context.Context, key string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = append([]byte(nil), payload...)
	return nil
}

func (r *SnapshotMemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}
