package interfaces

import "context"

// ISnapshotStore persists contact snapshots as opaque JSON payloads keyed by
// client. Get returns a nil payload when the key does not exist.

type ISnapshotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}
