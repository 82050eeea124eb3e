package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"mvz_quote/internal/usecase/interfaces"
)

// SnapshotRedisRepository stores contact snapshots as plain Redis strings.
// A zero ttl keeps keys forever.

type SnapshotRedisRepository struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.ISnapshotStore = (*SnapshotRedisRepository)(nil)

func NewSnapshotRedisRepository(client redis.Cmdable, ttl time.Duration) *SnapshotRedisRepository {
	return &SnapshotRedisRepository{client: client, ttl: ttl}
}

func (r *SnapshotRedisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (r *SnapshotRedisRepository) Put(ctx context.Context, key string, payload []byte) error {
	return r.client.Set(ctx, key, payload, r.ttl).Err()
}

func (r *SnapshotRedisRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
