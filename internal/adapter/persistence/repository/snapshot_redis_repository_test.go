package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestSnapshotRedisRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	repo := NewSnapshotRedisRepository(client, time.Hour)

	got, err := repo.Get(ctx, "mvzFormData:abc")
	if err != nil || got != nil {
		t.Fatalf("expected nil for missing key, got %q err=%v", got, err)
	}

	if err := repo.Put(ctx, "mvzFormData:abc", []byte(`{"email":"ana@example.si"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err = repo.Get(ctx, "mvzFormData:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"email":"ana@example.si"}` {
		t.Fatalf("unexpected payload %q", got)
	}
	if ttl := mr.TTL("mvzFormData:abc"); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}

	if err := repo.Delete(ctx, "mvzFormData:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if mr.Exists("mvzFormData:abc") {
		t.Fatal("key should be gone")
	}
}

func TestSnapshotRedisRepository_ExpiredKeyIsMissing(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	repo := NewSnapshotRedisRepository(client, time.Minute)

	_ = repo.Put(ctx, "k", []byte("{}"))
	mr.FastForward(2 * time.Minute)

	got, err := repo.Get(ctx, "k")
	if err != nil || got != nil {
		t.Fatalf("expected expired key to read as missing, got %q err=%v", got, err)
	}
}

func TestSnapshotRedisRepository_ServerDown(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	repo := NewSnapshotRedisRepository(client, 0)
	mr.Close()

	if _, err := repo.Get(ctx, "k"); err == nil {
		t.Fatal("expected error when redis is unreachable")
	}
	if err := repo.Put(ctx, "k", []byte("{}")); err == nil {
		t.Fatal("expected error when redis is unreachable")
	}
}
