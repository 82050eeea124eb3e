package repository

import (
	"context"
	"testing"
)

func TestSnapshotMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotMemoryRepository()

	got, err := repo.Get(ctx, "k")
	if err != nil || got != nil {
		t.Fatalf("expected nil for missing key, got %q err=%v", got, err)
	}

	payload := []byte(`{"name":"Ana"}`)
	if err := repo.Put(ctx, "k", payload); err != nil {
		t.Fatalf("Put: %v", err)
	}
	payload[2] = 'X'

	got, _ = repo.Get(ctx, "k")
	if string(got) != `{"name":"Ana"}` {
		t.Fatalf("stored payload must not alias caller buffer, got %q", got)
	}

	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := repo.Get(ctx, "k"); got != nil {
		t.Fatalf("expected nil after delete, got %q", got)
	}
}
