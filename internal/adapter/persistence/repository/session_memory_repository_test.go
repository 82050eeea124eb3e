package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"mvz_quote/internal/domain/quote"
)

func newSession(id string, at time.Time) *quote.Session {
	return quote.NewSession(quote.Options{
		ID:  id,
		Now: func() time.Time { return at },
	})
}

func TestSessionMemoryRepository_CreateAndWith(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository()
	s := newSession("a", time.Now())

	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, s); !errors.Is(err, ErrSessionExists) {
		t.Fatalf("expected ErrSessionExists, got %v", err)
	}

	var got *quote.Session
	found, err := repo.With(ctx, "a", func(s *quote.Session) error {
		got = s
		return nil
	})
	if err != nil || !found {
		t.Fatalf("With: found=%v err=%v", found, err)
	}
	if got != s {
		t.Fatal("expected the stored session")
	}

	found, err = repo.With(ctx, "missing", func(*quote.Session) error {
		t.Fatal("fn must not run for unknown id")
		return nil
	})
	if found || err != nil {
		t.Fatalf("expected not found, got found=%v err=%v", found, err)
	}
}

func TestSessionMemoryRepository_WithPropagatesError(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository()
	_ = repo.Create(ctx, newSession("a", time.Now()))

	boom := errors.New("boom")
	found, err := repo.With(ctx, "a", func(*quote.Session) error { return boom })
	if !found || !errors.Is(err, boom) {
		t.Fatalf("expected found with boom, got found=%v err=%v", found, err)
	}
}

func TestSessionMemoryRepository_WithCanceledContext(t *testing.T) {
	repo := NewSessionMemoryRepository()
	_ = repo.Create(context.Background(), newSession("a", time.Now()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.With(ctx, "a", func(*quote.Session) error {
		t.Fatal("fn must not run after cancel")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSessionMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository()
	_ = repo.Create(ctx, newSession("a", time.Now()))

	ok, err := repo.Delete(ctx, "a")
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	ok, _ = repo.Delete(ctx, "a")
	if ok {
		t.Fatal("second delete should report missing")
	}
	if repo.Len() != 0 {
		t.Fatalf("expected empty repo, got %d", repo.Len())
	}
}

func TestSessionMemoryRepository_IDsSorted(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository()
	for _, id := range []string{"c", "a", "b"} {
		_ = repo.Create(ctx, newSession(id, time.Now()))
	}

	ids, err := repo.IDs(ctx)
	if err != nil {
		t.Fatalf("IDs: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestSessionMemoryRepository_DeleteIdle(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository()
	base := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	_ = repo.Create(ctx, newSession("old", base))
	_ = repo.Create(ctx, newSession("fresh", base.Add(2*time.Hour)))

	evicted, err := repo.DeleteIdle(ctx, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("DeleteIdle: %v", err)
	}
	if len(evicted) != 1 || evicted[0] != "old" {
		t.Fatalf("expected [old], got %v", evicted)
	}
	if found, _ := repo.With(ctx, "fresh", func(*quote.Session) error { return nil }); !found {
		t.Fatal("fresh session should survive")
	}
}

func TestSessionMemoryRepository_DeleteIdleSkipsHeldSession(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository()
	base := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	_ = repo.Create(ctx, newSession("busy", base))

	_, _ = repo.With(ctx, "busy", func(*quote.Session) error {
		evicted, err := repo.DeleteIdle(ctx, base.Add(time.Hour))
		if err != nil {
			t.Fatalf("DeleteIdle: %v", err)
		}
		if len(evicted) != 0 {
			t.Fatalf("held session must not be evicted, got %v", evicted)
		}
		return nil
	})

	if repo.Len() != 1 {
		t.Fatalf("expected session to remain, got %d", repo.Len())
	}
}
