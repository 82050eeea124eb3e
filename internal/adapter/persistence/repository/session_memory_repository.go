package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"mvz_quote/internal/domain/quote"
	"mvz_quote/internal/usecase/interfaces"
)

var ErrSessionExists = errors.New("session already exists")

type sessionEntry struct {
	mu      sync.Mutex
	session *quote.Session
	removed bool
}

// SessionMemoryRepository keeps live sessions in process memory. Sessions
// are conversational state and are not meant to outlive the process; only
// contact snapshots are persisted.
//
// The map lock guards membership; each entry has its own lock so that long
// operations on one session (a submission) do not block the others.

type SessionMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]*sessionEntry
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{entries: make(map[string]*sessionEntry)}
}

func (r *SessionMemoryRepository) Create(_ context.Context, s *quote.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[s.ID()]; ok {
		return ErrSessionExists
	}
	r.entries[s.ID()] = &sessionEntry{session: s}
	return nil
}

func (r *SessionMemoryRepository) With(ctx context.Context, id string, fn func(s *quote.Session) error) (bool, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return true, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return false, nil
	}
	return true, fn(e.session)
}

// Delete drops the session once no operation holds it.
func (r *SessionMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	e, ok := r.entries[id]
	if ok {
		delete(r.entries, id)
	}
	r.mu.Unlock()
	if !ok {
		return false, nil
	}

	e.mu.Lock()
	e.removed = true
	e.mu.Unlock()
	return true, nil
}

// IDs lists the live session ids in sorted order.
func (r *SessionMemoryRepository) IDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Strings(ids)
	return ids, nil
}

// DeleteIdle drops every session last touched before the cutoff. Sessions
// held by an in-flight operation are skipped until the next sweep.
func (r *SessionMemoryRepository) DeleteIdle(_ context.Context, before time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var evicted []string
	for id, e := range r.entries {
		if !e.mu.TryLock() {
			continue
		}
		if e.session.IdleSince(before) {
			e.removed = true
			delete(r.entries, id)
			evicted = append(evicted, id)
		}
		e.mu.Unlock()
	}
	sort.Strings(evicted)
	return evicted, nil
}

func (r *SessionMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
