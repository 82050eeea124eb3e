package interfaces

import (
	"context"
	"time"

	"mvz_quote/internal/domain/quote"
)

// ISessionRepository holds the live quote sessions.
//
// With runs fn while holding the session exclusively, so every read and
// mutation of one session is serialized. It reports false when no session
// has the given id.

type ISessionRepository interface {
	Create(ctx context.Context, s *quote.Session) error
	With(ctx context.Context, id string, fn func(s *quote.Session) error) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	IDs(ctx context.Context) ([]string, error)
	DeleteIdle(ctx context.Context, before time.Time) ([]string, error)
}
