package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mvz_quote/internal/domain/entities"
	"mvz_quote/internal/domain/quote"
	"mvz_quote/internal/locale"
	"mvz_quote/internal/observability"
	"mvz_quote/internal/usecase/interfaces"
)

var (
	ErrSessionNotFound = errors.New("quote session not found")
	ErrInvalidSession  = errors.New("invalid session id")
)

// ExportError wraps a document renderer failure. The session keeps its
// items, contact and step.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return "quote export failed: " + e.Err.Error()
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// QuoteSessionSettings are the tunables of the quote flow.
type QuoteSessionSettings struct {
	DefaultLocale   string
	SnapshotKey     string
	NotificationTTL time.Duration
	ExportDelay     time.Duration
	ValidityDays    int
}

type StartSessionInput struct {
	ClientKey string
	Locale    string
}

// IQuoteSessionUseCase drives the three-step quote builder:
//   - contact details (step 1) => SetContactField()
//   - line items (step 2) => AddItem(), UpdateItem(), RemoveItem(), Summary()
//   - navigation => Next(), Prev(), GoTo(), CanNavigateTo()
//   - review and export (step 3) => Submit()

type IQuoteSessionUseCase interface {
	Start(ctx context.Context, in StartSessionInput) (quote.View, error)
	View(ctx context.Context, id string) (quote.View, error)
	Discard(ctx context.Context, id string) error
	SetContactField(ctx context.Context, id, field, value string) (quote.View, error)
	AddItem(ctx context.Context, id, itemType string) (entities.LineItem, quote.View, error)
	UpdateItem(ctx context.Context, id, itemID, field, value string) (quote.View, error)
	RemoveItem(ctx context.Context, id, itemID string) (quote.View, error)
	Summary(ctx context.Context, id string) (quote.Summary, error)
	Next(ctx context.Context, id string) (quote.Transition, quote.View, error)
	Prev(ctx context.Context, id string) (quote.Transition, quote.View, error)
	GoTo(ctx context.Context, id string, step int) (quote.Transition, quote.View, error)
	CanNavigateTo(ctx context.Context, id string, step int) (quote.GuardResult, error)
	DismissNotification(ctx context.Context, id, notificationID string) (quote.View, error)
	Submit(ctx context.Context, id string) (entities.QuoteDocument, error)
	Subscribe(ctx context.Context, id string, l quote.Listener) (func(), error)
}

type QuoteSessionUseCase struct {
	sessions  interfaces.ISessionRepository
	snapshots interfaces.ISnapshotStore
	renderer  interfaces.IQuoteDocumentRenderer
	catalog   *locale.Catalog
	settings  QuoteSessionSettings
	logger    *zap.Logger
	metrics   *observability.Metrics
	now       func() time.Time
}

var _ IQuoteSessionUseCase = (*QuoteSessionUseCase)(nil)

func NewQuoteSessionUseCase(
	sessions interfaces.ISessionRepository,
	snapshots interfaces.ISnapshotStore,
	renderer interfaces.IQuoteDocumentRenderer,
	catalog *locale.Catalog,
	settings QuoteSessionSettings,
	logger *zap.Logger,
	metrics *observability.Metrics,
) *QuoteSessionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.NewNopMetrics()
	}
	return &QuoteSessionUseCase{
		sessions:  sessions,
		snapshots: snapshots,
		renderer:  renderer,
		catalog:   catalog,
		settings:  settings,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// SnapshotKey is the storage key of a client's contact snapshot. Clients
// without a key are never snapshotted.
func SnapshotKey(prefix, clientKey string) string {
	clientKey = strings.TrimSpace(clientKey)
	if clientKey == "" {
		return ""
	}
	return prefix + ":" + clientKey
}

func (u *QuoteSessionUseCase) Start(ctx context.Context, in StartSessionInput) (quote.View, error) {
	lang := in.Locale
	if strings.TrimSpace(lang) == "" {
		lang = u.settings.DefaultLocale
	}
	loc := u.catalog.Localizer(lang)

	s := quote.NewSession(quote.Options{
		ID:              uuid.NewString(),
		ClientKey:       strings.TrimSpace(in.ClientKey),
		Locale:          loc.Lang(),
		Messages:        loc,
		NotificationTTL: u.settings.NotificationTTL,
		Now:             u.now,
	})
	u.restoreSnapshot(ctx, s)

	if err := u.sessions.Create(ctx, s); err != nil {
		u.logger.Error("[quote][usecase] create session failed", zap.Error(err))
		return quote.View{}, err
	}
	u.metrics.RecordSessionStarted()
	u.logger.Info("[quote][usecase] session started",
		zap.String("session_id", s.ID()),
		zap.String("locale", s.Locale()),
		zap.Bool("client_key", s.ClientKey() != ""),
	)
	return s.View(), nil
}

// restoreSnapshot fills the contact fields from the client's last snapshot.
// Missing, unreadable and corrupt snapshots are ignored.
func (u *QuoteSessionUseCase) restoreSnapshot(ctx context.Context, s *quote.Session) {
	key := SnapshotKey(u.settings.SnapshotKey, s.ClientKey())
	if key == "" || u.snapshots == nil {
		return
	}
	payload, err := u.snapshots.Get(ctx, key)
	if err != nil {
		u.logger.Debug("[quote][usecase] snapshot read failed", zap.String("key", key), zap.Error(err))
		return
	}
	if payload == nil {
		return
	}
	var values map[string]string
	if err := json.Unmarshal(payload, &values); err != nil {
		u.logger.Debug("[quote][usecase] snapshot ignored (corrupt)", zap.String("key", key), zap.Error(err))
		return
	}
	s.RestoreContact(values)
	u.logger.Debug("[quote][usecase] snapshot restored", zap.String("key", key), zap.Int("fields", len(values)))
}

func (u *QuoteSessionUseCase) View(ctx context.Context, id string) (quote.View, error) {
	var v quote.View
	err := u.with(ctx, id, func(s *quote.Session) error {
		v = s.View()
		return nil
	})
	return v, err
}

func (u *QuoteSessionUseCase) Discard(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSession
	}
	found, err := u.sessions.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrSessionNotFound
	}
	u.metrics.RecordSessionClosed(false)
	u.logger.Info("[quote][usecase] session discarded", zap.String("session_id", id))
	return nil
}

func (u *QuoteSessionUseCase) SetContactField(ctx context.Context, id, field, value string) (quote.View, error) {
	f, err := entities.ParseContactField(field)
	if err != nil {
		return quote.View{}, err
	}
	return u.mutate(ctx, id, func(s *quote.Session) error {
		s.SetContactField(f, value)
		return nil
	})
}

func (u *QuoteSessionUseCase) AddItem(ctx context.Context, id, itemType string) (entities.LineItem, quote.View, error) {
	t, err := entities.ParseItemType(itemType)
	if err != nil {
		return entities.LineItem{}, quote.View{}, err
	}
	var item entities.LineItem
	v, err := u.mutate(ctx, id, func(s *quote.Session) error {
		item = s.AddItem(t)
		return nil
	})
	if err != nil {
		return entities.LineItem{}, quote.View{}, err
	}
	u.metrics.RecordItemAdded(string(t))
	return item, v, nil
}

func (u *QuoteSessionUseCase) UpdateItem(ctx context.Context, id, itemID, field, value string) (quote.View, error) {
	f, err := quote.ParseItemField(field)
	if err != nil {
		return quote.View{}, err
	}
	return u.mutate(ctx, id, func(s *quote.Session) error {
		return s.UpdateItem(itemID, f, value)
	})
}

func (u *QuoteSessionUseCase) RemoveItem(ctx context.Context, id, itemID string) (quote.View, error) {
	return u.mutate(ctx, id, func(s *quote.Session) error {
		s.RemoveItem(itemID)
		return nil
	})
}

func (u *QuoteSessionUseCase) Summary(ctx context.Context, id string) (quote.Summary, error) {
	var sum quote.Summary
	err := u.with(ctx, id, func(s *quote.Session) error {
		sum = s.Summary()
		return nil
	})
	return sum, err
}

func (u *QuoteSessionUseCase) Next(ctx context.Context, id string) (quote.Transition, quote.View, error) {
	return u.navigate(ctx, id, func(s *quote.Session) (quote.Transition, error) {
		return s.Next(), nil
	})
}

func (u *QuoteSessionUseCase) Prev(ctx context.Context, id string) (quote.Transition, quote.View, error) {
	return u.navigate(ctx, id, func(s *quote.Session) (quote.Transition, error) {
		return s.Prev(), nil
	})
}

func (u *QuoteSessionUseCase) GoTo(ctx context.Context, id string, step int) (quote.Transition, quote.View, error) {
	target, err := entities.ParseStep(step)
	if err != nil {
		return quote.Transition{}, quote.View{}, err
	}
	return u.navigate(ctx, id, func(s *quote.Session) (quote.Transition, error) {
		return s.GoTo(target)
	})
}

func (u *QuoteSessionUseCase) CanNavigateTo(ctx context.Context, id string, step int) (quote.GuardResult, error) {
	target, err := entities.ParseStep(step)
	if err != nil {
		return quote.GuardResult{}, err
	}
	var g quote.GuardResult
	err = u.with(ctx, id, func(s *quote.Session) error {
		g, err = s.CanNavigateTo(target)
		return err
	})
	return g, err
}

func (u *QuoteSessionUseCase) DismissNotification(ctx context.Context, id, notificationID string) (quote.View, error) {
	return u.mutate(ctx, id, func(s *quote.Session) error {
		s.DismissNotification(notificationID)
		return nil
	})
}

// Submit re-validates the quote, waits the configured export delay and
// renders the document while holding the session. On success the session
// is reset and the client's snapshot removed; on renderer failure the state
// is kept and an *ExportError is returned.
func (u *QuoteSessionUseCase) Submit(ctx context.Context, id string) (entities.QuoteDocument, error) {
	var doc entities.QuoteDocument
	err := u.with(ctx, id, func(s *quote.Session) error {
		export, err := s.PrepareSubmission(u.now().UTC(), u.settings.ValidityDays)
		if err != nil {
			u.metrics.RecordSubmission(observability.SubmitIncomplete)
			u.logger.Warn("[quote][usecase] submission incomplete", zap.String("session_id", id), zap.Error(err))
			return err
		}

		start := time.Now()
		if err := wait(ctx, u.settings.ExportDelay); err != nil {
			u.metrics.RecordSubmission(observability.SubmitCanceled)
			u.logger.Info("[quote][usecase] submission canceled", zap.String("session_id", id), zap.Error(err))
			return err
		}

		doc, err = u.renderer.Render(ctx, export)
		if err != nil {
			s.FailSubmission()
			u.metrics.RecordSubmission(observability.SubmitFailed)
			u.logger.Error("[quote][usecase] export failed", zap.String("session_id", id), zap.Error(err))
			return &ExportError{Err: err}
		}
		u.metrics.RecordExportDuration(time.Since(start))

		s.CompleteSubmission()
		u.deleteSnapshot(ctx, s)
		u.metrics.RecordSubmission(observability.SubmitSucceeded)
		u.logger.Info("[quote][usecase] quote exported",
			zap.String("session_id", id),
			zap.Int("items", len(export.Lines)),
			zap.Float64("total", export.Total),
			zap.String("file", doc.FileName),
		)
		return nil
	})
	if err != nil {
		return entities.QuoteDocument{}, err
	}
	return doc, nil
}

func (u *QuoteSessionUseCase) deleteSnapshot(ctx context.Context, s *quote.Session) {
	key := SnapshotKey(u.settings.SnapshotKey, s.ClientKey())
	if key == "" || u.snapshots == nil {
		return
	}
	err := u.snapshots.Delete(ctx, key)
	u.metrics.RecordSnapshotWrite("delete", err)
	if err != nil {
		u.logger.Warn("[quote][usecase] snapshot delete failed", zap.String("key", key), zap.Error(err))
	}
}

// Subscribe attaches l to the session. The returned function detaches it
// and is safe to call after the session is gone.
func (u *QuoteSessionUseCase) Subscribe(ctx context.Context, id string, l quote.Listener) (func(), error) {
	var unsubscribe func()
	if err := u.with(ctx, id, func(s *quote.Session) error {
		unsubscribe = s.Subscribe(l)
		return nil
	}); err != nil {
		return nil, err
	}
	return func() {
		_, _ = u.sessions.With(context.Background(), id, func(*quote.Session) error {
			unsubscribe()
			return nil
		})
	}, nil
}

func (u *QuoteSessionUseCase) navigate(ctx context.Context, id string, move func(*quote.Session) (quote.Transition, error)) (quote.Transition, quote.View, error) {
	var t quote.Transition
	v, err := u.mutate(ctx, id, func(s *quote.Session) error {
		var err error
		t, err = move(s)
		return err
	})
	if err != nil {
		return quote.Transition{}, quote.View{}, err
	}
	u.metrics.RecordStepTransition(t.To.String(), t.Allowed)
	if !t.Allowed {
		u.logger.Info("[quote][usecase] step blocked",
			zap.String("session_id", id),
			zap.Int("from", int(t.From)),
			zap.String("reason", string(t.Reason)),
		)
	}
	return t, v, nil
}

// mutate runs fn and returns the view right after it.
func (u *QuoteSessionUseCase) mutate(ctx context.Context, id string, fn func(*quote.Session) error) (quote.View, error) {
	var v quote.View
	err := u.with(ctx, id, func(s *quote.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		v = s.View()
		return nil
	})
	return v, err
}

func (u *QuoteSessionUseCase) with(ctx context.Context, id string, fn func(*quote.Session) error) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSession
	}
	found, err := u.sessions.With(ctx, id, fn)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
