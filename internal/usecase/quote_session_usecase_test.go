package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mvz_quote/internal/domain/entities"
	"mvz_quote/internal/domain/quote"
	"mvz_quote/internal/locale"
	mock_interfaces "mvz_quote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testCatalog = locale.MustCatalog()

type testDeps struct {
	sessions  *mock_interfaces.MockISessionRepository
	snapshots *mock_interfaces.MockISnapshotStore
	renderer  *mock_interfaces.MockIQuoteDocumentRenderer
}

func newTestUseCase(t *testing.T) (*QuoteSessionUseCase, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		sessions:  mock_interfaces.NewMockISessionRepository(ctrl),
		snapshots: mock_interfaces.NewMockISnapshotStore(ctrl),
		renderer:  mock_interfaces.NewMockIQuoteDocumentRenderer(ctrl),
	}
	uc := NewQuoteSessionUseCase(deps.sessions, deps.snapshots, deps.renderer, testCatalog, QuoteSessionSettings{
		DefaultLocale:   "sl",
		SnapshotKey:     "mvzFormData",
		NotificationTTL: 5 * time.Second,
		ValidityDays:    30,
	}, nil, nil)
	uc.now = func() time.Time { return time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC) }
	return uc, deps
}

func newTestSession(clientKey string) *quote.Session {
	return quote.NewSession(quote.Options{
		ID:        "s1",
		ClientKey: clientKey,
		Locale:    "en",
		Messages:  testCatalog.Localizer("en"),
	})
}

// holdSession makes the repository serve sess for its id.
func holdSession(repo *mock_interfaces.MockISessionRepository, sess *quote.Session) {
	repo.EXPECT().With(gomock.Any(), sess.ID(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fn func(*quote.Session) error) (bool, error) {
			return true, fn(sess)
		},
	).AnyTimes()
}

func completeSession(sess *quote.Session) {
	sess.SetContactField(entities.ContactName, "Ana Novak")
	sess.SetContactField(entities.ContactEmail, "ana@example.si")
	sess.SetContactField(entities.ContactPhone, "031 234 567")
	item := sess.AddItem(entities.ItemTypeWindow)
	_ = sess.UpdateItem(item.ID, quote.FieldWidth, "120")
	_ = sess.UpdateItem(item.ID, quote.FieldHeight, "150")
}

func TestQuoteSessionUseCase_Start(t *testing.T) {
	t.Run("restores snapshot", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.snapshots.EXPECT().Get(gomock.Any(), "mvzFormData:client-1").
			Return([]byte(`{"name":"Ana","phone":"031234567","address":"Okrog 5"}`), nil)
		var created *quote.Session
		deps.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *quote.Session) error {
				created = s
				return nil
			},
		)

		v, err := uc.Start(context.Background(), StartSessionInput{ClientKey: " client-1 ", Locale: "en-GB"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil || v.SessionID != created.ID() || v.SessionID == "" {
			t.Fatalf("expected created session to match view")
		}
		if v.Locale != "en" || v.CurrentStep != entities.StepContact {
			t.Fatalf("unexpected view %+v", v)
		}
		if v.Contact.Name != "Ana" || v.Contact.Phone != "+38631234567" || v.Contact.Address != "Okrog 5" {
			t.Fatalf("expected restored contact, got %+v", v.Contact)
		}
	})

	t.Run("corrupt snapshot ignored", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.snapshots.EXPECT().Get(gomock.Any(), "mvzFormData:c").Return([]byte("{not json"), nil)
		deps.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		v, err := uc.Start(context.Background(), StartSessionInput{ClientKey: "c"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.Contact.IsZero() {
			t.Fatalf("expected empty contact, got %+v", v.Contact)
		}
		if v.Locale != "sl" {
			t.Fatalf("expected default locale, got %q", v.Locale)
		}
	})

	t.Run("snapshot read error ignored", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.snapshots.EXPECT().Get(gomock.Any(), "mvzFormData:c").Return(nil, errors.New("redis down"))
		deps.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Start(context.Background(), StartSessionInput{ClientKey: "c"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no client key skips snapshot", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Start(context.Background(), StartSessionInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("full"))

		_, err := uc.Start(context.Background(), StartSessionInput{})
		if err == nil || err.Error() != "full" {
			t.Fatalf("expected full error, got %v", err)
		}
	})
}

func TestQuoteSessionUseCase_SessionLookup(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteSessionUseCase(nil, nil, nil, testCatalog, QuoteSessionSettings{}, nil, nil)
		if _, err := uc.View(context.Background(), "  "); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.sessions.EXPECT().With(gomock.Any(), "nope", gomock.Any()).Return(false, nil)

		if _, err := uc.View(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.sessions.EXPECT().With(gomock.Any(), "s1", gomock.Any()).Return(false, errors.New("db"))

		if _, err := uc.Summary(context.Background(), "s1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteSessionUseCase_Discard(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.sessions.EXPECT().Delete(gomock.Any(), "s1").Return(true, nil)
		if err := uc.Discard(context.Background(), "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.sessions.EXPECT().Delete(gomock.Any(), "s1").Return(false, nil)
		if err := uc.Discard(context.Background(), "s1"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestQuoteSessionUseCase_EditFlow(t *testing.T) {
	uc, deps := newTestUseCase(t)
	sess := newTestSession("")
	holdSession(deps.sessions, sess)
	ctx := context.Background()

	if _, err := uc.SetContactField(ctx, "s1", "fax", "1"); !errors.Is(err, entities.ErrUnknownContactField) {
		t.Fatalf("expected ErrUnknownContactField, got %v", err)
	}
	v, err := uc.SetContactField(ctx, "s1", "email", "broken")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.FieldErrors) != 1 || v.FieldErrors[0].Field != entities.ContactEmail {
		t.Fatalf("expected email error, got %+v", v.FieldErrors)
	}

	if _, _, err := uc.AddItem(ctx, "s1", "skylight"); !errors.Is(err, entities.ErrUnknownItemType) {
		t.Fatalf("expected ErrUnknownItemType, got %v", err)
	}
	item, v, err := uc.AddItem(ctx, "s1", "door")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Type != entities.ItemTypeDoor || len(v.Items) != 1 {
		t.Fatalf("unexpected add result %+v %+v", item, v.Items)
	}

	if _, err := uc.UpdateItem(ctx, "s1", item.ID, "material", "Steel"); !errors.Is(err, quote.ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
	if _, err := uc.UpdateItem(ctx, "s1", item.ID, "depth", "3"); !errors.Is(err, quote.ErrUnknownItemField) {
		t.Fatalf("expected ErrUnknownItemField, got %v", err)
	}
	if _, err := uc.UpdateItem(ctx, "s1", item.ID, "width", "100"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err = uc.UpdateItem(ctx, "s1", item.ID, "height", "200")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// door, pvc, 2m²: 300 * 2
	if v.Summary.Total != 600 {
		t.Fatalf("expected total 600, got %v", v.Summary.Total)
	}
	v, err = uc.UpdateItem(ctx, "s1", item.ID, "material", "Wood")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// door, wood, 2m²: 300 * 2 * 2.0
	if v.Summary.Total != 1200 {
		t.Fatalf("expected total 1200, got %v", v.Summary.Total)
	}

	sum, err := uc.Summary(ctx, "s1")
	if err != nil || sum.TotalText != "€1200.00" || !sum.HasItems {
		t.Fatalf("unexpected summary %+v err=%v", sum, err)
	}

	v, err = uc.RemoveItem(ctx, "s1", item.ID)
	if err != nil || len(v.Items) != 0 || v.Summary.HasItems {
		t.Fatalf("expected empty quote, got %+v err=%v", v.Items, err)
	}
	if _, err := uc.RemoveItem(ctx, "s1", "missing"); err != nil {
		t.Fatalf("removing unknown item must be a no-op, got %v", err)
	}

	v, _ = uc.View(ctx, "s1")
	if len(v.Notifications) == 0 {
		t.Fatalf("expected notifications")
	}
	v, err = uc.DismissNotification(ctx, "s1", v.Notifications[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, n := range v.Notifications {
		if n.Level == "success" {
			t.Fatalf("expected add notification dismissed, got %+v", v.Notifications)
		}
	}
}

func TestQuoteSessionUseCase_Navigation(t *testing.T) {
	uc, deps := newTestUseCase(t)
	sess := newTestSession("")
	holdSession(deps.sessions, sess)
	ctx := context.Background()

	tr, v, err := uc.Next(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Allowed || tr.Reason != quote.ReasonContactInvalid || len(v.FieldErrors) != 3 {
		t.Fatalf("expected blocked transition with errors, got %+v %+v", tr, v.FieldErrors)
	}

	if _, _, err := uc.GoTo(ctx, "s1", 4); !errors.Is(err, entities.ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep, got %v", err)
	}
	if _, err := uc.CanNavigateTo(ctx, "s1", 0); !errors.Is(err, entities.ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep, got %v", err)
	}

	completeSession(sess)
	g, err := uc.CanNavigateTo(ctx, "s1", 3)
	if err != nil || !g.CanAdvance {
		t.Fatalf("expected review reachable, got %+v err=%v", g, err)
	}
	tr, v, err = uc.GoTo(ctx, "s1", 3)
	if err != nil || !tr.Allowed || v.CurrentStep != entities.StepReview || v.Review == nil {
		t.Fatalf("expected jump to review, got %+v err=%v", tr, err)
	}
	tr, v, err = uc.Prev(ctx, "s1")
	if err != nil || !tr.Allowed || v.CurrentStep != entities.StepItems {
		t.Fatalf("expected back to items, got %+v err=%v", tr, err)
	}
}

func TestQuoteSessionUseCase_Submit(t *testing.T) {
	t.Run("incomplete", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		sess := newTestSession("c1")
		holdSession(deps.sessions, sess)
		sess.SetContactField(entities.ContactName, "Ana")

		_, err := uc.Submit(context.Background(), "s1")
		var ge *quote.GuardError
		if !errors.As(err, &ge) || ge.Guard.Reason != quote.ReasonContactInvalid {
			t.Fatalf("expected contact guard error, got %v", err)
		}
	})

	t.Run("export failure keeps state", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		sess := newTestSession("c1")
		holdSession(deps.sessions, sess)
		completeSession(sess)
		sess.GoTo(entities.StepReview)

		deps.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(entities.QuoteDocument{}, errors.New("pdf"))

		_, err := uc.Submit(context.Background(), "s1")
		var ee *ExportError
		if !errors.As(err, &ee) || ee.Err.Error() != "pdf" {
			t.Fatalf("expected ExportError, got %v", err)
		}
		if sess.CurrentStep() != entities.StepReview || len(sess.Items()) != 1 || sess.Contact().Name == "" {
			t.Fatalf("expected session state preserved")
		}
	})

	t.Run("success resets and deletes snapshot", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		sess := newTestSession("c1")
		holdSession(deps.sessions, sess)
		completeSession(sess)

		deps.renderer.EXPECT().Render(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteExport{})).DoAndReturn(
			func(_ context.Context, q entities.QuoteExport) (entities.QuoteDocument, error) {
				if len(q.Lines) != 1 || q.Total != 270 || q.ValidityDays != 30 || q.Locale != "en" {
					t.Fatalf("unexpected export %+v", q)
				}
				if q.Contact.Phone != "+38631234567" {
					t.Fatalf("expected normalized phone, got %q", q.Contact.Phone)
				}
				return entities.QuoteDocument{FileName: q.FileName(), ContentType: "application/pdf", Content: []byte("%PDF")}, nil
			},
		)
		deps.snapshots.EXPECT().Delete(gomock.Any(), "mvzFormData:c1").Return(nil)

		doc, err := uc.Submit(context.Background(), "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.FileName != "quote_2026-05-04.pdf" {
			t.Fatalf("unexpected file name %q", doc.FileName)
		}
		if sess.CurrentStep() != entities.StepContact || len(sess.Items()) != 0 || !sess.Contact().IsZero() {
			t.Fatalf("expected session reset")
		}
	})

	t.Run("canceled during export delay", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		uc.settings.ExportDelay = time.Hour
		sess := newTestSession("")
		holdSession(deps.sessions, sess)
		completeSession(sess)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := uc.Submit(ctx, "s1"); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if len(sess.Items()) != 1 {
			t.Fatalf("cancellation must keep the quote")
		}
	})
}

func TestQuoteSessionUseCase_Subscribe(t *testing.T) {
	uc, deps := newTestUseCase(t)
	sess := newTestSession("")
	holdSession(deps.sessions, sess)
	ctx := context.Background()

	var events []quote.EventKind
	unsubscribe, err := uc.Subscribe(ctx, "s1", func(e quote.Event, _ quote.View) {
		events = append(events, e.Kind)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, _ = uc.AddItem(ctx, "s1", "window")
	unsubscribe()
	_, _, _ = uc.AddItem(ctx, "s1", "window")

	if len(events) != 1 || events[0] != quote.EventItemAdded {
		t.Fatalf("expected a single item_added event, got %v", events)
	}
}

func TestSnapshotKey(t *testing.T) {
	if got := SnapshotKey("mvzFormData", " abc "); got != "mvzFormData:abc" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := SnapshotKey("mvzFormData", ""); got != "" {
		t.Fatalf("expected no key without client, got %q", got)
	}
}
