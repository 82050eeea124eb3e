package quote

import (
	"fmt"
	"time"

	"mvz_quote/internal/domain/entities"
	"mvz_quote/internal/domain/notify"
	"mvz_quote/internal/domain/validation"
	"mvz_quote/internal/locale"
)

// Messages renders user-facing text for a message id.
type Messages interface {
	Text(id string, data map[string]any) string
}

type rawMessages struct{}

func (rawMessages) Text(id string, _ map[string]any) string { return id }

type Options struct {
	ID        string
	ClientKey string
	Locale    string
	Messages  Messages
	// NotificationTTL defaults to notify.DefaultTTL.
	NotificationTTL time.Duration
	Now             func() time.Time
	NewItemID       IDGenerator
}

// Session is the complete state of one quote being built. All mutations
// notify subscribers synchronously once they are done.
//
// A Session is not safe for concurrent use; callers serialize access.
type Session struct {
	id        string
	clientKey string
	locale    string
	msgs      Messages
	now       func() time.Time

	store       *Store
	steps       *StepController
	contact     entities.ContactInfo
	fieldErrors map[entities.ContactField]validation.FieldError
	notices     *notify.Center

	listeners    map[int]Listener
	nextListener int

	createdAt time.Time
	touchedAt time.Time
	// contactRev counts contact changes; savedRev is the last one persisted.
	contactRev uint64
	savedRev   uint64
}

func NewSession(opts Options) *Session {
	if opts.Messages == nil {
		opts.Messages = rawMessages{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Session{
		id:          opts.ID,
		clientKey:   opts.ClientKey,
		locale:      opts.Locale,
		msgs:        opts.Messages,
		now:         opts.Now,
		store:       NewStore(opts.NewItemID),
		fieldErrors: make(map[entities.ContactField]validation.FieldError),
		notices:     notify.NewCenter(opts.NotificationTTL, opts.Now),
		listeners:   make(map[int]Listener),
	}
	s.steps = NewStepController(s.store, func() entities.ContactInfo { return s.contact })
	s.createdAt = s.now().UTC()
	s.touchedAt = s.createdAt
	return s
}

func (s *Session) ID() string { return s.id }
func (s *Session) ClientKey() string { return s.clientKey }
func (s *Session) Locale() string { return s.locale }
func (s *Session) CurrentStep() entities.Step { return s.steps.Current() }
func (s *Session) Contact() entities.ContactInfo { return s.contact }
func (s *Session) Items() []entities.LineItem { return s.store.Items() }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) TouchedAt() time.Time { return s.touchedAt }
func (s *Session) Notifications() []notify.Notification { return s.notices.Active() }

// IdleSince reports whether the session was last used before t.
func (s *Session) IdleSince(t time.Time) bool {
	return s.touchedAt.Before(t)
}

// RestoreContact fills contact fields from a saved snapshot. Unknown keys
// are skipped, no errors are recorded and the session stays clean.
func (s *Session) RestoreContact(values map[string]string) {
	for key, v := range values {
		f, err := entities.ParseContactField(key)
		if err != nil {
			continue
		}
		if f == entities.ContactPhone {
			v = validation.NormalizePhone(v)
		}
		s.contact = s.contact.With(f, v)
	}
}

// SetContactField stores a contact value and re-validates that field. Phone
// numbers are normalized first. The returned error, if any, is the field's
// validation failure.
func (s *Session) SetContactField(f entities.ContactField, value string) *validation.FieldError {
	if f == entities.ContactPhone {
		value = validation.NormalizePhone(value)
	}
	s.contact = s.contact.With(f, value)
	s.contactRev++
	delete(s.fieldErrors, f)

	var failed *validation.FieldError
	if field, ok := validation.FieldFor(f); ok {
		if fe, valid := validation.Check(field, value); !valid {
			fe = s.localizeFieldError(fe)
			s.fieldErrors[f] = fe
			failed = &fe
		}
	}
	s.touch()
	s.emit(Event{Kind: EventContactChanged})
	return failed
}

func (s *Session) AddItem(t entities.ItemType) entities.LineItem {
	item := s.store.AddItem(t)
	s.notices.Push(notify.LevelSuccess, s.msgs.Text(locale.MsgItemAdded, map[string]any{
		"Type": s.itemTypeLabel(t),
	}))
	s.touch()
	s.emit(Event{Kind: EventItemAdded, ItemID: item.ID})
	return item
}

// UpdateItem edits one field of an item. Unknown ids are ignored.
func (s *Session) UpdateItem(id string, field ItemField, value string) error {
	changed, err := s.store.UpdateItem(id, field, value)
	if err != nil {
		return err
	}
	s.touch()
	if changed {
		s.emit(Event{Kind: EventItemUpdated, ItemID: id})
	}
	return nil
}

func (s *Session) RemoveItem(id string) bool {
	s.touch()
	if !s.store.RemoveItem(id) {
		return false
	}
	s.notices.Push(notify.LevelInfo, s.msgs.Text(locale.MsgItemRemoved, nil))
	s.emit(Event{Kind: EventItemRemoved, ItemID: id})
	return true
}

func (s *Session) Item(id string) (entities.LineItem, bool) {
	return s.store.Get(id)
}

// Guard evaluates the forward guard of the current step.
func (s *Session) Guard() GuardResult {
	return s.describe(s.steps.Guard(s.steps.Current()))
}

func (s *Session) CanNavigateTo(step entities.Step) (GuardResult, error) {
	if !step.Valid() {
		return GuardResult{}, fmt.Errorf("%w: %d", entities.ErrInvalidStep, step)
	}
	return s.describe(s.steps.CanNavigateTo(step)), nil
}

func (s *Session) Next() Transition {
	return s.apply(s.steps.Next())
}

func (s *Session) Prev() Transition {
	return s.apply(s.steps.Prev())
}

func (s *Session) GoTo(step entities.Step) (Transition, error) {
	if !step.Valid() {
		return Transition{}, fmt.Errorf("%w: %d", entities.ErrInvalidStep, step)
	}
	return s.apply(s.steps.GoTo(step)), nil
}

func (s *Session) DismissNotification(id string) bool {
	s.touch()
	return s.notices.Dismiss(id)
}

// Subscribe registers l for every later change and returns a function that
// removes it.
func (s *Session) Subscribe(l Listener) func() {
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = l
	return func() { delete(s.listeners, id) }
}

// PendingSnapshot returns the contact values to persist when they changed
// since the last MarkSaved, with the revision to pass to it.
func (s *Session) PendingSnapshot() (map[string]string, uint64, bool) {
	if s.contactRev == s.savedRev {
		return nil, 0, false
	}
	return s.contact.Values(), s.contactRev, true
}

func (s *Session) MarkSaved(rev uint64) {
	if rev > s.savedRev {
		s.savedRev = rev
	}
}

// Reset returns the session to an empty form on step one. Notifications
// are kept.
func (s *Session) Reset() {
	s.store.Clear()
	s.contact = entities.ContactInfo{}
	clear(s.fieldErrors)
	s.steps.Reset()
	s.contactRev++
	s.savedRev = s.contactRev
	s.touch()
	s.emit(Event{Kind: EventReset})
}

func (s *Session) apply(t Transition) Transition {
	s.touch()
	if !t.Allowed {
		g := s.describe(*t.Guard)
		t.Guard = &g
		s.recordBlocked(g)
		return t
	}
	if t.Changed() {
		s.emit(Event{Kind: EventStepChanged})
	}
	if t.To == entities.StepReview {
		s.emit(Event{Kind: EventReviewEntered})
	}
	return t
}

// recordBlocked stores the field errors of a failed guard and raises an
// error notification.
func (s *Session) recordBlocked(g GuardResult) {
	for _, fe := range g.FieldErrors {
		s.fieldErrors[fe.Field] = fe
	}
	s.notices.Push(notify.LevelError, g.Message)
}

func (s *Session) describe(g GuardResult) GuardResult {
	if g.CanAdvance {
		return g
	}
	g.Message = s.msgs.Text(reasonMessageID(g.Reason), nil)
	for i := range g.FieldErrors {
		g.FieldErrors[i] = s.localizeFieldError(g.FieldErrors[i])
	}
	return g
}

func (s *Session) localizeFieldError(fe validation.FieldError) validation.FieldError {
	switch fe.Code {
	case validation.CodeRequired:
		fe.Message = s.msgs.Text(locale.MsgFieldRequired, nil)
	case validation.CodeEmail:
		fe.Message = s.msgs.Text(locale.MsgFieldEmail, nil)
	case validation.CodePhone:
		fe.Message = s.msgs.Text(locale.MsgFieldPhone, nil)
	}
	return fe
}

func (s *Session) itemTypeLabel(t entities.ItemType) string {
	return s.msgs.Text(locale.ItemTypeID(t), nil)
}

func (s *Session) touch() {
	s.touchedAt = s.now().UTC()
}

func reasonMessageID(r Reason) string {
	switch r {
	case ReasonContactInvalid:
		return locale.MsgContactInvalid
	case ReasonNoItems:
		return locale.MsgNoItems
	case ReasonMissingDimensions:
		return locale.MsgMissingDimensions
	}
	return string(r)
}
