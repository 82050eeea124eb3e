package quote

import "mvz_quote/internal/domain/entities"

type EventKind string

const (
	EventItemAdded      EventKind = "item_added"
	EventItemUpdated    EventKind = "item_updated"
	EventItemRemoved    EventKind = "item_removed"
	EventContactChanged EventKind = "contact_changed"
	EventStepChanged    EventKind = "step_changed"
	EventReviewEntered  EventKind = "review_entered"
	EventSubmitted      EventKind = "submitted"
	EventReset          EventKind = "reset"
)

// Event describes one change to a session. Step is the current step after
// the change.
type Event struct {
	Kind   EventKind     `json:"kind"`
	Step   entities.Step `json:"step"`
	ItemID string        `json:"item_id,omitempty"`
}

// Listener receives every change together with the view right after it.
// It runs while the session is held and must not call back into it.
type Listener func(Event, View)

func (s *Session) emit(e Event) {
	if len(s.listeners) == 0 {
		return
	}
	e.Step = s.steps.Current()
	v := s.View()
	for _, l := range s.listeners {
		l(e, v)
	}
}
