package quote

import (
	"fmt"
	"time"

	"mvz_quote/internal/domain/entities"
	"mvz_quote/internal/domain/notify"
	"mvz_quote/internal/locale"
)

// GuardError reports a submission refused because a step guard failed.
type GuardError struct {
	Guard GuardResult
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("quote incomplete: %s at step %d", e.Guard.Reason, e.Guard.Step)
}

// PrepareSubmission re-checks the contact and items guards and builds the
// export payload. When a guard fails the session is moved to the earliest
// failing step and a *GuardError is returned.
func (s *Session) PrepareSubmission(issuedAt time.Time, validityDays int) (entities.QuoteExport, error) {
	s.touch()
	if g, failing := s.steps.FirstFailing(); failing {
		g = s.describe(g)
		from := s.steps.Current()
		s.steps.Force(g.Step)
		s.recordBlocked(g)
		if from != g.Step {
			s.emit(Event{Kind: EventStepChanged})
		}
		return entities.QuoteExport{}, &GuardError{Guard: g}
	}

	s.notices.Push(notify.LevelInfo, s.msgs.Text(locale.MsgSubmitting, nil))

	totals := s.store.TotalPrice()
	items := s.store.Items()
	lines := make([]entities.QuoteLine, 0, len(items))
	for i, item := range items {
		lines = append(lines, entities.QuoteLine{
			Position: totals.Lines[i].Position,
			Item:     item,
			Price:    totals.Lines[i].Price,
		})
	}
	return entities.QuoteExport{
		Contact:      s.contact,
		Lines:        lines,
		Total:        totals.Total,
		IssuedAt:     issuedAt,
		ValidityDays: validityDays,
		Locale:       s.locale,
	}, nil
}

// CompleteSubmission clears the form after the document was produced.
func (s *Session) CompleteSubmission() {
	s.notices.Push(notify.LevelSuccess, s.msgs.Text(locale.MsgSubmitted, nil))
	s.emit(Event{Kind: EventSubmitted})
	s.Reset()
}

// FailSubmission records an export failure. Items, contact and step are
// left as they were.
func (s *Session) FailSubmission() {
	s.notices.Push(notify.LevelError, s.msgs.Text(locale.MsgExportFailed, nil))
	s.touch()
}
