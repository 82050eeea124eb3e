package quote

import (
	"strconv"

	"mvz_quote/internal/domain/entities"
	"mvz_quote/internal/domain/notify"
	"mvz_quote/internal/domain/pricing"
	"mvz_quote/internal/domain/validation"
	"mvz_quote/internal/locale"
)

// NotProvided stands in for blank contact fields on the review and in
// documents.
const NotProvided = "N/A"

// ItemView is an item card: the item, its display label and live price.
type ItemView struct {
	entities.LineItem
	Position  int     `json:"position"`
	Label     string  `json:"label"`
	Price     float64 `json:"price"`
	PriceText string  `json:"price_text"`
}

type SummaryLine struct {
	Position  int               `json:"position"`
	ItemID    string            `json:"item_id"`
	Type      entities.ItemType `json:"type"`
	Label     string            `json:"label"`
	Price     float64           `json:"price"`
	PriceText string            `json:"price_text"`
}

// Summary is the price breakdown. HasItems is false for the empty
// placeholder state.
type Summary struct {
	HasItems  bool          `json:"has_items"`
	Lines     []SummaryLine `json:"lines"`
	Total     float64       `json:"total"`
	TotalText string        `json:"total_text"`
}

type StepView struct {
	Step      entities.Step `json:"step"`
	Name      string        `json:"name"`
	Current   bool          `json:"current"`
	Completed bool          `json:"completed"`
	Reachable bool          `json:"reachable"`
}

// Review is the read-only recap shown on the last step.
type Review struct {
	Contact entities.ContactInfo `json:"contact"`
	Items   []ItemView           `json:"items"`
	Summary Summary              `json:"summary"`
}

// InputHints are the recommended input ranges. They are not enforced.
type InputHints struct {
	MinDimensionCM int `json:"min_dimension_cm"`
	MaxDimensionCM int `json:"max_dimension_cm"`
	MinQuantity    int `json:"min_quantity"`
	MaxQuantity    int `json:"max_quantity"`
}

type View struct {
	SessionID     string                  `json:"session_id"`
	Locale        string                  `json:"locale"`
	CurrentStep   entities.Step           `json:"current_step"`
	Progress      float64                 `json:"progress"`
	Steps         []StepView              `json:"steps"`
	Advance       GuardResult             `json:"advance"`
	Contact       entities.ContactInfo    `json:"contact"`
	FieldErrors   []validation.FieldError `json:"field_errors"`
	Items         []ItemView              `json:"items"`
	Summary       Summary                 `json:"summary"`
	Review        *Review                 `json:"review,omitempty"`
	Notifications []notify.Notification   `json:"notifications"`
	Hints         InputHints              `json:"hints"`
}

// View renders the current state for presentation.
func (s *Session) View() View {
	current := s.steps.Current()
	items := s.itemViews()
	summary := s.Summary()

	v := View{
		SessionID:     s.id,
		Locale:        s.locale,
		CurrentStep:   current,
		Progress:      float64(current) / float64(entities.LastStep) * 100,
		Steps:         s.stepViews(),
		Advance:       s.Guard(),
		Contact:       s.contact,
		FieldErrors:   s.orderedFieldErrors(),
		Items:         items,
		Summary:       summary,
		Notifications: s.notices.Active(),
		Hints: InputHints{
			MinDimensionCM: entities.MinDimensionCM,
			MaxDimensionCM: entities.MaxDimensionCM,
			MinQuantity:    entities.MinQuantity,
			MaxQuantity:    entities.MaxQuantity,
		},
	}
	if current == entities.StepReview {
		v.Review = &Review{Contact: ReviewContact(s.contact), Items: items, Summary: summary}
	}
	return v
}

// Summary prices the items in insertion order.
func (s *Session) Summary() Summary {
	totals := s.store.TotalPrice()
	out := Summary{
		HasItems:  len(totals.Lines) > 0,
		Lines:     make([]SummaryLine, 0, len(totals.Lines)),
		Total:     totals.Total,
		TotalText: pricing.FormatEUR(totals.Total),
	}
	for _, l := range totals.Lines {
		out.Lines = append(out.Lines, SummaryLine{
			Position:  l.Position,
			ItemID:    l.ItemID,
			Type:      l.Type,
			Label:     s.itemLabel(l.Type, l.Position),
			Price:     l.Price,
			PriceText: pricing.FormatEUR(l.Price),
		})
	}
	return out
}

// ReviewContact fills every blank contact field with NotProvided.
func ReviewContact(c entities.ContactInfo) entities.ContactInfo {
	for _, f := range entities.ContactFields {
		if c.Get(f) == "" {
			c = c.With(f, NotProvided)
		}
	}
	return c
}

func (s *Session) itemViews() []ItemView {
	items := s.store.Items()
	out := make([]ItemView, 0, len(items))
	for i, item := range items {
		p := pricing.Price(item)
		out = append(out, ItemView{
			LineItem:  item,
			Position:  i + 1,
			Label:     s.itemLabel(item.Type, i+1),
			Price:     p,
			PriceText: pricing.FormatEUR(p),
		})
	}
	return out
}

func (s *Session) stepViews() []StepView {
	current := s.steps.Current()
	out := make([]StepView, 0, int(entities.LastStep))
	for step := entities.FirstStep; step <= entities.LastStep; step++ {
		out = append(out, StepView{
			Step:      step,
			Name:      s.msgs.Text(locale.StepID(step), nil),
			Current:   step == current,
			Completed: step < current,
			Reachable: step <= current || s.steps.CanNavigateTo(step).CanAdvance,
		})
	}
	return out
}

func (s *Session) orderedFieldErrors() []validation.FieldError {
	out := make([]validation.FieldError, 0, len(s.fieldErrors))
	for _, f := range entities.ContactFields {
		if fe, ok := s.fieldErrors[f]; ok {
			out = append(out, fe)
		}
	}
	return out
}

func (s *Session) itemLabel(t entities.ItemType, position int) string {
	return s.itemTypeLabel(t) + " #" + strconv.Itoa(position)
}
