package response

import (
	"mvz_quote/internal/domain/entities"
	"mvz_quote/internal/domain/quote"
	"mvz_quote/internal/domain/validation"
)

type ItemAddedResponse struct {
	Item entities.LineItem `json:"item"`
	View quote.View        `json:"view"`
}

type TransitionResponse struct {
	Transition quote.Transition `json:"transition"`
	View       quote.View       `json:"view"`
}

// NavigationResponse answers whether a step can be opened directly.
type NavigationResponse struct {
	Step        int                     `json:"step"`
	CanNavigate bool                    `json:"can_navigate"`
	BlockedAt   int                     `json:"blocked_at,omitempty"`
	Reason      string                  `json:"reason,omitempty"`
	Message     string                  `json:"message,omitempty"`
	FieldErrors []validation.FieldError `json:"field_errors,omitempty"`
}

// GuardResponse is the detail payload of a refused submission.
type GuardResponse struct {
	Step        int                     `json:"step"`
	Reason      string                  `json:"reason"`
	Message     string                  `json:"message,omitempty"`
	FieldErrors []validation.FieldError `json:"field_errors,omitempty"`
	ItemIDs     []string                `json:"item_ids,omitempty"`
}

type PingResponse struct {
	Message string `json:"message"`
}

func FromTransition(t quote.Transition, v quote.View) TransitionResponse {
	return TransitionResponse{Transition: t, View: v}
}

func FromNavigation(step int, g quote.GuardResult) NavigationResponse {
	res := NavigationResponse{Step: step, CanNavigate: g.CanAdvance}
	if !g.CanAdvance {
		res.BlockedAt = int(g.Step)
		res.Reason = string(g.Reason)
		res.Message = g.Message
		res.FieldErrors = g.FieldErrors
	}
	return res
}

func FromGuard(g quote.GuardResult) GuardResponse {
	return GuardResponse{
		Step:        int(g.Step),
		Reason:      string(g.Reason),
		Message:     g.Message,
		FieldErrors: g.FieldErrors,
		ItemIDs:     g.ItemIDs,
	}
}

// LiveUpdate is the payload of a "summary" server-sent event.
type LiveUpdate struct {
	Event       string        `json:"event,omitempty"`
	CurrentStep int           `json:"current_step"`
	ItemCount   int           `json:"item_count"`
	Summary     quote.Summary `json:"summary"`
}

func FromView(event quote.EventKind, v quote.View) LiveUpdate {
	return LiveUpdate{
		Event:       string(event),
		CurrentStep: int(v.CurrentStep),
		ItemCount:   len(v.Items),
		Summary:     v.Summary,
	}
}
