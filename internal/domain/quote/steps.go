package quote

import (
	"mvz_quote/internal/domain/entities"
	"mvz_quote/internal/domain/validation"
)

// Reason explains why a forward transition was refused.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonContactInvalid    Reason = "contact_invalid"
	ReasonNoItems           Reason = "no_items"
	ReasonMissingDimensions Reason = "missing_dimensions"
)

// GuardResult is the outcome of the forward guard of Step.
type GuardResult struct {
	Step        entities.Step           `json:"step"`
	CanAdvance  bool                    `json:"can_advance"`
	Reason      Reason                  `json:"reason,omitempty"`
	Message     string                  `json:"message,omitempty"`
	FieldErrors []validation.FieldError `json:"field_errors,omitempty"`
	// Items lacking a width or height, for missing_dimensions.
	ItemIDs []string `json:"item_ids,omitempty"`
}

// Transition describes a navigation attempt. When refused, To equals From
// and Guard holds the failing check.
type Transition struct {
	From    entities.Step `json:"from"`
	To      entities.Step `json:"to"`
	Allowed bool          `json:"allowed"`
	Reason  Reason        `json:"reason,omitempty"`
	Guard   *GuardResult  `json:"guard,omitempty"`
}

// Changed reports whether the current step moved.
func (t Transition) Changed() bool {
	return t.Allowed && t.From != t.To
}

// StepController tracks the wizard position and evaluates step guards
// against the live store and contact details.
type StepController struct {
	current entities.Step
	store   *Store
	contact func() entities.ContactInfo
}

func NewStepController(store *Store, contact func() entities.ContactInfo) *StepController {
	return &StepController{current: entities.FirstStep, store: store, contact: contact}
}

func (c *StepController) Current() entities.Step {
	return c.current
}

// Guard evaluates the check for leaving step forward. It has no side
// effects. The review step has nothing after it and always passes.
func (c *StepController) Guard(step entities.Step) GuardResult {
	g := GuardResult{Step: step, CanAdvance: true}
	switch step {
	case entities.StepContact:
		if errs := validation.CheckContact(c.contact()); len(errs) > 0 {
			g.CanAdvance = false
			g.Reason = ReasonContactInvalid
			g.FieldErrors = errs
		}
	case entities.StepItems:
		if c.store.Len() == 0 {
			g.CanAdvance = false
			g.Reason = ReasonNoItems
		} else if missing := c.store.MissingDimensions(); len(missing) > 0 {
			g.CanAdvance = false
			g.Reason = ReasonMissingDimensions
			g.ItemIDs = missing
		}
	}
	return g
}

// CanNavigateTo reports whether every guard below target passes. The first
// failing guard is returned.
func (c *StepController) CanNavigateTo(target entities.Step) GuardResult {
	for s := entities.FirstStep; s < target && s < entities.LastStep; s++ {
		if g := c.Guard(s); !g.CanAdvance {
			return g
		}
	}
	return GuardResult{Step: target, CanAdvance: true}
}

// FirstFailing returns the guard of the earliest step that does not pass,
// if any.
func (c *StepController) FirstFailing() (GuardResult, bool) {
	g := c.CanNavigateTo(entities.LastStep)
	return g, !g.CanAdvance
}

// Next moves one step forward when the current step's guard passes. On the
// last step it is an allowed no-op.
func (c *StepController) Next() Transition {
	from := c.current
	if g := c.Guard(from); !g.CanAdvance {
		return blocked(from, g)
	}
	if c.current < entities.LastStep {
		c.current++
	}
	return Transition{From: from, To: c.current, Allowed: true}
}

// Prev moves one step back. It is never blocked.
func (c *StepController) Prev() Transition {
	from := c.current
	if c.current > entities.FirstStep {
		c.current--
	}
	return Transition{From: from, To: c.current, Allowed: true}
}

// GoTo jumps to target. Going back or staying is always allowed; going
// forward needs every guard below target to pass.
func (c *StepController) GoTo(target entities.Step) Transition {
	from := c.current
	if target > from {
		if g := c.CanNavigateTo(target); !g.CanAdvance {
			return blocked(from, g)
		}
	}
	c.current = target
	return Transition{From: from, To: target, Allowed: true}
}

// Force places the controller on step without checking guards.
func (c *StepController) Force(step entities.Step) {
	c.current = step
}

func (c *StepController) Reset() {
	c.current = entities.FirstStep
}

func blocked(from entities.Step, g GuardResult) Transition {
	return Transition{From: from, To: from, Reason: g.Reason, Guard: &g}
}
