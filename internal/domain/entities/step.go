package entities

import (
	"errors"
	"fmt"
)

var ErrInvalidStep = errors.New("invalid step")

// Step is a position in the three-step quote form.
type Step int

const (
	StepContact Step = iota + 1
	StepItems
	StepReview
)

const (
	FirstStep = StepContact
	LastStep  = StepReview
)

func ParseStep(n int) (Step, error) {
	s := Step(n)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidStep, n)
	}
	return s, nil
}

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s Step) String() string {
	switch s {
	case StepContact:
		return "contact"
	case StepItems:
		return "items"
	case StepReview:
		return "review"
	}
	return fmt.Sprintf("step(%d)", int(s))
}
