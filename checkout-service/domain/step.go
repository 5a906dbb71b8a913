package domain

import (
	"github.com/pkg/errors"
)

// StepType identifies one stage of the checkout flow
type StepType string

const (
	StepCustomer StepType = "customer"
	StepShipping StepType = "shipping"
	StepBilling  StepType = "billing"
	StepPayment  StepType = "payment"
)

var ErrUnknownStepType = errors.New("unknown step type")

// NewStepType parses a step type
func NewStepType(s string) (StepType, error) {
	t := StepType(s)
	if !t.IsValid() {
		return "", errors.Wrapf(ErrUnknownStepType, "%q", s)
	}
	return t, nil
}

// IsValid reports whether the step type belongs to the closed set of steps
func (t StepType) IsValid() bool {
	switch t {
	case StepCustomer, StepShipping, StepBilling, StepPayment:
		return true
	}
	return false
}

func (t StepType) String() string {
	return string(t)
}

// Step is the status of one stage as derived from the checkout
type Step struct {
	Type       StepType `json:"type"`
	IsRequired bool     `json:"is_required"`
	IsActive   bool     `json:"is_active"`
	IsComplete bool     `json:"is_complete"`
	IsEditable bool     `json:"is_editable"`
}

// Steps is the ordered step sequence of a checkout
type Steps []Step

// IndexOf returns the position of the step type, or -1 when absent
func (s Steps) IndexOf(t StepType) int {
	if t == "" {
		return -1
	}
	for i, step := range s {
		if step.Type == t {
			return i
		}
	}
	return -1
}

// Find returns the step with the given type
func (s Steps) Find(t StepType) (Step, bool) {
	if i := s.IndexOf(t); i >= 0 {
		return s[i], true
	}
	return Step{}, false
}

// ActiveIndex returns the position of the first step flagged active, or -1
func (s Steps) ActiveIndex() int {
	for i, step := range s {
		if step.IsActive {
			return i
		}
	}
	return -1
}

// Last returns the final step of the sequence
func (s Steps) Last() (Step, bool) {
	if len(s) == 0 {
		return Step{}, false
	}
	return s[len(s)-1], true
}
