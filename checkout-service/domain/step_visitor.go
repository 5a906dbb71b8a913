package domain

// StepVisitor has one handler per step type. Adding a step type breaks every visitor
// until it handles the new step.
type StepVisitor[T any] interface {
	VisitCustomer(step Step) T
	VisitShipping(step Step) T
	VisitBilling(step Step) T
	VisitPayment(step Step) T
}

// VisitStep dispatches the step to the handler of its type
func VisitStep[T any](step Step, v StepVisitor[T]) (T, error) {
	switch step.Type {
	case StepCustomer:
		return v.VisitCustomer(step), nil
	case StepShipping:
		return v.VisitShipping(step), nil
	case StepBilling:
		return v.VisitBilling(step), nil
	case StepPayment:
		return v.VisitPayment(step), nil
	}
	var zero T
	return zero, ErrUnknownStepType
}
