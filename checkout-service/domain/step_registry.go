package domain

// StepRegistry derives the ordered step statuses of a checkout. The order of the
// sequence never changes for a given checkout.
type StepRegistry interface {
	Steps(checkout *Checkout) Steps
}

// DefaultStepRegistry orders the steps customer, shipping, billing, payment and flags the
// first required step that is not complete as active
type DefaultStepRegistry struct{}

func (DefaultStepRegistry) Steps(checkout *Checkout) Steps {
	steps := Steps{
		customerStep(checkout),
		shippingStep(checkout),
		billingStep(checkout),
		{Type: StepPayment, IsRequired: true},
	}

	for i := range steps {
		if steps[i].IsRequired && !steps[i].IsComplete {
			steps[i].IsActive = true
			break
		}
	}
	return steps
}

func customerStep(checkout *Checkout) Step {
	step := Step{Type: StepCustomer, IsRequired: true}
	if checkout == nil {
		return step
	}

	signedIn := checkout.Customer != nil && !checkout.Customer.IsGuest && checkout.Customer.ID > 0
	hasEmail := checkout.BillingAddress != nil && checkout.BillingAddress.Email != ""
	step.IsComplete = signedIn || hasEmail
	step.IsEditable = step.IsComplete && !signedIn
	return step
}

func shippingStep(checkout *Checkout) Step {
	step := Step{Type: StepShipping, IsRequired: checkout == nil || checkout.HasPhysicalItems()}
	if checkout == nil || len(checkout.Consignments) == 0 {
		return step
	}

	for _, c := range checkout.Consignments {
		if !c.ShippingAddress.IsComplete() {
			return step
		}
	}
	step.IsComplete = HasSelectedShippingOptions(checkout.Consignments)
	step.IsEditable = step.IsComplete && step.IsRequired
	return step
}

func billingStep(checkout *Checkout) Step {
	step := Step{Type: StepBilling, IsRequired: true}
	if checkout == nil {
		return step
	}
	step.IsComplete = checkout.BillingAddress.IsComplete()
	step.IsEditable = step.IsComplete
	return step
}
