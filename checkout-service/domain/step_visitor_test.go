package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftea/checkout-system/checkout-service/domain"
)

type headingVisitor struct{}

func (headingVisitor) VisitCustomer(domain.Step) string { return "Customer" }
func (headingVisitor) VisitShipping(domain.Step) string { return "Shipping" }
func (headingVisitor) VisitBilling(domain.Step) string  { return "Billing" }
func (headingVisitor) VisitPayment(domain.Step) string  { return "Payment" }

func TestVisitStep(t *testing.T) {
	for _, step := range sequence(0) {
		heading, err := domain.VisitStep[string](step, headingVisitor{})
		require.NoError(t, err)
		assert.Equal(t, step.Type.String(), strings.ToLower(heading))
	}

	_, err := domain.VisitStep[string](domain.Step{Type: "review"}, headingVisitor{})
	assert.ErrorIs(t, err, domain.ErrUnknownStepType)
}
