package domain_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/draftea/checkout-system/checkout-service/domain"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: &domain.LoadFailureError{CheckoutID: "c", Err: errors.New("down")}, want: "load_failure"},
		{err: &domain.ShippingOptionExpiredError{}, want: "shipping_option_expired"},
		{err: &domain.CartChangedError{}, want: "cart_changed"},
		{err: errors.Wrap(&domain.CustomError{Title: "Oops"}, "submit"), want: "custom"},
		{err: &domain.NotEmbeddableError{MethodIDs: []string{"paypal"}}, want: "not_embeddable"},
		{err: errors.New("boom"), want: "unhandled"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ErrorKind(tt.err))
		})
	}
}

func TestCustomErrorHelpers(t *testing.T) {
	custom := domain.NewCustomErrorFromFlash(domain.FlashMessage{
		Type:    domain.FlashMessageError,
		Title:   "Coupon",
		Message: "Coupon expired",
	})
	wrapped := errors.Wrap(custom, "checkout")

	assert.True(t, domain.IsCustomError(wrapped))
	assert.Equal(t, "Coupon", domain.ErrorTitle(wrapped))
	assert.Equal(t, "Coupon expired", custom.Error())
	assert.NotNil(t, custom.Data)

	assert.False(t, domain.IsCustomError(errors.New("boom")))
	assert.Empty(t, domain.ErrorTitle(errors.New("boom")))
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("timeout")
	loadErr := &domain.LoadFailureError{CheckoutID: "checkout-1", Err: cause}

	assert.Equal(t, "failed to load checkout checkout-1: timeout", loadErr.Error())
	assert.ErrorIs(t, loadErr, cause)
	assert.Equal(t, "cart changed during checkout", (&domain.CartChangedError{}).Error())
	assert.Equal(t, "cart changed during checkout: price", (&domain.CartChangedError{Reason: "price"}).Error())
	assert.Equal(t, "not supported in embedded checkout: paypal, klarna",
		(&domain.NotEmbeddableError{MethodIDs: []string{"paypal", "klarna"}}).Error())
}
