package domain

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrAlreadyInitialized = errors.New("checkout session already initialized")
	ErrCheckoutNotFound   = errors.New("checkout not found")
	ErrOrchestratorClosed = errors.New("checkout session closed")
)

// DefaultErrorTitle is used for custom errors that arrive without a heading
const DefaultErrorTitle = "Something went wrong"

// LoadFailureError aborts the initialization of a session
type LoadFailureError struct {
	CheckoutID string
	Err        error
}

func (e *LoadFailureError) Error() string {
	return fmt.Sprintf("failed to load checkout %s: %v", e.CheckoutID, e.Err)
}

func (e *LoadFailureError) Unwrap() error {
	return e.Err
}

// ShippingOptionExpiredError is surfaced when a shopper past the shipping step loses
// a selected shipping option
type ShippingOptionExpiredError struct{}

func (e *ShippingOptionExpiredError) Error() string {
	return "the selected shipping option is no longer available, please choose another one"
}

// CartChangedError signals that the cart was modified while paying
type CartChangedError struct {
	Reason string
}

func (e *CartChangedError) Error() string {
	if e.Reason == "" {
		return "cart changed during checkout"
	}
	return "cart changed during checkout: " + e.Reason
}

// CustomError carries its own heading and is rendered distinctly from generic errors
type CustomError struct {
	Name    string         `json:"name"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomErrorFromFlash builds the error surfaced for a queued flash message
func NewCustomErrorFromFlash(msg FlashMessage) *CustomError {
	title := msg.Title
	if title == "" {
		title = DefaultErrorTitle
	}
	return &CustomError{
		Name:    "default",
		Title:   title,
		Message: msg.Message,
		Data:    map[string]any{},
	}
}

// NotEmbeddableError is returned for payment methods that cannot run inside a parent frame
type NotEmbeddableError struct {
	MethodIDs []string
}

func (e *NotEmbeddableError) Error() string {
	return "not supported in embedded checkout: " + strings.Join(e.MethodIDs, ", ")
}

// IsCustomError reports whether err carries a custom heading
func IsCustomError(err error) bool {
	var custom *CustomError
	return errors.As(err, &custom)
}

// ErrorTitle returns the heading of a custom error, or empty for generic ones
func ErrorTitle(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Title
	}
	return ""
}

// ErrorKind classifies an error for logs, metrics and the presentation layer
func ErrorKind(err error) string {
	var (
		loadFailure *LoadFailureError
		expired     *ShippingOptionExpiredError
		cartChanged *CartChangedError
		custom      *CustomError
		notEmbed    *NotEmbeddableError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &loadFailure):
		return "load_failure"
	case errors.As(err, &expired):
		return "shipping_option_expired"
	case errors.As(err, &cartChanged):
		return "cart_changed"
	case errors.As(err, &custom):
		return "custom"
	case errors.As(err, &notEmbed):
		return "not_embeddable"
	default:
		return "unhandled"
	}
}
