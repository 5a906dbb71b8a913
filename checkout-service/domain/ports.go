package domain

import "context"

// CheckoutLoader fetches the checkout a session is started for
type CheckoutLoader interface {
	LoadCheckout(ctx context.Context, checkoutID string, opts LoadOptions) (*Checkout, error)
}

// ConsignmentSubscriber pushes the latest checkout snapshot whenever consignments change.
// The returned function releases the subscription.
type ConsignmentSubscriber interface {
	SubscribeToConsignments(checkoutID string, fn func(*Checkout)) (unsubscribe func())
}

// StepTracker receives analytics events about the flow
type StepTracker interface {
	TrackCheckoutStarted()
	TrackStepViewed(stepType StepType)
	TrackStepCompleted(stepType StepType)
}

// Styles is a style payload sent by the parent frame
type Styles map[string]any

// HostMessenger talks to the parent frame hosting an embedded checkout
type HostMessenger interface {
	ReceiveStyles(fn func(Styles))
	PostFrameLoaded(containerID string)
	PostLoaded()
	PostComplete()
	PostError(err error)
	PostSignedOut()
}

// MessengerFactory binds a messenger to the origin of the parent frame
type MessengerFactory interface {
	CreateMessenger(parentOrigin string) (HostMessenger, error)
}

// StylesheetSink receives the styles pushed by the parent frame
type StylesheetSink interface {
	Append(styles Styles)
}

// ErrorLogger records handled errors
type ErrorLogger interface {
	Log(err error)
}

// Redirect is a top level navigation away from the checkout
type Redirect struct {
	URL     string `json:"url"`
	Replace bool   `json:"replace"`
}

// Redirector performs redirects decided by the orchestrator
type Redirector interface {
	Redirect(r Redirect)
}

type nopTracker struct{}

func (nopTracker) TrackCheckoutStarted()       {}
func (nopTracker) TrackStepViewed(StepType)    {}
func (nopTracker) TrackStepCompleted(StepType) {}

type nopErrorLogger struct{}

func (nopErrorLogger) Log(error) {}

type nopRedirector struct{}

func (nopRedirector) Redirect(Redirect) {}

type nopStylesheet struct{}

func (nopStylesheet) Append(Styles) {}

// CheckoutRepository stores the latest checkout snapshots
type CheckoutRepository interface {
	CheckoutLoader
	Save(ctx context.Context, checkout *Checkout) error
}

// ConsignmentPublisher fans a refreshed snapshot out to the sessions of its checkout
type ConsignmentPublisher interface {
	PublishConsignments(checkout *Checkout)
}
