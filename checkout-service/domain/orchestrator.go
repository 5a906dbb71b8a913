package domain

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Dependencies are the collaborators of an orchestrator. Messengers is nil when the
// checkout does not run inside a parent frame.
type Dependencies struct {
	Loader       CheckoutLoader
	Consignments ConsignmentSubscriber
	Registry     StepRegistry
	Tracker      StepTracker
	Messengers   MessengerFactory
	Stylesheet   StylesheetSink
	ErrorLogger  ErrorLogger
	Redirector   Redirector
	Brands       BrandCatalog
}

// Options configure one orchestrator
type Options struct {
	CheckoutID string
	// ContainerID identifies the element the checkout is mounted in
	ContainerID string
	// UnsupportedEmbeddedMethods lists payment methods that cannot run embedded
	UnsupportedEmbeddedMethods []string
}

// SignOutEvent is emitted by the customer step once the shopper signed out
type SignOutEvent struct {
	IsCartEmpty bool
}

// Orchestrator drives the steps of one checkout session.
//
// It is not safe for concurrent use: every operation must be called from the single
// goroutine owning the session. State changes are committed first, then observers are
// notified, then the queued external effects (host notifications, redirects) run.
type Orchestrator struct {
	deps Dependencies
	opts Options

	checkoutID  string
	checkout    *Checkout
	state       State
	messenger   HostMessenger
	unsubscribe func()
	initialized bool
	closed      bool

	inTransition bool
	effects      []func()
	observers    []func(State)
}

// NewOrchestrator creates an orchestrator with default state
func NewOrchestrator(deps Dependencies, opts Options) *Orchestrator {
	if deps.Registry == nil {
		deps.Registry = DefaultStepRegistry{}
	}
	if deps.Tracker == nil {
		deps.Tracker = nopTracker{}
	}
	if deps.ErrorLogger == nil {
		deps.ErrorLogger = nopErrorLogger{}
	}
	if deps.Redirector == nil {
		deps.Redirector = nopRedirector{}
	}
	if deps.Stylesheet == nil {
		deps.Stylesheet = nopStylesheet{}
	}

	return &Orchestrator{
		deps:       deps,
		opts:       opts,
		checkoutID: opts.CheckoutID,
		state:      NewState(),
	}
}

// OnCommit registers an observer called with the new state after every operation,
// before any external effect runs
func (o *Orchestrator) OnCommit(fn func(State)) {
	o.observers = append(o.observers, fn)
}

// State returns a copy of the current state
func (o *Orchestrator) State() State {
	return o.state
}

// Checkout returns the latest checkout snapshot
func (o *Orchestrator) Checkout() *Checkout {
	return o.checkout
}

// Steps derives the step sequence from the latest snapshot
func (o *Orchestrator) Steps() Steps {
	return o.deps.Registry.Steps(o.checkout)
}

// IsEmbedded reports whether a host messenger was established
func (o *Orchestrator) IsEmbedded() bool {
	return o.messenger != nil
}

// CustomerViewType returns the customer view, falling back to guest when guest
// checkout is enabled and login otherwise
func (o *Orchestrator) CustomerViewType() CustomerViewType {
	if o.state.CustomerViewType != "" {
		return o.state.CustomerViewType
	}
	if o.checkout.Settings().IsGuestEnabled {
		return CustomerViewGuest
	}
	return CustomerViewLogin
}

// Initialize loads the checkout and settles the session on its first step
func (o *Orchestrator) Initialize(ctx context.Context, checkoutID string) error {
	o.checkoutID = checkoutID
	checkout, err := o.Load(ctx, checkoutID)
	return o.HandleLoaded(checkout, err)
}

// Load fetches the checkout without touching the state, so it can run off the
// session goroutine
func (o *Orchestrator) Load(ctx context.Context, checkoutID string) (*Checkout, error) {
	if o.deps.Loader == nil {
		return nil, errors.New("no checkout loader configured")
	}
	checkout, err := o.deps.Loader.LoadCheckout(ctx, checkoutID, DefaultLoadOptions())
	if err == nil && checkout == nil {
		err = ErrCheckoutNotFound
	}
	return checkout, err
}

// HandleLoaded settles the initial load. It may only run once per session.
func (o *Orchestrator) HandleLoaded(checkout *Checkout, loadErr error) error {
	var res error
	o.transition(func() {
		res = o.settle(checkout, loadErr)
	})
	return res
}

func (o *Orchestrator) settle(checkout *Checkout, loadErr error) error {
	if o.closed {
		return ErrOrchestratorClosed
	}
	if o.initialized {
		return ErrAlreadyInitialized
	}
	o.initialized = true

	if loadErr == nil && checkout == nil {
		loadErr = ErrCheckoutNotFound
	}
	if loadErr != nil {
		err := &LoadFailureError{CheckoutID: o.checkoutID, Err: loadErr}
		o.handleUnhandledError(err)
		return err
	}

	o.checkout = checkout
	if o.checkoutID == "" {
		o.checkoutID = checkout.ID
	}
	o.state.Branding = ResolveBranding(checkout.Cart, o.deps.Brands)

	if msgs := checkout.ErrorFlashMessages(); len(msgs) > 0 {
		o.state.Error = NewCustomErrorFromFlash(msgs[0])
	}

	o.connectHost(checkout.Links().SiteLink)

	if o.deps.Consignments != nil {
		o.unsubscribe = o.deps.Consignments.SubscribeToConsignments(
			o.checkoutID, o.HandleConsignmentsUpdated,
		)
	}

	o.deps.Tracker.TrackCheckoutStarted()

	settings := checkout.Settings()
	o.state.IsBillingSameAsShipping = settings.BillingSameAsShipping()
	o.state.IsBuyNowCartEnabled = settings.IsFeatureEnabled(FeatureBuyNowCart)
	o.state.HasSelectedShippingOptions = HasSelectedShippingOptions(checkout.Consignments)
	o.state.IsMultiShippingMode = checkout.Cart != nil &&
		checkout.Consignments != nil &&
		settings.HasMultiShippingEnabled &&
		IsUsingMultiShipping(checkout.Consignments, checkout.Cart.LineItems)

	o.navigateToNextIncomplete(true)
	return nil
}

func (o *Orchestrator) connectHost(parentOrigin string) {
	if o.deps.Messengers == nil {
		return
	}

	messenger, err := o.deps.Messengers.CreateMessenger(parentOrigin)
	if err != nil {
		o.deps.ErrorLogger.Log(errors.Wrap(err, "embedded host unavailable, continuing unembedded"))
		return
	}

	o.messenger = messenger
	messenger.ReceiveStyles(o.deps.Stylesheet.Append)
	containerID := o.opts.ContainerID
	o.effect(func() {
		messenger.PostFrameLoaded(containerID)
		messenger.PostLoaded()
	})
}

// Close releases the consignment subscription. A load settling afterwards is
// rejected, so nothing is subscribed past Close. Calling it again is a no-op.
func (o *Orchestrator) Close() {
	o.closed = true
	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}
}

// HandleConsignmentsUpdated re-validates shipping selections against a new snapshot
func (o *Orchestrator) HandleConsignmentsUpdated(checkout *Checkout) {
	o.transition(func() {
		var consignments []Consignment
		if checkout != nil {
			o.checkout = checkout
			consignments = checkout.Consignments
		}

		prev := o.state.HasSelectedShippingOptions
		next := HasSelectedShippingOptions(consignments)

		if prev && !next && !o.state.IsRedirecting && o.isPastShipping() {
			o.navigateTo(StepShipping, false)
			o.state.Error = &ShippingOptionExpiredError{}
		}
		o.state.HasSelectedShippingOptions = next
	})
}

func (o *Orchestrator) isPastShipping() bool {
	steps := o.Steps()
	shipping := steps.IndexOf(StepShipping)
	current := steps.IndexOf(o.state.CurrentStep())
	return shipping >= 0 && current >= 0 && shipping < current
}

// NavigateTo shows the given step. Unknown steps and the already active step are ignored.
func (o *Orchestrator) NavigateTo(stepType StepType, isDefault bool) {
	o.transition(func() {
		o.navigateTo(stepType, isDefault)
	})
}

func (o *Orchestrator) navigateTo(stepType StepType, isDefault bool) {
	if o.state.IsRedirecting {
		return
	}

	step, ok := o.Steps().Find(stepType)
	if !ok {
		return
	}
	if o.state.ActiveStepType == step.Type {
		return
	}

	if isDefault {
		o.state.DefaultStepType = step.Type
	} else {
		o.state.ActiveStepType = step.Type
	}
	o.state.Error = nil
}

// NavigateToNextIncomplete moves to the first incomplete step and reports the step
// before it as completed
func (o *Orchestrator) NavigateToNextIncomplete(isDefault bool) {
	o.transition(func() {
		o.navigateToNextIncomplete(isDefault)
	})
}

func (o *Orchestrator) navigateToNextIncomplete(isDefault bool) {
	if o.state.IsRedirecting {
		return
	}

	steps := o.Steps()
	idx := steps.ActiveIndex()
	if idx < 0 {
		return
	}

	if idx > 0 {
		o.deps.Tracker.TrackStepCompleted(steps[idx-1].Type)
	}
	o.navigateTo(steps[idx].Type, isDefault)
}

// NavigateToOrderConfirmation ends the session once the order was placed
func (o *Orchestrator) NavigateToOrderConfirmation(orderID int64) {
	o.transition(func() {
		if o.state.IsRedirecting {
			return
		}

		if last, ok := o.Steps().Last(); ok {
			o.deps.Tracker.TrackStepCompleted(last.Type)
		}

		o.state.IsRedirecting = true
		if m := o.messenger; m != nil {
			o.effect(m.PostComplete)
		}
		o.redirect(Redirect{
			URL:     OrderConfirmationURL(o.state.IsBuyNowCartEnabled, orderID),
			Replace: true,
		})
	})
}

// OrderConfirmationURL is the page shown once an order was placed
func OrderConfirmationURL(isBuyNowCart bool, orderID int64) string {
	if isBuyNowCart && orderID > 0 {
		return fmt.Sprintf("/checkout/order-confirmation/%d", orderID)
	}
	return "/checkout/order-confirmation"
}

// HandleReady is called by a step view once it finished loading
func (o *Orchestrator) HandleReady() {
	o.NavigateToNextIncomplete(true)
}

// HandleEditStep is called when the shopper reopens a step
func (o *Orchestrator) HandleEditStep(stepType StepType) {
	o.NavigateTo(stepType, false)
}

// HandleExpanded is called when a step view was expanded
func (o *Orchestrator) HandleExpanded(stepType StepType) {
	o.transition(func() {
		o.deps.Tracker.TrackStepViewed(stepType)
	})
}

// HandleShippingNextStep is called when the shipping step was submitted
func (o *Orchestrator) HandleShippingNextStep(isBillingSameAsShipping bool) {
	o.transition(func() {
		o.state.IsBillingSameAsShipping = isBillingSameAsShipping
		if isBillingSameAsShipping {
			o.navigateToNextIncomplete(false)
		} else {
			o.navigateTo(StepBilling, false)
		}
	})
}

// HandleToggleMultiShipping switches between single and multi address shipping
func (o *Orchestrator) HandleToggleMultiShipping() {
	o.transition(func() {
		o.state.IsMultiShippingMode = !o.state.IsMultiShippingMode
	})
}

// HandleViewMounted records that the presentation tree is ready. Only the first call
// has an effect; it reports whether it did.
func (o *Orchestrator) HandleViewMounted() bool {
	if o.state.IsViewMounted {
		return false
	}
	o.transition(func() {
		o.state.IsViewMounted = true
	})
	return true
}

// HandleError logs an error that a step handled on its own
func (o *Orchestrator) HandleError(err error) {
	o.transition(func() {
		o.handleError(err)
	})
}

func (o *Orchestrator) handleError(err error) {
	o.deps.ErrorLogger.Log(err)
	if m := o.messenger; m != nil {
		o.effect(func() {
			m.PostError(err)
		})
	}
}

// HandleUnhandledError logs the error and surfaces it as a blocking modal
func (o *Orchestrator) HandleUnhandledError(err error) {
	o.transition(func() {
		o.handleUnhandledError(err)
	})
}

func (o *Orchestrator) handleUnhandledError(err error) {
	o.handleError(err)
	o.state.Error = err
}

// HandleSubmitError is called when placing the order failed
func (o *Orchestrator) HandleSubmitError(err error) {
	o.HandleError(err)
}

// HandleSignOutError is called when signing out failed
func (o *Orchestrator) HandleSignOutError(err error) {
	o.HandleError(err)
}

// HandleSignInError is called when signing in failed
func (o *Orchestrator) HandleSignInError(err error) {
	o.HandleError(err)
}

// HandleContinueAsGuestError is called when continuing as guest failed
func (o *Orchestrator) HandleContinueAsGuestError(err error) {
	o.HandleError(err)
}

// HandleCartChangedError sends the shopper back to shipping without a modal
func (o *Orchestrator) HandleCartChangedError(*CartChangedError) {
	o.NavigateTo(StepShipping, false)
}

// HandleCloseErrorModal dismisses the surfaced error
func (o *Orchestrator) HandleCloseErrorModal() {
	o.transition(func() {
		o.state.Error = nil
	})
}

// HandleSignOut reacts to the shopper signing out
func (o *Orchestrator) HandleSignOut(event SignOutEvent) {
	o.transition(func() {
		if m := o.messenger; m != nil {
			o.effect(m.PostSignedOut)
		}

		if o.checkout.Settings().IsGuestEnabled {
			o.setCustomerViewType(CustomerViewGuest)
		}

		if event.IsCartEmpty {
			o.state.IsCartEmpty = true
			if !o.IsEmbedded() {
				if !o.state.IsRedirecting {
					o.state.IsRedirecting = true
					o.redirect(Redirect{URL: o.checkout.Links().LoginLink})
				}
				return
			}
		}

		o.navigateTo(StepCustomer, false)
	})
}

// HandleSignIn is called when the shipping step asks the shopper to sign in
func (o *Orchestrator) HandleSignIn() {
	o.SetCustomerViewType(CustomerViewLogin)
}

// HandleCreateAccount is called when the shipping step asks to create an account
func (o *Orchestrator) HandleCreateAccount() {
	o.SetCustomerViewType(CustomerViewCreateAccount)
}

// HandleCustomerCompleted is called when the customer step finished, whether the
// shopper signed in, created an account or continued as guest
func (o *Orchestrator) HandleCustomerCompleted() {
	o.NavigateToNextIncomplete(false)
}

// SetCustomerViewType switches the form shown by the customer step
func (o *Orchestrator) SetCustomerViewType(viewType CustomerViewType) {
	o.transition(func() {
		o.setCustomerViewType(viewType)
	})
}

func (o *Orchestrator) setCustomerViewType(viewType CustomerViewType) {
	if o.state.IsRedirecting {
		return
	}

	settings := o.checkout.Settings()
	if viewType == CustomerViewCreateAccount &&
		(!settings.CanCreateAccountInCheckout || o.IsEmbedded()) {
		o.redirect(Redirect{URL: o.checkout.Links().CreateAccountLink, Replace: true})
		return
	}

	o.navigateTo(StepCustomer, false)
	o.state.CustomerViewType = viewType
}

// CheckEmbeddedSupport fails for payment methods that cannot run in a parent frame
func (o *Orchestrator) CheckEmbeddedSupport(methodIDs ...string) error {
	if !o.IsEmbedded() {
		return nil
	}

	var unsupported []string
	for _, id := range methodIDs {
		for _, u := range o.opts.UnsupportedEmbeddedMethods {
			if id == u {
				unsupported = append(unsupported, id)
				break
			}
		}
	}
	if len(unsupported) > 0 {
		return &NotEmbeddableError{MethodIDs: unsupported}
	}
	return nil
}

func (o *Orchestrator) redirect(r Redirect) {
	redirector := o.deps.Redirector
	o.effect(func() {
		redirector.Redirect(r)
	})
}

func (o *Orchestrator) effect(fn func()) {
	o.effects = append(o.effects, fn)
}

// transition runs fn as one state change. Nested transitions join the outer one.
func (o *Orchestrator) transition(fn func()) {
	if o.inTransition {
		fn()
		return
	}

	o.inTransition = true
	fn()
	o.inTransition = false

	state := o.state
	for _, observe := range o.observers {
		observe(state)
	}

	effects := o.effects
	o.effects = nil
	for _, effect := range effects {
		effect()
	}
}
