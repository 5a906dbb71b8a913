package domain

// CustomerViewType selects which form the customer step shows
type CustomerViewType string

const (
	CustomerViewGuest         CustomerViewType = "guest"
	CustomerViewLogin         CustomerViewType = "login"
	CustomerViewCreateAccount CustomerViewType = "create_account"
)

// NewCustomerViewType parses a customer view type
func NewCustomerViewType(s string) (CustomerViewType, bool) {
	switch v := CustomerViewType(s); v {
	case CustomerViewGuest, CustomerViewLogin, CustomerViewCreateAccount:
		return v, true
	}
	return "", false
}

// State is owned by one orchestrator and only changes through its operations
type State struct {
	// ActiveStepType is the step chosen by the shopper. It wins over DefaultStepType.
	ActiveStepType StepType
	// DefaultStepType is the step the system settles on when nothing was chosen
	DefaultStepType StepType

	IsMultiShippingMode        bool
	IsBillingSameAsShipping    bool
	HasSelectedShippingOptions bool
	IsBuyNowCartEnabled        bool

	IsCartEmpty bool
	// IsRedirecting is terminal: no navigation is honoured once it is set
	IsRedirecting bool

	CustomerViewType CustomerViewType

	// Error is the single surfaced error, rendered as a blocking modal
	Error error

	IsViewMounted bool
	Branding      *Branding
}

// NewState returns the state of a freshly started session
func NewState() State {
	return State{
		IsBillingSameAsShipping: true,
	}
}

// CurrentStep is the step shown to the shopper
func (s State) CurrentStep() StepType {
	if s.ActiveStepType != "" {
		return s.ActiveStepType
	}
	return s.DefaultStepType
}
