package application

import (
	"context"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidAction = errors.New("invalid action payload")
)

// Actions are the callbacks the presentation layer reports to a session
const (
	ActionEdit                 = "edit"
	ActionExpanded             = "expanded"
	ActionReady                = "ready"
	ActionUnhandledError       = "unhandled_error"
	ActionSubmitError          = "submit_error"
	ActionCartChangedError     = "cart_changed_error"
	ActionSignOutError         = "sign_out_error"
	ActionSignInError          = "sign_in_error"
	ActionContinueAsGuestError = "continue_as_guest_error"
	ActionToggleMultiShipping  = "toggle_multi_shipping"
	ActionCreateAccount        = "create_account"
	ActionSignIn               = "sign_in"
	ActionSignOut              = "sign_out"
	ActionShippingNextStep     = "shipping_next_step"
	ActionOrderSubmitted       = "order_submitted"
	ActionCloseError           = "close_error"
	ActionViewMounted          = "view_mounted"
	ActionCustomerCompleted    = "customer_completed"
	ActionChangeViewType       = "change_view_type"
)

// ErrorPayload describes an error raised by a step view
type ErrorPayload struct {
	Type    string `json:"type"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

// Err rebuilds the error the view reported
func (p *ErrorPayload) Err() error {
	switch p.Type {
	case "custom":
		title := p.Title
		if title == "" {
			title = domain.DefaultErrorTitle
		}
		return &domain.CustomError{Name: "default", Title: title, Message: p.Message, Data: map[string]any{}}
	case "cart_changed":
		return &domain.CartChangedError{Reason: p.Reason}
	default:
		return errors.New(p.Message)
	}
}

// DispatchActionCommand reports one presentation callback
type DispatchActionCommand struct {
	SessionID string `json:"-"`
	Action    string `json:"-"`

	StepType                string        `json:"step_type,omitempty"`
	IsBillingSameAsShipping *bool         `json:"is_billing_same_as_shipping,omitempty"`
	IsCartEmpty             bool          `json:"is_cart_empty,omitempty"`
	OrderID                 int64         `json:"order_id,omitempty"`
	ViewType                string        `json:"view_type,omitempty"`
	Error                   *ErrorPayload `json:"error,omitempty"`
}

// DispatchAction routes a presentation callback into its session
type DispatchAction struct {
	registry *SessionRegistry
}

// NewDispatchAction creates a new DispatchAction use case
func NewDispatchAction(registry *SessionRegistry) *DispatchAction {
	return &DispatchAction{registry: registry}
}

// Execute applies the action on the session goroutine and returns the resulting state
func (uc *DispatchAction) Execute(ctx context.Context, cmd *DispatchActionCommand) (*Snapshot, error) {
	ctx, span := telemetry.StartSpan(ctx, "dispatch_action",
		trace.WithAttributes(
			attribute.String("session_id", cmd.SessionID),
			attribute.String("action", cmd.Action),
		),
	)
	defer span.End()

	status := "error"
	defer func() {
		telemetry.RecordCounter(ctx, "checkout_step_events_total", "Total checkout step events", 1,
			attribute.String("action", cmd.Action),
			attribute.String("status", status),
		)
	}()

	apply, err := actionFor(cmd)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	session, err := uc.registry.Get(cmd.SessionID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var snapshot *Snapshot
	err = session.Do(ctx, func(o *domain.Orchestrator) error {
		if !session.loaded {
			return ErrSessionNotReady
		}
		apply(o)
		snapshot = session.snapshot(o)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrapf(err, "failed to dispatch %s", cmd.Action)
	}

	status = "success"
	return snapshot, nil
}

// actionFor validates the payload up front so nothing half-applies on the session
func actionFor(cmd *DispatchActionCommand) (func(o *domain.Orchestrator), error) {
	switch cmd.Action {
	case ActionEdit, ActionExpanded:
		stepType, err := domain.NewStepType(cmd.StepType)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidAction, err.Error())
		}
		if cmd.Action == ActionEdit {
			return func(o *domain.Orchestrator) { o.HandleEditStep(stepType) }, nil
		}
		return func(o *domain.Orchestrator) { o.HandleExpanded(stepType) }, nil

	case ActionReady:
		return (*domain.Orchestrator).HandleReady, nil
	case ActionToggleMultiShipping:
		return (*domain.Orchestrator).HandleToggleMultiShipping, nil
	case ActionCreateAccount:
		return (*domain.Orchestrator).HandleCreateAccount, nil
	case ActionSignIn:
		return (*domain.Orchestrator).HandleSignIn, nil
	case ActionCloseError:
		return (*domain.Orchestrator).HandleCloseErrorModal, nil
	case ActionCustomerCompleted:
		return (*domain.Orchestrator).HandleCustomerCompleted, nil
	case ActionViewMounted:
		return func(o *domain.Orchestrator) { o.HandleViewMounted() }, nil

	case ActionSignOut:
		event := domain.SignOutEvent{IsCartEmpty: cmd.IsCartEmpty}
		return func(o *domain.Orchestrator) { o.HandleSignOut(event) }, nil

	case ActionShippingNextStep:
		sameAsShipping := true
		if cmd.IsBillingSameAsShipping != nil {
			sameAsShipping = *cmd.IsBillingSameAsShipping
		}
		return func(o *domain.Orchestrator) { o.HandleShippingNextStep(sameAsShipping) }, nil

	case ActionOrderSubmitted:
		orderID := cmd.OrderID
		return func(o *domain.Orchestrator) { o.NavigateToOrderConfirmation(orderID) }, nil

	case ActionChangeViewType:
		viewType, ok := domain.NewCustomerViewType(cmd.ViewType)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidAction, "unknown view type %q", cmd.ViewType)
		}
		return func(o *domain.Orchestrator) { o.SetCustomerViewType(viewType) }, nil

	case ActionCartChangedError:
		cartErr := &domain.CartChangedError{}
		if cmd.Error != nil {
			cartErr.Reason = cmd.Error.Reason
		}
		return func(o *domain.Orchestrator) { o.HandleCartChangedError(cartErr) }, nil

	case ActionUnhandledError, ActionSubmitError, ActionSignOutError,
		ActionSignInError, ActionContinueAsGuestError:
		if cmd.Error == nil || (cmd.Error.Message == "" && cmd.Error.Type == "") {
			return nil, errors.Wrap(ErrInvalidAction, "error is required")
		}
		return errorAction(cmd.Action, cmd.Error.Err()), nil
	}

	return nil, errors.Wrapf(ErrUnknownAction, "%q", cmd.Action)
}

func errorAction(action string, err error) func(o *domain.Orchestrator) {
	switch action {
	case ActionUnhandledError:
		return func(o *domain.Orchestrator) { o.HandleUnhandledError(err) }
	case ActionSubmitError:
		return func(o *domain.Orchestrator) { o.HandleSubmitError(err) }
	case ActionSignOutError:
		return func(o *domain.Orchestrator) { o.HandleSignOutError(err) }
	case ActionSignInError:
		return func(o *domain.Orchestrator) { o.HandleSignInError(err) }
	default:
		return func(o *domain.Orchestrator) { o.HandleContinueAsGuestError(err) }
	}
}
