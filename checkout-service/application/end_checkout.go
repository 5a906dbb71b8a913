package application

import (
	"context"
	"log/slog"

	"github.com/draftea/checkout-system/shared/logging"
	"github.com/draftea/checkout-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EndCheckoutCommand ends a session
type EndCheckoutCommand struct {
	SessionID string
}

// EndCheckout unregisters a session and releases its subscriptions
type EndCheckout struct {
	registry *SessionRegistry
}

// NewEndCheckout creates a new EndCheckout use case
func NewEndCheckout(registry *SessionRegistry) *EndCheckout {
	return &EndCheckout{registry: registry}
}

func (uc *EndCheckout) Execute(ctx context.Context, cmd *EndCheckoutCommand) error {
	ctx, span := telemetry.StartSpan(ctx, "end_checkout",
		trace.WithAttributes(attribute.String("session_id", cmd.SessionID)),
	)
	defer span.End()

	session, err := uc.registry.Remove(cmd.SessionID)
	if err != nil {
		return err
	}
	session.Close()

	telemetry.RecordCounter(ctx, "checkout_sessions_ended_total", "Total checkout sessions ended", 1)
	slog.Info("Checkout session ended",
		logging.SessionID(session.ID),
		logging.CheckoutID(session.CheckoutID))
	return nil
}
