package handlers

import (
	"context"
	"log/slog"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/logging"
	"github.com/draftea/checkout-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ events.EventHandler = (*CheckoutEventHandlers)(nil)

// CheckoutEventHandlers consumes checkout events published by the storefront
type CheckoutEventHandlers struct {
	repository domain.CheckoutRepository
	publisher  domain.ConsignmentPublisher
}

// NewCheckoutEventHandlers creates new checkout event handlers
func NewCheckoutEventHandlers(
	repository domain.CheckoutRepository,
	publisher domain.ConsignmentPublisher,
) *CheckoutEventHandlers {
	return &CheckoutEventHandlers{
		repository: repository,
		publisher:  publisher,
	}
}

// Handle implements the events.EventHandler interface
func (h *CheckoutEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	switch event.Topic {
	case events.ConsignmentsUpdatedTopic:
		return h.HandleConsignmentsUpdated(ctx, event)
	default:
		return nil
	}
}

// HandleConsignmentsUpdated stores the refreshed checkout and pushes it to the live
// sessions of that checkout
func (h *CheckoutEventHandlers) HandleConsignmentsUpdated(ctx context.Context, event *events.Event) error {
	ctx, span := telemetry.StartSpan(ctx, "handle_consignments_updated",
		trace.WithAttributes(attribute.String("event_id", event.ID.String())),
	)
	defer span.End()

	var checkout domain.Checkout
	if err := event.UnmarshalPayload(&checkout); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to parse consignments updated data")
	}
	if checkout.ID == "" {
		checkout.ID = event.AggregateID.String()
	}
	span.SetAttributes(attribute.String("checkout_id", checkout.ID))

	if err := h.repository.Save(ctx, &checkout); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to save checkout")
	}

	h.publisher.PublishConsignments(&checkout)

	slog.Debug("Consignments updated",
		logging.CheckoutID(checkout.ID),
		slog.Int("consignments", len(checkout.Consignments)))
	return nil
}
