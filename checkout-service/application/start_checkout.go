package application

import (
	"context"
	"log/slog"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/logging"
	"github.com/draftea/checkout-system/shared/models"
	"github.com/draftea/checkout-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TrackerProvider binds step tracking to one session
type TrackerProvider interface {
	ForSession(sessionID, checkoutID string) domain.StepTracker
}

// MessengerProvider binds the embedded host channel to one session
type MessengerProvider interface {
	ForSession(sessionID string) domain.MessengerFactory
	Release(sessionID string)
}

// SessionDependencies are shared by every session started by this process
type SessionDependencies struct {
	Loader       domain.CheckoutLoader
	Consignments domain.ConsignmentSubscriber
	Registry     domain.StepRegistry
	Trackers     TrackerProvider
	Hosts        MessengerProvider
	ErrorLogger  domain.ErrorLogger
	Brands       domain.BrandCatalog

	UnsupportedEmbeddedMethods []string
}

// StartCheckoutCommand starts a session for one checkout
type StartCheckoutCommand struct {
	CheckoutID  string `json:"-"`
	ContainerID string `json:"container_id"`
	Embedded    bool   `json:"embedded"`
}

// StartCheckoutResponse carries the new session once its checkout settled
type StartCheckoutResponse struct {
	SessionID string
	Snapshot  *Snapshot
}

// StartCheckout creates a session and loads its checkout
type StartCheckout struct {
	registry *SessionRegistry
	deps     SessionDependencies
}

// NewStartCheckout creates a new StartCheckout use case
func NewStartCheckout(registry *SessionRegistry, deps SessionDependencies) *StartCheckout {
	return &StartCheckout{
		registry: registry,
		deps:     deps,
	}
}

// Execute registers the session and waits for the initial load to settle. A load
// failure is part of the snapshot, not an error.
func (uc *StartCheckout) Execute(ctx context.Context, cmd *StartCheckoutCommand) (*StartCheckoutResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "start_checkout",
		trace.WithAttributes(
			attribute.String("checkout_id", cmd.CheckoutID),
			attribute.Bool("embedded", cmd.Embedded),
		),
	)
	defer span.End()

	checkoutID, err := models.NewID(cmd.CheckoutID)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "invalid checkout ID")
	}

	sessionID := models.GenerateUUID().String()
	span.SetAttributes(attribute.String("session_id", sessionID))

	session := NewSession(SessionConfig{
		ID:           sessionID,
		CheckoutID:   checkoutID.String(),
		Dependencies: uc.sessionDependencies(sessionID, checkoutID.String(), cmd.Embedded),
		Options: domain.Options{
			ContainerID:                cmd.ContainerID,
			UnsupportedEmbeddedMethods: uc.deps.UnsupportedEmbeddedMethods,
		},
		OnClose: uc.releaseHost(sessionID, cmd.Embedded),
	})
	uc.registry.Add(session)
	session.Start()

	telemetry.RecordCounter(ctx, "checkout_sessions_started_total", "Total checkout sessions started", 1,
		attribute.Bool("embedded", cmd.Embedded),
	)
	slog.Info("Checkout session started",
		logging.SessionID(sessionID),
		logging.CheckoutID(cmd.CheckoutID),
		slog.Bool("embedded", cmd.Embedded))

	select {
	case <-session.Ready():
	case <-ctx.Done():
		uc.abandon(session)
		span.RecordError(ctx.Err())
		return nil, errors.Wrap(ctx.Err(), "checkout did not load in time")
	}

	snapshot, err := session.Snapshot(ctx)
	if err != nil {
		uc.abandon(session)
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to read session")
	}

	return &StartCheckoutResponse{
		SessionID: sessionID,
		Snapshot:  snapshot,
	}, nil
}

// abandon ends a session whose id never reached the caller
func (uc *StartCheckout) abandon(session *Session) {
	if _, err := uc.registry.Remove(session.ID); err != nil {
		return
	}
	session.Close()
	slog.Warn("Checkout session abandoned before it loaded",
		logging.SessionID(session.ID),
		logging.CheckoutID(session.CheckoutID))
}

func (uc *StartCheckout) sessionDependencies(sessionID, checkoutID string, embedded bool) domain.Dependencies {
	deps := domain.Dependencies{
		Loader:       uc.deps.Loader,
		Consignments: uc.deps.Consignments,
		Registry:     uc.deps.Registry,
		ErrorLogger:  uc.deps.ErrorLogger,
		Brands:       uc.deps.Brands,
	}
	if uc.deps.Trackers != nil {
		deps.Tracker = uc.deps.Trackers.ForSession(sessionID, checkoutID)
	}
	if embedded && uc.deps.Hosts != nil {
		deps.Messengers = uc.deps.Hosts.ForSession(sessionID)
	}
	return deps
}

func (uc *StartCheckout) releaseHost(sessionID string, embedded bool) func() {
	if !embedded || uc.deps.Hosts == nil {
		return nil
	}
	hosts := uc.deps.Hosts
	return func() {
		hosts.Release(sessionID)
	}
}
