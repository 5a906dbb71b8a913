package application

import (
	"context"

	"github.com/draftea/checkout-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GetSessionQuery represents the query to read a session
type GetSessionQuery struct {
	SessionID string
}

// GetSession returns the current state of a session
type GetSession struct {
	registry *SessionRegistry
}

// NewGetSession creates a new GetSession use case
func NewGetSession(registry *SessionRegistry) *GetSession {
	return &GetSession{registry: registry}
}

func (uc *GetSession) Execute(ctx context.Context, query *GetSessionQuery) (*Snapshot, error) {
	ctx, span := telemetry.StartSpan(ctx, "get_session",
		trace.WithAttributes(attribute.String("session_id", query.SessionID)),
	)
	defer span.End()

	session, err := uc.registry.Get(query.SessionID)
	if err != nil {
		return nil, err
	}

	snapshot, err := session.Snapshot(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return snapshot, nil
}
