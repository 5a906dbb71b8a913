package application

import (
	"context"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/pkg/errors"
)

// CheckEmbeddedSupportQuery lists the payment methods a session is about to offer
type CheckEmbeddedSupportQuery struct {
	SessionID string   `json:"-"`
	MethodIDs []string `json:"method_ids"`
}

// CheckEmbeddedSupport rejects payment methods that cannot run inside the parent frame
type CheckEmbeddedSupport struct {
	registry *SessionRegistry
}

// NewCheckEmbeddedSupport creates a new CheckEmbeddedSupport use case
func NewCheckEmbeddedSupport(registry *SessionRegistry) *CheckEmbeddedSupport {
	return &CheckEmbeddedSupport{registry: registry}
}

// Execute returns a *domain.NotEmbeddableError for unsupported methods
func (uc *CheckEmbeddedSupport) Execute(ctx context.Context, query *CheckEmbeddedSupportQuery) error {
	if len(query.MethodIDs) == 0 {
		return errors.Wrap(ErrInvalidAction, "method_ids is required")
	}

	session, err := uc.registry.Get(query.SessionID)
	if err != nil {
		return err
	}

	return session.Do(ctx, func(o *domain.Orchestrator) error {
		return o.CheckEmbeddedSupport(query.MethodIDs...)
	})
}
