package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/checkout-service/mocks"
	"github.com/draftea/checkout-system/shared/events"
)

func TestCheckoutEventHandlers_Handle(t *testing.T) {
	payload, _ := json.Marshal(testCheckout())

	tests := []struct {
		name    string
		event   *events.Event
		setup   func(repo *mocks.MockCheckoutRepository, pub *mocks.MockConsignmentPublisher)
		wantErr bool
	}{
		{
			name:  "consignments updated",
			event: events.NewEvent("checkout-1", events.ConsignmentsUpdatedTopic, json.RawMessage(payload)),
			setup: func(repo *mocks.MockCheckoutRepository, pub *mocks.MockConsignmentPublisher) {
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(c *domain.Checkout) bool {
					return c.ID == "checkout-1" && len(c.Consignments) == 1
				})).Return(nil).Once()
				pub.EXPECT().PublishConsignments(mock.MatchedBy(func(c *domain.Checkout) bool {
					return c.ID == "checkout-1"
				})).Return().Once()
			},
		},
		{
			name:  "checkout id taken from the aggregate",
			event: events.NewEvent("checkout-7", events.ConsignmentsUpdatedTopic, json.RawMessage(`{"consignments":[]}`)),
			setup: func(repo *mocks.MockCheckoutRepository, pub *mocks.MockConsignmentPublisher) {
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(c *domain.Checkout) bool {
					return c.ID == "checkout-7"
				})).Return(nil).Once()
				pub.EXPECT().PublishConsignments(mock.Anything).Return().Once()
			},
		},
		{
			name:  "save failure is retried",
			event: events.NewEvent("checkout-1", events.ConsignmentsUpdatedTopic, json.RawMessage(payload)),
			setup: func(repo *mocks.MockCheckoutRepository, pub *mocks.MockConsignmentPublisher) {
				repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("database unavailable")).Once()
			},
			wantErr: true,
		},
		{
			name:    "malformed payload",
			event:   events.NewEvent("checkout-1", events.ConsignmentsUpdatedTopic, json.RawMessage(`[`)),
			setup:   func(*mocks.MockCheckoutRepository, *mocks.MockConsignmentPublisher) {},
			wantErr: true,
		},
		{
			name:  "other topics are ignored",
			event: events.NewEvent("checkout-1", events.StepViewedTopic, nil),
			setup: func(*mocks.MockCheckoutRepository, *mocks.MockConsignmentPublisher) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCheckoutRepository(t)
			pub := mocks.NewMockConsignmentPublisher(t)
			tt.setup(repo, pub)

			err := NewCheckoutEventHandlers(repo, pub).Handle(context.Background(), tt.event)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
