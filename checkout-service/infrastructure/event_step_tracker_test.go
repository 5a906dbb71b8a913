package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/checkout-service/mocks"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/models"
)

func TestStepEventRecorder_Run(t *testing.T) {
	publisher := mocks.NewMockPublisher(t)
	store := mocks.NewMockEventStore(t)

	published := make(chan *events.Event, 2)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, evts ...*events.Event) {
			published <- evts[0]
		}).
		Return(nil).
		Times(2)

	archived := make(chan struct{}, 2)
	store.EXPECT().AppendEvents(mock.Anything, models.ID("checkout-1"), mock.Anything).
		Run(func(context.Context, models.ID, []*events.Event) {
			archived <- struct{}{}
		}).
		Return(errors.New("database unavailable")).
		Once()
	store.EXPECT().AppendEvents(mock.Anything, models.ID("checkout-1"), mock.Anything).
		Run(func(context.Context, models.ID, []*events.Event) {
			archived <- struct{}{}
		}).
		Return(nil).
		Once()

	recorder := NewStepEventRecorder(publisher, store, 4)
	tracker := recorder.ForSession("session-1", "checkout-1")
	tracker.TrackCheckoutStarted()
	tracker.TrackStepCompleted(domain.StepCustomer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- recorder.Run(ctx) }()

	started := <-published
	assert.Equal(t, events.CheckoutStartedTopic, started.Topic)
	assert.Equal(t, models.ID("session-1"), started.CorrelationID)

	completed := <-published
	assert.Equal(t, events.StepCompletedTopic, completed.Topic)
	stepType, ok := completed.Metadata.Get("step_type")
	require.True(t, ok)
	assert.Equal(t, "customer", stepType)

	var data StepEventData
	require.NoError(t, completed.UnmarshalPayload(&data))
	assert.Equal(t, StepEventData{SessionID: "session-1", CheckoutID: "checkout-1", StepType: "customer"}, data)

	<-archived
	<-archived
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("recorder did not stop")
	}
}

func TestStepEventRecorder_DropsWhenFull(t *testing.T) {
	recorder := NewStepEventRecorder(nil, nil, 1)
	tracker := recorder.ForSession("session-1", "checkout-1")

	tracker.TrackStepViewed(domain.StepShipping)
	tracker.TrackStepViewed(domain.StepBilling)

	assert.Equal(t, int64(1), recorder.Dropped())
}
