package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopic_Matches(t *testing.T) {
	tests := []struct {
		name    string
		topic   Topic
		pattern Topic
		want    bool
	}{
		{name: "exact", topic: ConsignmentsUpdatedTopic, pattern: "checkout.consignments.updated", want: true},
		{name: "different", topic: CheckoutStartedTopic, pattern: "checkout.consignments.updated", want: false},
		{name: "wildcard segment", topic: StepViewedTopic, pattern: StepTopics, want: true},
		{name: "wildcard segment count differs", topic: CheckoutStartedTopic, pattern: StepTopics, want: false},
		{name: "prefix", topic: StepCompletedTopic, pattern: "checkout.#", want: true},
		{name: "suffix", topic: StepCompletedTopic, pattern: "#.completed", want: true},
		{name: "contains", topic: StepCompletedTopic, pattern: "#step#", want: true},
		{name: "everything", topic: ConsignmentsUpdatedTopic, pattern: "#", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.topic.Matches(tt.pattern))
		})
	}
}

func TestNewTopic(t *testing.T) {
	_, err := NewTopic("")
	assert.ErrorIs(t, err, ErrInvalidTopic)

	topic, err := NewTopic("checkout.started")
	require.NoError(t, err)
	assert.Equal(t, CheckoutStartedTopic, topic)
}

func TestEvent_UnmarshalPayload(t *testing.T) {
	type payload struct {
		StepType string `json:"step_type"`
	}

	t.Run("same type", func(t *testing.T) {
		e := NewEvent("checkout-1", StepViewedTopic, payload{StepType: "billing"})

		var got payload
		require.NoError(t, e.UnmarshalPayload(&got))
		assert.Equal(t, "billing", got.StepType)
	})

	t.Run("raw message", func(t *testing.T) {
		e := NewEvent("checkout-1", StepViewedTopic, json.RawMessage(`{"step_type":"payment"}`))

		var got payload
		require.NoError(t, e.UnmarshalPayload(&got))
		assert.Equal(t, "payment", got.StepType)
	})

	t.Run("decoded map", func(t *testing.T) {
		e := NewEvent("checkout-1", StepViewedTopic, map[string]interface{}{"step_type": "shipping"})

		var got payload
		require.NoError(t, e.UnmarshalPayload(&got))
		assert.Equal(t, "shipping", got.StepType)
	})

	t.Run("not a pointer", func(t *testing.T) {
		e := NewEvent("checkout-1", StepViewedTopic, payload{})
		assert.ErrorIs(t, e.UnmarshalPayload(payload{}), ErrInvalidReceiver)
	})
}

func TestEvent_Matches(t *testing.T) {
	e := NewEvent("checkout-1", StepCompletedTopic, nil).WithMetadata("session_id", "s-1")

	assert.True(t, e.Matches(StepTopics, Metadata{"session_id": "s-1"}))
	assert.False(t, e.Matches(StepTopics, Metadata{"session_id": "s-2"}))
	assert.False(t, e.Matches(ConsignmentsUpdatedTopic, nil))
}
