package infrastructure

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/draftea/checkout-system/shared/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresEventMapping(t *testing.T) {
	event := events.NewEvent("checkout-1", events.StepCompletedTopic, map[string]string{
		"step_type": "shipping",
	}).WithMetadata("session_id", "s-1")

	row, err := toPostgresEvent(event, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, row.StreamVersion)
	assert.Equal(t, "checkout.step.completed", row.Topic)
	assert.JSONEq(t, `{"step_type":"shipping"}`, string(row.Data))

	back, err := toDomainEvent(row)
	require.NoError(t, err)
	assert.Equal(t, event.ID, back.ID)
	assert.Equal(t, event.AggregateID, back.AggregateID)
	assert.Equal(t, event.Topic, back.Topic)
	assert.Equal(t, "s-1", back.Metadata["session_id"])

	var payload map[string]string
	require.NoError(t, back.UnmarshalPayload(&payload))
	assert.Equal(t, "shipping", payload["step_type"])
}

func TestToDomainEvent_Invalid(t *testing.T) {
	tests := []struct {
		name string
		row  postgresEvent
	}{
		{name: "event id is not a uuid", row: postgresEvent{ID: "nope", AggregateID: "c", Topic: "t"}},
		{name: "empty aggregate", row: postgresEvent{ID: "0b9e6a8e-8f6c-4d53-9a57-3c4a1d5e8f10", Topic: "t"}},
		{name: "empty topic", row: postgresEvent{ID: "0b9e6a8e-8f6c-4d53-9a57-3c4a1d5e8f10", AggregateID: "c"}},
		{
			name: "bad metadata",
			row: postgresEvent{
				ID: "0b9e6a8e-8f6c-4d53-9a57-3c4a1d5e8f10", AggregateID: "c", Topic: "t",
				Metadata: json.RawMessage(`[`), Timestamp: time.Now(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := toDomainEvent(&tt.row)
			assert.Error(t, err)
		})
	}
}

func TestTopicRegexp(t *testing.T) {
	topics := []events.Topic{
		events.CheckoutStartedTopic,
		events.StepViewedTopic,
		events.StepCompletedTopic,
		events.ConsignmentsUpdatedTopic,
		"checkout.step.viewed.extra",
	}
	patterns := []events.Topic{
		"#",
		events.StepTopics,
		events.StepViewedTopic,
		"checkout.#",
		"#.updated",
		"#step#",
		"*.started",
	}

	for _, pattern := range patterns {
		re := regexp.MustCompile(topicRegexp(pattern))
		for _, topic := range topics {
			assert.Equal(t, topic.Matches(pattern), re.MatchString(topic.String()),
				"pattern %q topic %q", pattern, topic)
		}
	}
}
