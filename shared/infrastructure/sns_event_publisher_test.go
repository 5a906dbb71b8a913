package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNS struct {
	mu      sync.Mutex
	inputs  []*sns.PublishBatchInput
	failIDs map[string]bool
}

func (f *fakeSNS) PublishBatch(_ context.Context, in *sns.PublishBatchInput, _ ...func(*sns.Options)) (*sns.PublishBatchOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)

	out := &sns.PublishBatchOutput{}
	for _, entry := range in.PublishBatchRequestEntries {
		if f.failIDs[aws.ToString(entry.Id)] {
			out.Failed = append(out.Failed, types.BatchResultErrorEntry{Id: entry.Id})
		}
	}
	return out, nil
}

func TestSNSEventPublisher_Publish(t *testing.T) {
	client := &fakeSNS{}
	publisher := NewSNSEventPublisher(client, "arn:aws:sns:us-east-1:000000000000:checkout")

	var evts []*events.Event
	for i := 0; i < 12; i++ {
		evts = append(evts, events.NewEvent("checkout-1", events.StepViewedTopic, map[string]int{"n": i}).
			WithMetadata("session_id", fmt.Sprint(i)).
			WithMetadata(SQSReceiptHandleKey, "drop-me"))
	}

	require.NoError(t, publisher.Publish(context.Background(), evts...))
	require.Len(t, client.inputs, 2)

	entries := 0
	for _, in := range client.inputs {
		assert.Equal(t, "arn:aws:sns:us-east-1:000000000000:checkout", aws.ToString(in.TopicArn))
		entries += len(in.PublishBatchRequestEntries)
	}
	assert.Equal(t, 12, entries)

	entry := client.inputs[0].PublishBatchRequestEntries[0]
	assert.Equal(t, "checkout.step.viewed", aws.ToString(entry.MessageAttributes["topic"].StringValue))
	assert.NotContains(t, entry.MessageAttributes, SQSReceiptHandleKey)

	var decoded events.Event
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(entry.Message)), &decoded))
	assert.Equal(t, events.StepViewedTopic, decoded.Topic)
	assert.Equal(t, "checkout-1", decoded.AggregateID.String())
}

func TestSNSEventPublisher_PartialFailure(t *testing.T) {
	event := events.NewEvent("checkout-1", events.CheckoutStartedTopic, nil)
	client := &fakeSNS{failIDs: map[string]bool{event.ID.String(): true}}

	err := NewSNSEventPublisher(client, "arn").Publish(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), event.ID.String())
}

func TestSNSEventPublisher_NoEvents(t *testing.T) {
	client := &fakeSNS{}
	require.NoError(t, NewSNSEventPublisher(client, "arn").Publish(context.Background()))
	assert.Empty(t, client.inputs)
}
