package infrastructure

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	mu         sync.Mutex
	pending    []types.Message
	deleted    []string
	visibility map[string]int32
}

func (f *fakeSQS) ReceiveMessage(_ context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &sqs.ReceiveMessageOutput{Messages: f.pending}
	f.pending = nil
	return out, nil
}

func (f *fakeSQS) DeleteMessage(_ context.Context, in *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, aws.ToString(in.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

func (f *fakeSQS) ChangeMessageVisibility(_ context.Context, in *sqs.ChangeMessageVisibilityInput, _ ...func(*sqs.Options)) (*sqs.ChangeMessageVisibilityOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.visibility == nil {
		f.visibility = map[string]int32{}
	}
	f.visibility[aws.ToString(in.ReceiptHandle)] = in.VisibilityTimeout
	return &sqs.ChangeMessageVisibilityOutput{}, nil
}

func (f *fakeSQS) snapshot() ([]string, map[string]int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	vis := make(map[string]int32, len(f.visibility))
	for k, v := range f.visibility {
		vis[k] = v
	}
	return append([]string(nil), f.deleted...), vis
}

type handlerFunc func(ctx context.Context, event *events.Event) error

func (f handlerFunc) Handle(ctx context.Context, event *events.Event) error {
	return f(ctx, event)
}

func message(handle, body string) types.Message {
	return types.Message{
		MessageId:     aws.String("m-" + handle),
		ReceiptHandle: aws.String(handle),
		Body:          aws.String(body),
		Attributes: map[string]string{
			string(types.MessageSystemAttributeNameApproximateReceiveCount): "6",
		},
		MessageAttributes: map[string]types.MessageAttributeValue{
			"session_id": {DataType: aws.String("String"), StringValue: aws.String("s-1")},
		},
	}
}

func TestSQSSubscriberAdapter_RoutesByTopic(t *testing.T) {
	client := &fakeSQS{pending: []types.Message{
		message("ok", `{"id":"e1","aggregate_id":"checkout-1","topic":"checkout.consignments.updated","data":{}}`),
		message("fail", `{"id":"e2","aggregate_id":"checkout-2","topic":"checkout.consignments.updated","data":{}}`),
		message("other", `{"id":"e3","aggregate_id":"checkout-3","topic":"checkout.started","data":{}}`),
		message("garbage", `not json`),
	}}

	var mu sync.Mutex
	var seen []*events.Event
	handler := handlerFunc(func(_ context.Context, event *events.Event) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, event)
		if event.AggregateID == "checkout-2" {
			return errors.New("boom")
		}
		return nil
	})

	adapter := NewSQSSubscriberAdapter(client, "queue",
		WithWorkers(1), WithWaitTime(0), WithIdleSleep(5*time.Millisecond, 5*time.Millisecond))
	require.NoError(t, adapter.Subscribe(context.Background(), events.ConsignmentsUpdatedTopic, handler))
	defer adapter.Close()

	require.Eventually(t, func() bool {
		deleted, vis := client.snapshot()
		return len(deleted) == 2 && len(vis) == 1
	}, time.Second, 5*time.Millisecond)

	deleted, vis := client.snapshot()
	assert.ElementsMatch(t, []string{"ok", "other"}, deleted)
	assert.Equal(t, int32(90), vis["fail"])

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	assert.Equal(t, "s-1", seen[0].Metadata["session_id"])
	assert.Equal(t, "ok", seen[0].Metadata[SQSReceiptHandleKey])
}

func TestSQSEventSubscriber_StopIsIdempotent(t *testing.T) {
	s := NewSQSEventSubscriber(&fakeSQS{}, "queue", handlerFunc(func(context.Context, *events.Event) error {
		return nil
	}), WithWaitTime(0), WithIdleSleep(time.Millisecond, time.Millisecond))

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
}
