package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/logging"
	"github.com/pkg/errors"
)

const (
	SQSMessageIDKey     = "sqs_message_id"
	SQSReceiptHandleKey = "sqs_receipt_handle"
)

// SQSAPI is the part of the SQS client the subscriber needs
type SQSAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
	ChangeMessageVisibility(ctx context.Context, params *sqs.ChangeMessageVisibilityInput, optFns ...func(*sqs.Options)) (*sqs.ChangeMessageVisibilityOutput, error)
}

type sqsMessage struct {
	Message types.Message
	Event   *events.Event
	Err     error
}

// SQSEventSubscriber reads events from one queue and hands them to a handler.
// Handled messages are deleted; failed ones become visible again with a backoff.
type SQSEventSubscriber struct {
	mux     sync.Mutex
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	running atomic.Bool
	options *sqsSubscriberOptions

	inbound  chan *sqsMessage
	outbound chan *sqsMessage

	client   SQSAPI
	queueURL string
	handler  events.EventHandler
}

type sqsSubscriberOptions struct {
	workers                    int
	readers                    int
	cleaners                   int
	maxNumberOfMessages        int32
	waitTimeSeconds            int32
	visibilityTimeout          int32
	sleepTimeAfterEmptyReceive time.Duration
	sleepTimeAfterError        time.Duration
	receiveCountRange          int32
	visibilityTimeoutOffset    int32
	maxVisibilityTimeout       int32
}

type SQSSubscriberOption func(*sqsSubscriberOptions)

func WithWorkers(workers int) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.workers = workers
	}
}

func WithReaders(readers int) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.readers = readers
	}
}

func WithVisibilityTimeout(timeout int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.visibilityTimeout = timeout
	}
}

func WithWaitTime(seconds int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.waitTimeSeconds = seconds
	}
}

func WithIdleSleep(empty, onError time.Duration) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.sleepTimeAfterEmptyReceive = empty
		o.sleepTimeAfterError = onError
	}
}

// NewSQSEventSubscriber creates a new SQS event subscriber
func NewSQSEventSubscriber(
	client SQSAPI,
	queueURL string,
	handler events.EventHandler,
	opts ...SQSSubscriberOption,
) *SQSEventSubscriber {
	options := &sqsSubscriberOptions{
		workers:                    10,
		readers:                    1,
		cleaners:                   2,
		maxNumberOfMessages:        10,
		waitTimeSeconds:            15,
		visibilityTimeout:          30,
		sleepTimeAfterEmptyReceive: 2 * time.Second,
		sleepTimeAfterError:        10 * time.Second,
		receiveCountRange:          3,
		visibilityTimeoutOffset:    30,
		maxVisibilityTimeout:       900,
	}

	for _, opt := range opts {
		opt(options)
	}

	return &SQSEventSubscriber{
		client:   client,
		queueURL: queueURL,
		handler:  handler,
		options:  options,
	}
}

// Start launches the readers, workers and cleaners. It does not block.
func (s *SQSEventSubscriber) Start(ctx context.Context) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.running.Load() {
		return nil
	}
	if s.handler == nil {
		return errors.New("no handler configured")
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.inbound = make(chan *sqsMessage, s.options.maxNumberOfMessages)
	s.outbound = make(chan *sqsMessage, s.options.maxNumberOfMessages)

	s.spawn(s.options.workers, func() { s.startWorker(ctx) })
	s.spawn(s.options.readers, func() { s.startReader(ctx) })
	s.spawn(s.options.cleaners, func() { s.startCleaner(ctx) })

	s.running.Store(true)
	return nil
}

func (s *SQSEventSubscriber) spawn(n int, fn func()) {
	for i := 0; i < n; i++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			fn()
		}()
	}
}

// Stop cancels every goroutine and waits for them to return
func (s *SQSEventSubscriber) Stop(context.Context) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if !s.running.Load() {
		return nil
	}

	s.cancel()
	s.wg.Wait()
	s.cancel = nil
	s.running.Store(false)
	return nil
}

func (s *SQSEventSubscriber) startWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-s.inbound:
			s.handle(ctx, message)
		}
	}
}

func (s *SQSEventSubscriber) startReader(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		received, err := s.read(ctx)
		switch {
		case err != nil && ctx.Err() == nil:
			slog.Error("SQS receive failed",
				slog.String("queue_url", s.queueURL),
				logging.Error(err))
			sleep(ctx, s.options.sleepTimeAfterError)
		case err == nil && received == 0:
			sleep(ctx, s.options.sleepTimeAfterEmptyReceive)
		}
	}
}

func (s *SQSEventSubscriber) startCleaner(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-s.outbound:
			if err := s.clean(ctx, message); err != nil {
				slog.Error("SQS cleanup failed",
					slog.String("queue_url", s.queueURL),
					logging.Error(err))
			}
		}
	}
}

func (s *SQSEventSubscriber) read(ctx context.Context) (int, error) {
	output, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(s.queueURL),
		MaxNumberOfMessages: s.options.maxNumberOfMessages,
		WaitTimeSeconds:     s.options.waitTimeSeconds,
		VisibilityTimeout:   s.options.visibilityTimeout,
		MessageSystemAttributeNames: []types.MessageSystemAttributeName{
			types.MessageSystemAttributeNameApproximateReceiveCount,
		},
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to receive message from SQS")
	}

	for _, message := range output.Messages {
		event, err := decodeMessage(message)
		if err != nil {
			slog.Warn("Skipping malformed SQS message",
				slog.String("message_id", aws.ToString(message.MessageId)),
				logging.Error(err))
			continue
		}

		select {
		case s.inbound <- &sqsMessage{Message: message, Event: event}:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	return len(output.Messages), nil
}

func decodeMessage(message types.Message) (*events.Event, error) {
	var event events.Event
	if err := json.Unmarshal([]byte(aws.ToString(message.Body)), &event); err != nil {
		return nil, errors.Wrap(err, "failed to decode event")
	}
	if event.Topic == "" {
		return nil, events.ErrInvalidTopic
	}

	if event.Metadata == nil {
		event.Metadata = make(events.Metadata)
	}
	event.Metadata.Set(SQSMessageIDKey, aws.ToString(message.MessageId))
	if message.ReceiptHandle != nil {
		event.Metadata.Set(SQSReceiptHandleKey, *message.ReceiptHandle)
	}
	for k, v := range message.MessageAttributes {
		if v.StringValue != nil {
			event.Metadata.Set(k, *v.StringValue)
		}
	}

	return &event, nil
}

func (s *SQSEventSubscriber) handle(ctx context.Context, message *sqsMessage) {
	message.Err = s.handler.Handle(ctx, message.Event)
	if message.Err != nil {
		slog.Warn("SQS event handler failed",
			slog.String("topic", message.Event.Topic.String()),
			logging.Error(message.Err))
	}

	select {
	case s.outbound <- message:
	case <-ctx.Done():
	}
}

func (s *SQSEventSubscriber) clean(ctx context.Context, message *sqsMessage) error {
	if message.Err != nil {
		_, err := s.client.ChangeMessageVisibility(ctx, &sqs.ChangeMessageVisibilityInput{
			QueueUrl:          aws.String(s.queueURL),
			ReceiptHandle:     message.Message.ReceiptHandle,
			VisibilityTimeout: s.retryVisibility(message.Message),
		})
		return errors.Wrap(err, "failed to extend visibility timeout")
	}

	_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.queueURL),
		ReceiptHandle: message.Message.ReceiptHandle,
	})
	return errors.Wrap(err, "failed to delete message from SQS")
}

func (s *SQSEventSubscriber) retryVisibility(message types.Message) int32 {
	receiveCount, err := strconv.Atoi(
		message.Attributes[string(types.MessageSystemAttributeNameApproximateReceiveCount)],
	)
	if err != nil {
		receiveCount = 1
	}

	timeout := s.options.visibilityTimeout +
		(int32(receiveCount)/s.options.receiveCountRange)*s.options.visibilityTimeoutOffset
	if timeout > s.options.maxVisibilityTimeout {
		timeout = s.options.maxVisibilityTimeout
	}
	return timeout
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
