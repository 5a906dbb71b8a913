package infrastructure

import (
	"context"
	"sync"

	"github.com/draftea/checkout-system/shared/events"
	"github.com/pkg/errors"
)

var _ events.Subscriber = (*SQSSubscriberAdapter)(nil)

type route struct {
	topic   events.Topic
	handler events.EventHandler
}

// SQSSubscriberAdapter routes the events of one queue to handlers by topic pattern.
// The queue is read once the first handler subscribed.
type SQSSubscriberAdapter struct {
	mux        sync.RWMutex
	routes     []route
	subscriber *SQSEventSubscriber
}

// NewSQSSubscriberAdapter creates a new SQS subscriber adapter
func NewSQSSubscriberAdapter(client SQSAPI, queueURL string, opts ...SQSSubscriberOption) *SQSSubscriberAdapter {
	a := &SQSSubscriberAdapter{}
	a.subscriber = NewSQSEventSubscriber(client, queueURL, a, opts...)
	return a
}

// Subscribe implements events.Subscriber interface
func (a *SQSSubscriberAdapter) Subscribe(ctx context.Context, topic events.Topic, handler events.EventHandler) error {
	if handler == nil {
		return errors.New("nil event handler")
	}

	a.mux.Lock()
	a.routes = append(a.routes, route{topic: topic, handler: handler})
	a.mux.Unlock()

	if err := a.subscriber.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start SQS subscriber")
	}
	return nil
}

// Handle dispatches to every matching handler. Events nobody subscribed to are
// acknowledged.
func (a *SQSSubscriberAdapter) Handle(ctx context.Context, event *events.Event) error {
	a.mux.RLock()
	routes := make([]route, len(a.routes))
	copy(routes, a.routes)
	a.mux.RUnlock()

	for _, r := range routes {
		if !event.Topic.Matches(r.topic) {
			continue
		}
		if err := r.handler.Handle(ctx, event); err != nil {
			return errors.Wrapf(err, "handler for %s failed", r.topic)
		}
	}
	return nil
}

// Close stops the subscriber
func (a *SQSSubscriberAdapter) Close() error {
	if err := a.subscriber.Stop(context.Background()); err != nil {
		return errors.Wrap(err, "failed to stop SQS subscriber")
	}
	return nil
}
