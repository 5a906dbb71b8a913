package infrastructure

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/logging"
	"github.com/draftea/checkout-system/shared/models"
	"github.com/draftea/checkout-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

const defaultTrackerBuffer = 256

// StepEventData is the payload of every step tracking event
type StepEventData struct {
	SessionID  string `json:"session_id"`
	CheckoutID string `json:"checkout_id"`
	StepType   string `json:"step_type,omitempty"`
}

// StepEventRecorder turns tracking calls into events. Sessions only enqueue; Run
// publishes and archives them in the background.
type StepEventRecorder struct {
	publisher events.Publisher
	store     events.EventStore
	queue     chan *events.Event
	dropped   atomic.Int64
}

// NewStepEventRecorder creates a recorder. Either sink may be nil.
func NewStepEventRecorder(publisher events.Publisher, store events.EventStore, buffer int) *StepEventRecorder {
	if buffer <= 0 {
		buffer = defaultTrackerBuffer
	}
	return &StepEventRecorder{
		publisher: publisher,
		store:     store,
		queue:     make(chan *events.Event, buffer),
	}
}

// ForSession returns the tracker of one session
func (r *StepEventRecorder) ForSession(sessionID, checkoutID string) domain.StepTracker {
	return &sessionTracker{recorder: r, sessionID: sessionID, checkoutID: checkoutID}
}

// Dropped reports how many events were discarded because the queue was full
func (r *StepEventRecorder) Dropped() int64 {
	return r.dropped.Load()
}

// Run drains the queue until ctx is done
func (r *StepEventRecorder) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-r.queue:
			r.record(ctx, event)
		}
	}
}

func (r *StepEventRecorder) record(ctx context.Context, event *events.Event) {
	ctx, span := telemetry.StartSpan(ctx, "record_step_event")
	defer span.End()

	status := "success"
	defer func() {
		telemetry.RecordCounter(ctx, "checkout_tracking_events_total", "Total checkout tracking events", 1,
			attribute.String("topic", event.Topic.String()),
			attribute.String("status", status),
		)
	}()

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, event); err != nil {
			status = "error"
			span.RecordError(err)
			slog.Error("Failed to publish step event",
				slog.String("topic", event.Topic.String()),
				logging.CheckoutID(event.AggregateID),
				logging.Error(err))
		}
	}

	if r.store != nil {
		if err := r.store.AppendEvents(ctx, event.AggregateID, []*events.Event{event}); err != nil {
			status = "error"
			span.RecordError(err)
			slog.Error("Failed to archive step event",
				slog.String("topic", event.Topic.String()),
				logging.CheckoutID(event.AggregateID),
				logging.Error(err))
		}
	}
}

func (r *StepEventRecorder) enqueue(event *events.Event) {
	select {
	case r.queue <- event:
	default:
		r.dropped.Add(1)
		slog.Warn("Step event queue full, dropping event",
			slog.String("topic", event.Topic.String()),
			logging.CheckoutID(event.AggregateID))
	}
}

type sessionTracker struct {
	recorder   *StepEventRecorder
	sessionID  string
	checkoutID string
}

func (t *sessionTracker) TrackCheckoutStarted() {
	t.track(events.CheckoutStartedTopic, "")
}

func (t *sessionTracker) TrackStepViewed(stepType domain.StepType) {
	t.track(events.StepViewedTopic, stepType)
}

func (t *sessionTracker) TrackStepCompleted(stepType domain.StepType) {
	t.track(events.StepCompletedTopic, stepType)
}

func (t *sessionTracker) track(topic events.Topic, stepType domain.StepType) {
	event := events.NewEvent(models.ID(t.checkoutID), topic, StepEventData{
		SessionID:  t.sessionID,
		CheckoutID: t.checkoutID,
		StepType:   stepType.String(),
	}).
		WithCorrelationID(models.ID(t.sessionID)).
		WithMetadata("session_id", t.sessionID)

	if stepType != "" {
		event.WithMetadata("step_type", stepType.String())
	}
	t.recorder.enqueue(event)
}
