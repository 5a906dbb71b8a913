package infrastructure

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

var _ events.EventStore = (*PostgresEventStore)(nil)

// PostgresEventStore archives events in the event_stream table
type PostgresEventStore struct {
	db *sqlx.DB
}

// NewPostgresEventStore creates a new PostgresEventStore
func NewPostgresEventStore(db *sqlx.DB) *PostgresEventStore {
	return &PostgresEventStore{db: db}
}

type postgresEvent struct {
	ID            string    `db:"id"`
	AggregateID   string    `db:"aggregate_id"`
	Topic         string    `db:"topic"`
	Version       string    `db:"version"`
	Data          []byte    `db:"data"`
	Metadata      []byte    `db:"metadata"`
	Timestamp     time.Time `db:"timestamp"`
	CorrelationID string    `db:"correlation_id"`
	StreamVersion int       `db:"stream_version"`
}

const selectEvents = `
	SELECT id, aggregate_id, topic, version, data, metadata,
		   timestamp, correlation_id, stream_version
	FROM event_stream`

// AppendEvents appends events after the latest stream version of the aggregate
func (es *PostgresEventStore) AppendEvents(ctx context.Context, aggregateID models.ID, evts []*events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	tx, err := es.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	// serialises appends per aggregate
	if _, err := tx.ExecContext(ctx,
		"SELECT pg_advisory_xact_lock(hashtext($1))", aggregateID.String()); err != nil {
		return errors.Wrap(err, "failed to lock stream")
	}

	var currentVersion int
	if err := tx.GetContext(ctx, &currentVersion,
		"SELECT COALESCE(MAX(stream_version), 0) FROM event_stream WHERE aggregate_id = $1",
		aggregateID.String()); err != nil {
		return errors.Wrap(err, "failed to get current version")
	}

	rows := make([]*postgresEvent, 0, len(evts))
	for i, event := range evts {
		row, err := toPostgresEvent(event, currentVersion+i+1)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO event_stream (
			id, aggregate_id, topic, version, data, metadata,
			timestamp, correlation_id, stream_version
		) VALUES (
			:id, :aggregate_id, :topic, :version, :data, :metadata,
			:timestamp, :correlation_id, :stream_version
		)`, rows)
	if err != nil {
		return errors.Wrap(err, "failed to insert events")
	}

	return errors.Wrap(tx.Commit(), "failed to commit events")
}

// GetEvents retrieves all events for an aggregate
func (es *PostgresEventStore) GetEvents(ctx context.Context, aggregateID models.ID) ([]*events.Event, error) {
	var rows []postgresEvent
	err := es.db.SelectContext(ctx, &rows,
		selectEvents+` WHERE aggregate_id = $1 ORDER BY stream_version ASC`,
		aggregateID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get events")
	}
	return toEvents(rows)
}

// GetEventsByTopic retrieves the events matching a topic pattern with pagination
func (es *PostgresEventStore) GetEventsByTopic(ctx context.Context, topic events.Topic, offset, limit int) ([]*events.Event, error) {
	var rows []postgresEvent
	err := es.db.SelectContext(ctx, &rows,
		selectEvents+` WHERE topic ~ $1 ORDER BY timestamp ASC LIMIT $2 OFFSET $3`,
		topicRegexp(topic), limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get events by topic")
	}
	return toEvents(rows)
}

// topicRegexp translates a topic pattern into the equivalent POSIX regular expression
func topicRegexp(pattern events.Topic) string {
	p := pattern.String()
	if p == "#" {
		return ".*"
	}

	prefixed := strings.HasPrefix(p, "#")
	suffixed := strings.HasSuffix(p, "#")
	trimmed := regexp.QuoteMeta(strings.TrimSuffix(strings.TrimPrefix(p, "#"), "#"))

	switch {
	case prefixed && suffixed:
		return trimmed
	case prefixed:
		return trimmed + "$"
	case suffixed:
		return "^" + trimmed
	}

	segments := strings.Split(p, ".")
	for i, segment := range segments {
		if segment == "*" {
			segments[i] = `[^.]+`
			continue
		}
		segments[i] = regexp.QuoteMeta(segment)
	}
	return "^" + strings.Join(segments, `\.`) + "$"
}

func toPostgresEvent(event *events.Event, streamVersion int) (*postgresEvent, error) {
	data, err := event.MarshalPayload()
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal event data")
	}

	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal event metadata")
	}

	return &postgresEvent{
		ID:            event.ID.String(),
		AggregateID:   event.AggregateID.String(),
		Topic:         event.Topic.String(),
		Version:       event.Version,
		Data:          data,
		Metadata:      metadata,
		Timestamp:     event.Timestamp,
		CorrelationID: event.CorrelationID.String(),
		StreamVersion: streamVersion,
	}, nil
}

func toEvents(rows []postgresEvent) ([]*events.Event, error) {
	res := make([]*events.Event, len(rows))
	for i := range rows {
		event, err := toDomainEvent(&rows[i])
		if err != nil {
			return nil, err
		}
		res[i] = event
	}
	return res, nil
}

func toDomainEvent(row *postgresEvent) (*events.Event, error) {
	id, err := models.ParseUUID(row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid event ID")
	}

	aggregateID, err := models.NewID(row.AggregateID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid aggregate ID")
	}

	topic, err := events.NewTopic(row.Topic)
	if err != nil {
		return nil, err
	}

	metadata := make(events.Metadata)
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &metadata); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal event metadata")
		}
	}

	return &events.Event{
		ID:            id,
		AggregateID:   aggregateID,
		Topic:         topic,
		Version:       row.Version,
		Data:          json.RawMessage(row.Data),
		Metadata:      metadata,
		Timestamp:     row.Timestamp,
		CorrelationID: models.ID(row.CorrelationID),
	}, nil
}
