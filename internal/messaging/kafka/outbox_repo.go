package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

// Aggregates that publish through the outbox. Events of one aggregate are
// relayed in the order they were written.
const (
	AggregatePayrollRun = "payroll_run"
	AggregateEmployee   = "employee"
)

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

// OutboxRepository stores events next to the rows they describe so both
// commit in one transaction. The relay worker publishes them afterwards.
type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	CountUnsent(ctx context.Context, aggregateType, aggregateID string) (int, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	query := `
        INSERT INTO outbox_events (
            id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `

	exec := r.execer()
	_, err := exec.ExecContext(
		ctx, query,
		event.ID, event.RequestID, event.AggregateType,
		event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
	)
	return err
}

// ListPending returns events ready to publish, oldest first. An event is held
// back while an older unsent event of the same aggregate exists, so a run's
// status changes never overtake each other when one of them is waiting for a
// retry.
func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	query := `
SELECT
	o.id::text,
	COALESCE(o.request_id, ''),
	o.aggregate_type,
	o.aggregate_id::text,
	o.event_type,
	o.topic,
	o.payload,
	o.status,
	o.retry_count,
	COALESCE(o.next_retry_at, o.created_at)
FROM outbox_events o
WHERE o.status IN ($1, $2)
	AND (o.next_retry_at IS NULL OR o.next_retry_at <= NOW())
	AND NOT EXISTS (
		SELECT 1
		FROM outbox_events prior
		WHERE prior.aggregate_type = o.aggregate_type
			AND prior.aggregate_id = o.aggregate_id
			AND prior.status IN ($1, $2)
			AND prior.created_at < o.created_at
	)
ORDER BY o.created_at ASC
LIMIT $3
`

	rows, err := r.db.QueryContext(ctx, query, OutboxStatusPending, OutboxStatusFailed, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		e, err := scanOutboxEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// CountUnsent reports how many events of one aggregate have not reached the
// broker yet.
func (r *outboxRepository) CountUnsent(ctx context.Context, aggregateType, aggregateID string) (int, error) {
	query := `
SELECT COUNT(*)
FROM outbox_events
WHERE aggregate_type = $1
	AND aggregate_id = $2
	AND status IN ($3, $4)
`
	var n int
	err := r.db.QueryRowContext(ctx, query,
		aggregateType, aggregateID, OutboxStatusPending, OutboxStatusFailed,
	).Scan(&n)
	return n, err
}

func scanOutboxEvent(rows *sql.Rows) (OutboxEvent, error) {
	var e OutboxEvent
	err := rows.Scan(
		&e.ID,
		&e.RequestID,
		&e.AggregateType,
		&e.AggregateID,
		&e.EventType,
		&e.Topic,
		&e.Payload,
		&e.Status,
		&e.RetryCount,
		&e.NextRetryAt,
	)
	return e, err
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	query := `
UPDATE outbox_events
SET
	status = $2,
	processed_at = NOW(),
	error_message = NULL,
	updated_at = NOW()
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, query, id, OutboxStatusSent)
	return err
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	query := `
UPDATE outbox_events
SET
	status = $2,
	retry_count = retry_count + 1,
	error_message = LEFT($3, 500),
	next_retry_at = NOW() + (LEAST(retry_count + 1, 10) * INTERVAL '15 seconds'),
	updated_at = NOW()
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, query, id, OutboxStatusFailed, reason)
	return err
}

func (r *outboxRepository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	switch event.AggregateType {
	case AggregatePayrollRun, AggregateEmployee:
	default:
		return fmt.Errorf("unknown outbox aggregate: %q", event.AggregateType)
	}
	if event.AggregateID == "" {
		return errors.New("outbox aggregate id is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
