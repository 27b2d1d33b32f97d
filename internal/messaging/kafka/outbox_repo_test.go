package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxRepository_CreateUsesTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event := kafka.OutboxEvent{
		ID:            "7d8c9b0a-1e2f-4a3b-8c4d-5e6f7a8b9c0d",
		RequestID:     "req-1",
		AggregateType: kafka.AggregatePayrollRun,
		AggregateID:   "0b7f3c1e-2d4a-4e6b-8f9a-1c2d3e4f5a6b",
		EventType:     "payroll_run_status_changed",
		Topic:         "payroll.run.status.v1",
		Payload:       []byte(`{"to":"review"}`),
		Status:        kafka.OutboxStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(event.ID, event.RequestID, event.AggregateType, event.AggregateID,
			event.EventType, event.Topic, event.Payload, event.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	repo := kafka.NewOutboxRepository(db)
	require.NoError(t, repo.WithTx(tx).Create(context.Background(), event))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("e1", "req-1", "payroll_run", "r1", "payroll_run_status_changed",
		"payroll.run.status.v1", []byte(`{}`), kafka.OutboxStatusFailed, 2, at)

	mock.ExpectQuery(`(?s)FROM outbox_events o.*NOT EXISTS.*prior\.aggregate_id = o\.aggregate_id.*prior\.created_at < o\.created_at`).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
		WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Equal(t, 2, events[0].RetryCount)
	assert.Equal(t, at, events[0].NextRetryAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CountUnsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(kafka.AggregatePayrollRun, "r1", kafka.OutboxStatusPending, kafka.OutboxStatusFailed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := kafka.NewOutboxRepository(db).CountUnsent(context.Background(), kafka.AggregatePayrollRun, "r1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("e1", kafka.OutboxStatusFailed, "broker down").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "e1", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{
		ID:            "e1",
		Topic:         "t",
		AggregateType: kafka.AggregateEmployee,
		AggregateID:   "emp-1",
		Payload:       []byte("{}"),
		Status:        kafka.OutboxStatusPending,
	}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	tests := []struct {
		name   string
		mutate func(*kafka.OutboxEvent)
		msg    string
	}{
		{"missing id", func(e *kafka.OutboxEvent) { e.ID = "" }, "outbox id is required"},
		{"missing topic", func(e *kafka.OutboxEvent) { e.Topic = "" }, "outbox topic is required"},
		{"unknown aggregate", func(e *kafka.OutboxEvent) { e.AggregateType = "invoice" }, `unknown outbox aggregate: "invoice"`},
		{"missing aggregate id", func(e *kafka.OutboxEvent) { e.AggregateID = "" }, "outbox aggregate id is required"},
		{"empty payload", func(e *kafka.OutboxEvent) { e.Payload = nil }, "outbox payload is required"},
		{"bad status", func(e *kafka.OutboxEvent) { e.Status = "queued" }, "invalid outbox status: queued"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			assert.EqualError(t, kafka.ValidateOutboxEvent(e), tt.msg)
		})
	}
}
