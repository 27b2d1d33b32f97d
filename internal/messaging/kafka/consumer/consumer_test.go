package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReader hands out queued messages, then cancels the consumer's context.
type fakeReader struct {
	queue     []kafkago.Message
	fetchErrs []error
	cancel    context.CancelFunc
	committed []int64
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.fetchErrs) > 0 {
		err := f.fetchErrs[0]
		f.fetchErrs = f.fetchErrs[1:]
		return kafkago.Message{}, err
	}
	if len(f.queue) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := f.queue[0]
	f.queue = f.queue[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

type recordingAudit struct {
	entries    []bootstrap.AuditLog
	requestIDs []string
}

func (r *recordingAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
	r.requestIDs = append(r.requestIDs, contextutil.GetRequestID(ctx))
}

func message(t *testing.T, offset int64, v any) kafkago.Message {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: raw}
}

func TestConsumePayrollRunStatus(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	reader := &fakeReader{
		cancel:    cancel,
		fetchErrs: []error{errors.New("rebalance in progress")},
		queue: []kafkago.Message{
			{Offset: 1, Value: []byte("not json")},
			message(t, 2, events.PayrollRunStatusChangedEvent{EventType: "something_else"}),
			message(t, 3, events.PayrollRunStatusChangedEvent{
				EventType:    events.PayrollRunStatusChangedEventType,
				RequestID:    "req-9",
				PayrollRunID: "run-1",
				ClientID:     "client-1",
				From:         "approved",
				To:           "processed",
				ChangedBy:    "owner@example.com",
				TotalGross:   "3900.00",
				TotalNet:     "3100.00",
				EntryCount:   2,
				OccurredAt:   at,
			}),
		},
	}
	audit := &recordingAudit{}

	consumer.ConsumePayrollRunStatus(ctx, reader, audit, zap.NewNop())

	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
	require.Len(t, audit.entries, 1)
	entry := audit.entries[0]
	assert.Equal(t, "payroll_run.status_changed", entry.Action)
	assert.Equal(t, "owner@example.com", entry.Actor)
	assert.Equal(t, "run-1", entry.ResourceID)
	assert.Equal(t, "Payroll run moved from approved to processed", entry.Message)
	assert.Equal(t, at, entry.OccurredAt)
	assert.Equal(t, "3900.00", entry.Meta["total_gross"])
	assert.Equal(t, []string{"req-9"}, audit.requestIDs)
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		queue: []kafkago.Message{
			message(t, 7, events.EmployeeCreatedEvent{
				EventType:      events.EmployeeCreatedEventType,
				EmployeeID:     "emp-1",
				ClientID:       "client-1",
				EmploymentType: "w2",
				PayFrequency:   "biweekly",
			}),
		},
	}
	audit := &recordingAudit{}

	consumer.ConsumeEmployeeLifecycle(ctx, reader, audit, zap.NewNop())

	assert.Equal(t, []int64{7}, reader.committed)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "employee.created", audit.entries[0].Action)
	assert.Equal(t, "biweekly", audit.entries[0].Meta["pay_frequency"])
}
