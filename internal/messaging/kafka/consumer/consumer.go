package consumer

import (
	"context"
	"encoding/json"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/events"
	"go-payroll/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Reader is the part of *kafkago.Reader the consumers use. Offsets are
// committed explicitly after a message is handled.
type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumePayrollRunStatus copies every payroll run status change into the
// audit trail. It returns when ctx is cancelled.
func ConsumePayrollRunStatus(
	ctx context.Context,
	reader Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_run_status")
	log.Info("payroll run status consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll run status consumer stopped")
				return
			}
			log.Error("fetch payroll run status message failed", zap.Error(err))
			continue
		}

		var event events.PayrollRunStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll run status event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		if event.EventType != events.PayrollRunStatusChangedEventType {
			log.Warn("unexpected event type on payroll run status topic, skipping",
				zap.String("event_type", event.EventType),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(contextutil.WithRequestID(ctx, event.RequestID), bootstrap.AuditLog{
			Action:     "payroll_run.status_changed",
			Actor:      event.ChangedBy,
			Resource:   "payroll_run",
			ResourceID: event.PayrollRunID,
			Message:    "Payroll run moved from " + event.From + " to " + event.To,
			OccurredAt: event.OccurredAt,
			Meta: map[string]any{
				"client_id":   event.ClientID,
				"from":        event.From,
				"to":          event.To,
				"total_gross": event.TotalGross,
				"total_net":   event.TotalNet,
				"entry_count": event.EntryCount,
				"partition":   msg.Partition,
				"offset":      msg.Offset,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll run status message failed", zap.Error(err))
			continue
		}
	}
}
