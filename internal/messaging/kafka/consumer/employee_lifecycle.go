package consumer

import (
	"context"
	"encoding/json"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/events"
	"go-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle records employee_created events in the audit
// trail.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		if event.EventType != events.EmployeeCreatedEventType {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(contextutil.WithRequestID(ctx, event.RequestID), bootstrap.AuditLog{
			Action:     "employee.created",
			Resource:   "employee",
			ResourceID: event.EmployeeID,
			Message:    "Employee added to payroll",
			OccurredAt: event.OccurredAt,
			Meta: map[string]any{
				"client_id":       event.ClientID,
				"employment_type": event.EmploymentType,
				"pay_frequency":   event.PayFrequency,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("employee_created event audited",
			zap.String("employee_id", event.EmployeeID),
			zap.String("client_id", event.ClientID),
		)
	}
}
