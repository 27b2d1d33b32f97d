package bootstrap

import (
	"context"
	"time"

	"go-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through a zap logger named "audit".
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &StdoutAuditLogger{logger: l.Named("audit")}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	at := entry.OccurredAt
	if at.IsZero() {
		at = time.Now()
	}

	fields := []zap.Field{
		zap.String("timestamp", at.UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
	}
	md := contextutil.ExtractMetadata(ctx)
	if entry.Actor == "" {
		entry.Actor = md.Actor
	}
	if entry.Actor != "" {
		fields = append(fields, zap.String("actor", entry.Actor))
	}
	if md.UserID != "" {
		fields = append(fields, zap.String("user_id", md.UserID))
	}
	if entry.Resource != "" {
		fields = append(fields, zap.String("resource", entry.Resource), zap.String("resource_id", entry.ResourceID))
	}
	if md.RequestID != "" {
		fields = append(fields, zap.String("request_id", md.RequestID))
	}
	if len(entry.Meta) > 0 {
		fields = append(fields, zap.Any("meta", entry.Meta))
	}

	l.logger.Info("audit event", fields...)
}
