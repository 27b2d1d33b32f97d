package bootstrap

import (
	"context"
	"time"
)

// AuditLog is one entry of the payroll audit trail.
type AuditLog struct {
	Action     string
	Actor      string
	Resource   string
	ResourceID string
	Message    string
	OccurredAt time.Time
	Meta       map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
