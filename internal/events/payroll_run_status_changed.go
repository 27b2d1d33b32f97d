package events

import "time"

const (
	PayrollRunStatusTopic            = "payroll.run.status.v1"
	PayrollRunStatusChangedEventType = "payroll_run_status_changed"
)

// PayrollRunStatusChangedEvent is queued in the same transaction as the
// transition it describes.
type PayrollRunStatusChangedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	PayrollRunID string    `json:"payroll_run_id"`
	ClientID     string    `json:"client_id"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	ChangedBy    string    `json:"changed_by"`
	TotalGross   string    `json:"total_gross"`
	TotalNet     string    `json:"total_net"`
	EntryCount   int       `json:"entry_count"`
	OccurredAt   time.Time `json:"occurred_at"`
}
