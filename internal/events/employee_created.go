package events

import "time"

const (
	EmployeeCreatedTopic     = "payroll.employee.lifecycle.v1"
	EmployeeCreatedEventType = "employee_created"
)

type EmployeeCreatedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	EmployeeID     string    `json:"employee_id"`
	ClientID       string    `json:"client_id"`
	EmploymentType string    `json:"employment_type"`
	PayFrequency   string    `json:"pay_frequency"`
	OccurredAt     time.Time `json:"occurred_at"`
}
