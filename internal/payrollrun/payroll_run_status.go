package payrollrun

import (
	"strings"

	"go-payroll/internal/rbac"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusReview    Status = "review"
	StatusApproved  Status = "approved"
	StatusProcessed Status = "processed"
	StatusVoided    Status = "voided"
)

// transitions is the complete workflow. A status missing from the map has no
// outgoing edges.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusReview, StatusVoided},
	StatusReview:    {StatusDraft, StatusApproved, StatusVoided},
	StatusApproved:  {StatusProcessed, StatusVoided},
	StatusProcessed: {StatusVoided},
	StatusVoided:    nil,
}

func ParseStatus(v string) (Status, bool) {
	s := Status(strings.ToLower(strings.TrimSpace(v)))
	_, ok := transitions[s]
	return s, ok
}

func (s Status) AllowedTransitions() []Status {
	out := make([]Status, len(transitions[s]))
	copy(out, transitions[s])
	return out
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// IsEditable reports whether entries and run fields may change.
func (s Status) IsEditable() bool {
	return s == StatusDraft || s == StatusReview
}

func (s Status) Display() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusReview:
		return "In Review"
	case StatusApproved:
		return "Approved"
	case StatusProcessed:
		return "Processed"
	case StatusVoided:
		return "Voided"
	default:
		return "Unknown"
	}
}

// Action is the permission a caller needs to move a run into s.
func (s Status) Action() string {
	switch s {
	case StatusReview:
		return rbac.ActionSubmit
	case StatusApproved:
		return rbac.ActionApprove
	case StatusProcessed:
		return rbac.ActionProcess
	case StatusVoided:
		return rbac.ActionVoid
	default:
		return rbac.ActionUpdate
	}
}
