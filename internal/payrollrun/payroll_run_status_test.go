package payrollrun_test

import (
	"errors"
	"testing"
	"time"

	"go-payroll/internal/payrollrun"
	payrollrunerrors "go-payroll/internal/payrollrun/errors"
	"go-payroll/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []payrollrun.Status{
	payrollrun.StatusDraft,
	payrollrun.StatusReview,
	payrollrun.StatusApproved,
	payrollrun.StatusProcessed,
	payrollrun.StatusVoided,
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[payrollrun.Status][]payrollrun.Status{
		payrollrun.StatusDraft:     {payrollrun.StatusReview, payrollrun.StatusVoided},
		payrollrun.StatusReview:    {payrollrun.StatusDraft, payrollrun.StatusApproved, payrollrun.StatusVoided},
		payrollrun.StatusApproved:  {payrollrun.StatusProcessed, payrollrun.StatusVoided},
		payrollrun.StatusProcessed: {payrollrun.StatusVoided},
	}
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}

			run := &payrollrun.PayrollRun{Status: from, StatusChangedBy: "before@example.com"}
			err := run.TransitionTo(to, "owner@example.com", now)

			if want {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, run.Status)
				assert.Equal(t, "owner@example.com", run.StatusChangedBy)
				require.NotNil(t, run.StatusChangedAt)
				assert.True(t, run.StatusChangedAt.Equal(now))
				continue
			}

			require.Error(t, err, "%s -> %s", from, to)
			assert.True(t, errors.Is(err, payrollrunerrors.ErrInvalidTransition))
			assert.Equal(t, from, run.Status, "status must not change")
			assert.Equal(t, "before@example.com", run.StatusChangedBy)
			assert.Nil(t, run.StatusChangedAt)
		}
	}
}

func TestStatus_VoidedIsTerminal(t *testing.T) {
	assert.True(t, payrollrun.StatusVoided.IsTerminal())
	assert.Empty(t, payrollrun.StatusVoided.AllowedTransitions())
	for _, s := range allStatuses {
		assert.False(t, payrollrun.StatusVoided.CanTransitionTo(s))
	}
	assert.False(t, payrollrun.StatusVoided.CanTransitionTo("archived"))
}

func TestStatus_InvalidTransitionNamesBothStatuses(t *testing.T) {
	run := &payrollrun.PayrollRun{Status: payrollrun.StatusDraft}
	err := run.TransitionTo(payrollrun.StatusProcessed, "a@b.c", time.Now())

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeInvalidState, appErr.Code)
	assert.Equal(t, "Cannot transition payroll run from draft to processed", appErr.Message)
	details := appErr.Details.(map[string]any)
	assert.Equal(t, payrollrun.StatusDraft, details["from"])
	assert.Equal(t, payrollrun.StatusProcessed, details["to"])
}

func TestStatus_Editable(t *testing.T) {
	editable := map[payrollrun.Status]bool{
		payrollrun.StatusDraft:  true,
		payrollrun.StatusReview: true,
	}
	for _, s := range allStatuses {
		assert.Equal(t, editable[s], s.IsEditable(), string(s))
	}
}

func TestParseStatus(t *testing.T) {
	s, ok := payrollrun.ParseStatus(" Approved ")
	assert.True(t, ok)
	assert.Equal(t, payrollrun.StatusApproved, s)

	_, ok = payrollrun.ParseStatus("paid")
	assert.False(t, ok)
}
