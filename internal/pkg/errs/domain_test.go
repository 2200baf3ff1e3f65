package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedActor string

func (a namedActor) String() string { return string(a) }

func TestInvalidTransitionError(t *testing.T) {
	t.Run("order transition", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("order", "APPROVED", "AWAITING_APPROVAL")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.NotErrorIs(t, err, errs.ErrInvalidStageTransition)
		assert.Equal(t, "invalid transition: order cannot move from APPROVED to AWAITING_APPROVAL", err.Error())
	})

	t.Run("stage transition", func(t *testing.T) {
		err := errs.NewInvalidStageTransitionError("COMPLETED", "PENDING")

		require.ErrorIs(t, err, errs.ErrInvalidStageTransition)
		assert.Equal(t, "stage", err.Subject)
	})

	t.Run("wrapped error keeps its kind", func(t *testing.T) {
		err := fmt.Errorf("transition order 7: %w", errs.NewInvalidTransitionError("order", "DRAFT", "DRAFT"))

		var target *errs.InvalidTransitionError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "DRAFT", target.From)
	})
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError(namedActor("REQUESTER#4"), "approve order 9")

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, "unauthorized: REQUESTER#4 may not approve order 9", err.Error())
}

func TestRuleViolationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"invalid service offering", errs.NewInvalidServiceOfferingError("no active offering"), errs.ErrInvalidServiceOffering},
		{"policy mismatch", errs.NewPolicyMismatchError("SELF_ONLY forbids delegation"), errs.ErrPolicyMismatch},
		{"outsourcing already active", errs.NewOutsourcingAlreadyActiveError(3), errs.ErrOutsourcingAlreadyActive},
		{"invalid order state", errs.NewInvalidOrderStateError("order is DRAFT"), errs.ErrInvalidOrderState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.kind)
			assert.False(t, errs.IsRetryable(tt.err))
		})
	}

	assert.Equal(t,
		"outsourcing already active: order 3 already has an active outsourcing request",
		errs.NewOutsourcingAlreadyActiveError(3).Error())
}

func TestContentionError(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	err := errs.NewContentionError("order:12", cause)

	require.ErrorIs(t, err, errs.ErrContention)
	assert.True(t, errs.IsRetryable(err))
	assert.True(t, errs.IsRetryable(fmt.Errorf("lock: %w", err)))
	assert.Equal(t, "resource is busy: order:12 (cause: context deadline exceeded)", err.Error())
}
