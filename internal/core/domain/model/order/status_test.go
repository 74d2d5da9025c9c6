package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		statuses := []order.Status{
			order.PendingPayment,
			order.ToBeConfirmed,
			order.Confirmed,
			order.DeliveryInProgress,
			order.Completed,
			order.Cancelled,
		}

		for _, s := range statuses {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject Unknown", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		require.Error(t, order.Status(-1).Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.PendingPayment, "PendingPayment"},
		{order.ToBeConfirmed, "ToBeConfirmed"},
		{order.Confirmed, "Confirmed"},
		{order.DeliveryInProgress, "DeliveryInProgress"},
		{order.Completed, "Completed"},
		{order.Cancelled, "Cancelled"},
		{order.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report Completed and Cancelled as terminal", func(t *testing.T) {
		assert.True(t, order.Completed.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("should report active statuses as non-terminal", func(t *testing.T) {
		assert.False(t, order.PendingPayment.IsTerminal())
		assert.False(t, order.ToBeConfirmed.IsTerminal())
		assert.False(t, order.Confirmed.IsTerminal())
		assert.False(t, order.DeliveryInProgress.IsTerminal())
	})
}

func TestStatus_Pay(t *testing.T) {
	t.Run("should move PendingPayment to ToBeConfirmed", func(t *testing.T) {
		next, err := order.PendingPayment.Pay()

		require.NoError(t, err)
		assert.Equal(t, order.ToBeConfirmed, next)
	})

	t.Run("should fail from any other status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.ToBeConfirmed, order.Confirmed, order.DeliveryInProgress,
			order.Completed, order.Cancelled,
		} {
			next, err := s.Pay()

			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
			assert.Contains(t, err.Error(), "cannot pay an order in status "+s.String())
			assert.Equal(t, order.Unknown, next)
		}
	})
}

func TestStatus_Confirm(t *testing.T) {
	t.Run("should move ToBeConfirmed to Confirmed", func(t *testing.T) {
		next, err := order.ToBeConfirmed.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next)
	})

	t.Run("should fail from PendingPayment", func(t *testing.T) {
		_, err := order.PendingPayment.Confirm()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Contains(t, err.Error(), "cannot confirm an order in status PendingPayment")
	})

	t.Run("should fail from terminal statuses", func(t *testing.T) {
		_, err := order.Completed.Confirm()
		require.Error(t, err)

		_, err = order.Cancelled.Confirm()
		require.Error(t, err)
	})
}

func TestStatus_Reject(t *testing.T) {
	t.Run("should move ToBeConfirmed to Cancelled", func(t *testing.T) {
		next, err := order.ToBeConfirmed.Reject()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("should fail from statuses past confirmation", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingPayment, order.Confirmed, order.DeliveryInProgress,
			order.Completed, order.Cancelled,
		} {
			_, err := s.Reject()

			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		}
	})
}

func TestStatus_CancelByUser(t *testing.T) {
	t.Run("should cancel from PendingPayment", func(t *testing.T) {
		next, err := order.PendingPayment.CancelByUser()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("should cancel from ToBeConfirmed", func(t *testing.T) {
		next, err := order.ToBeConfirmed.CancelByUser()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("should fail once the merchant accepted", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Confirmed, order.DeliveryInProgress,
			order.Completed, order.Cancelled,
		} {
			_, err := s.CancelByUser()

			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
			assert.Contains(t, err.Error(), "cannot cancel an order in status "+s.String())
		}
	})
}

func TestStatus_CancelByMerchant(t *testing.T) {
	t.Run("should cancel from any active status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingPayment, order.ToBeConfirmed,
			order.Confirmed, order.DeliveryInProgress,
		} {
			next, err := s.CancelByMerchant()

			require.NoError(t, err, s.String())
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("should fail from terminal statuses", func(t *testing.T) {
		_, err := order.Completed.CancelByMerchant()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)

		_, err = order.Cancelled.CancelByMerchant()
		require.Error(t, err)
	})

	t.Run("should fail for undefined status values", func(t *testing.T) {
		_, err := order.Unknown.CancelByMerchant()
		require.Error(t, err)
	})
}

func TestStatus_Dispatch(t *testing.T) {
	t.Run("should move Confirmed to DeliveryInProgress", func(t *testing.T) {
		next, err := order.Confirmed.Dispatch()

		require.NoError(t, err)
		assert.Equal(t, order.DeliveryInProgress, next)
	})

	t.Run("should fail from any other status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingPayment, order.ToBeConfirmed, order.DeliveryInProgress,
			order.Completed, order.Cancelled,
		} {
			_, err := s.Dispatch()

			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should move DeliveryInProgress to Completed", func(t *testing.T) {
		next, err := order.DeliveryInProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, next)
	})

	t.Run("should fail from any other status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingPayment, order.ToBeConfirmed, order.Confirmed,
			order.Completed, order.Cancelled,
		} {
			_, err := s.Complete()

			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
			assert.Contains(t, err.Error(), "cannot complete an order in status "+s.String())
		}
	})
}
