package order_test

import (
	"testing"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept every defined status", func(t *testing.T) {
		statuses := []order.Status{
			order.Quote, order.Transit, order.Prep, order.PendingVerify,
			order.Verified, order.RejectedVerify, order.Packed, order.Dispatched,
			order.PendingInvoice, order.Delivered, order.Returned,
			order.Production, order.Embroidery, order.Dropship,
			order.Purchase, order.Cancelled,
		}
		for _, s := range statuses {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(99).Validate()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return persisted names", func(t *testing.T) {
		assert.Equal(t, "QUOTE", order.Quote.String())
		assert.Equal(t, "DISPATCHED", order.Dispatched.String())
		assert.Equal(t, "PENDING_VERIFY", order.PendingVerify.String())
		assert.Equal(t, "REJECTED_VERIFY", order.RejectedVerify.String())
	})

	t.Run("should return UNKNOWN for invalid values", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.Unknown.String())
		assert.Equal(t, "UNKNOWN", order.Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		statuses := []order.Status{
			order.Quote, order.Transit, order.Prep, order.PendingVerify,
			order.Verified, order.RejectedVerify, order.Packed, order.Dispatched,
			order.PendingInvoice, order.Delivered, order.Returned,
			order.Production, order.Embroidery, order.Dropship,
			order.Purchase, order.Cancelled,
		}
		for _, s := range statuses {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err, s.String())
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown name", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject UNKNOWN name", func(t *testing.T) {
		_, err := order.StatusFromString("UNKNOWN")
		require.Error(t, err)
	})
}

func TestStatus_Dispatch(t *testing.T) {
	t.Run("should dispatch from any non-dispatched status", func(t *testing.T) {
		statuses := []order.Status{
			order.Quote, order.Prep, order.Verified, order.Packed,
			order.Cancelled, order.Returned,
		}
		for _, s := range statuses {
			next, err := s.Dispatch()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Dispatched, next)
		}
	})

	t.Run("should reject dispatching an already dispatched order", func(t *testing.T) {
		_, err := order.Dispatched.Dispatch()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrAlreadyDispatched)
	})

	t.Run("should reject dispatching an invalid status", func(t *testing.T) {
		_, err := order.Unknown.Dispatch()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
