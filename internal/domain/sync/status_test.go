package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusFromCode(t *testing.T) {
	t.Run("maps known codes", func(t *testing.T) {
		assert.Equal(t, OrderStatusNew, OrderStatusFromCode(0))
		assert.Equal(t, OrderStatusPaid, OrderStatusFromCode(2))
		assert.Equal(t, OrderStatusShipped, OrderStatusFromCode(6))
		assert.Equal(t, OrderStatusArchived, OrderStatusFromCode(17))
	})

	t.Run("unknown codes fall back to unrecognized", func(t *testing.T) {
		for _, code := range []int{-5, 18, 99, 1000} {
			status := OrderStatusFromCode(code)
			assert.Equal(t, OrderStatusUnrecognized, status)
			assert.False(t, status.IsValid())
		}
	})
}

func TestOrderStatus_String(t *testing.T) {
	assert.Equal(t, "NEW", OrderStatusNew.String())
	assert.Equal(t, "AWAITING_PAYMENT", OrderStatusAwaitingPayment.String())
	assert.Equal(t, "CANCEL_REQUESTED", OrderStatusCancelRequested.String())
	assert.Equal(t, "UNRECOGNIZED", OrderStatusUnrecognized.String())
}

func TestOrderStatus_DisplayName(t *testing.T) {
	assert.Equal(t, "Awaiting payment", OrderStatusAwaitingPayment.DisplayName())
	assert.Equal(t, "Ready to ship", OrderStatusReadyToShip.DisplayName())
	assert.Equal(t, "Unrecognized (-1)", OrderStatusUnrecognized.DisplayName())
}

func TestOrderStatus_IsFinal(t *testing.T) {
	finals := []OrderStatus{
		OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded,
		OrderStatusReturned, OrderStatusArchived,
	}
	for _, s := range finals {
		assert.True(t, s.IsFinal(), s.String())
	}

	nonFinals := []OrderStatus{
		OrderStatusNew, OrderStatusPaid, OrderStatusShipped,
		OrderStatusOnHold, OrderStatusUnrecognized,
	}
	for _, s := range nonFinals {
		assert.False(t, s.IsFinal(), s.String())
	}
}

func TestOrderStatus_Code(t *testing.T) {
	assert.Equal(t, 0, OrderStatusNew.Code())
	assert.Equal(t, 9, OrderStatusCompleted.Code())
	assert.Equal(t, -1, OrderStatusUnrecognized.Code())
}
