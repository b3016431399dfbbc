package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderPending, OrderAccepted, true},
		{OrderPending, OrderRejected, true},
		{OrderPending, OrderCompleted, false},
		{OrderAccepted, OrderCompleted, true},
		{OrderAccepted, OrderRejected, false},
		{OrderAccepted, OrderPending, false},
		{OrderRejected, OrderAccepted, false},
		{OrderRejected, OrderCompleted, false},
		{OrderCompleted, OrderAccepted, false},
		{OrderCompleted, OrderPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderPending.IsValid())
	assert.True(t, OrderCompleted.IsValid())
	assert.False(t, OrderStatus("shipped").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
