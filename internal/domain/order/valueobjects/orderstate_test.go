package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderState(t *testing.T) {
	state, err := NewOrderState("pending_payment")
	require.NoError(t, err)
	assert.Equal(t, OrderStatePendingPayment, state)

	_, err = NewOrderState("shipped")
	assert.Error(t, err)
}

func TestOrderStateIsProcessing(t *testing.T) {
	assert.True(t, OrderStateProcessing.IsProcessing())
	assert.False(t, OrderStatePendingPayment.IsProcessing())
	assert.False(t, OrderStateComplete.IsProcessing())
}

func TestStateStatusTable(t *testing.T) {
	table := NewStateStatusTable(map[string]string{
		"processing": "payment_received",
	})

	assert.Equal(t, "payment_received", table.StatusFor(OrderStateProcessing))
	// Unconfigured states fall back to the state name.
	assert.Equal(t, "canceled", table.StatusFor(OrderStateCanceled))
}

func TestStateStatusTableEmptyOverride(t *testing.T) {
	table := NewStateStatusTable(map[string]string{"processing": ""})
	assert.Equal(t, "processing", table.StatusFor(OrderStateProcessing))
}
