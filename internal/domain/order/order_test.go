package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "paybridge/internal/domain/order/valueobjects"
)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("1000000123", vo.NewAmount(250.00, "DKK"), "customer@example.com")
	require.NoError(t, err)
	o.SetID(42)
	return o
}

func TestNewOrderValidation(t *testing.T) {
	_, err := NewOrder("", vo.NewAmount(10, "DKK"), "a@b.c")
	assert.Error(t, err)

	_, err = NewOrder("1000000001", vo.NewAmount(0, "DKK"), "a@b.c")
	assert.Error(t, err)
}

func TestMarkProcessing(t *testing.T) {
	o := newTestOrder(t)

	changed := o.MarkProcessing("payment_received")
	assert.True(t, changed)
	assert.Equal(t, vo.OrderStateProcessing, o.State())
	assert.Equal(t, "payment_received", o.Status())

	// A second transition is a no-op; the state never regresses.
	version := o.Version()
	changed = o.MarkProcessing("something_else")
	assert.False(t, changed)
	assert.Equal(t, "payment_received", o.Status())
	assert.Equal(t, version, o.Version())
}

func TestMatchesGatewayReference(t *testing.T) {
	o := newTestOrder(t)

	assert.True(t, o.MatchesGatewayReference("42"), "internal id should match")
	assert.True(t, o.MatchesGatewayReference("1000000123"), "increment id should match")
	assert.False(t, o.MatchesGatewayReference("43"))
	assert.False(t, o.MatchesGatewayReference("1000000124"))
	assert.False(t, o.MatchesGatewayReference(""))
}

func TestAddStatusHistory(t *testing.T) {
	o := newTestOrder(t)
	o.MarkProcessing("processing")
	o.AddStatusHistory("The authorized amount is 250.00 DKK.")

	history := o.StatusHistory()
	require.Len(t, history, 1)
	assert.Equal(t, "The authorized amount is 250.00 DKK.", history[0].Comment)
	assert.Equal(t, "processing", history[0].Status)
	assert.False(t, history[0].CreatedAt.IsZero())
}

func TestSetEmailSent(t *testing.T) {
	o := newTestOrder(t)
	assert.False(t, o.EmailSent())

	o.SetEmailSent()
	o.SetCustomerNotified(true)

	assert.True(t, o.EmailSent())
	assert.True(t, o.CustomerNotified())
}
