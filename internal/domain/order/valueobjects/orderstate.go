package valueobjects

import "fmt"

type OrderState string

const (
	OrderStateNew            OrderState = "new"
	OrderStatePendingPayment OrderState = "pending_payment"
	OrderStateProcessing     OrderState = "processing"
	OrderStateComplete       OrderState = "complete"
	OrderStateCanceled       OrderState = "canceled"
)

func NewOrderState(value string) (OrderState, error) {
	state := OrderState(value)
	if !state.IsValid() {
		return "", fmt.Errorf("unknown order state: %s", value)
	}
	return state, nil
}

func (s OrderState) IsValid() bool {
	switch s {
	case OrderStateNew, OrderStatePendingPayment, OrderStateProcessing, OrderStateComplete, OrderStateCanceled:
		return true
	default:
		return false
	}
}

func (s OrderState) IsProcessing() bool {
	return s == OrderStateProcessing
}

func (s OrderState) String() string {
	return string(s)
}

// StateStatusTable resolves the default order status for a lifecycle state.
// Unconfigured states fall back to the state name itself.
type StateStatusTable map[OrderState]string

func NewStateStatusTable(overrides map[string]string) StateStatusTable {
	table := make(StateStatusTable, len(overrides))
	for state, status := range overrides {
		table[OrderState(state)] = status
	}
	return table
}

func (t StateStatusTable) StatusFor(state OrderState) string {
	if status, ok := t[state]; ok && status != "" {
		return status
	}
	return string(state)
}
