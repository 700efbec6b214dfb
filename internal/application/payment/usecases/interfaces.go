package usecases

import (
	"context"

	"paybridge/internal/domain/order"
)

// ConfirmationSender delivers the order confirmation email. Send failures are
// recorded on the order history but never fail the flow that triggered them.
type ConfirmationSender interface {
	SendOrderConfirmation(ctx context.Context, o *order.Order) error
}

// OrderLocker serializes work per order across processes. Lock returns a
// release function; callers must call it when the critical section ends.
type OrderLocker interface {
	Lock(ctx context.Context, incrementID string) (release func(), err error)
}

// TxManager runs a function inside a database transaction. The shared db
// package provides the gorm-backed implementation.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
