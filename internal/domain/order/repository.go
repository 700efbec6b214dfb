package order

import "context"

type Repository interface {
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	GetByIncrementID(ctx context.Context, incrementID string) (*Order, error)
	// GetByIncrementIDForUpdate loads the order with a row lock; it must be
	// called inside a transaction so concurrent callbacks serialize on the row.
	GetByIncrementIDForUpdate(ctx context.Context, incrementID string) (*Order, error)
}
