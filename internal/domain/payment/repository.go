package payment

import "context"

type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	Update(ctx context.Context, payment *Payment) error
	GetByOrderID(ctx context.Context, orderID uint) (*Payment, error)
}

// TransactionRepository persists the append-only transaction history.
// There is no update operation; transactions are immutable once written.
type TransactionRepository interface {
	Create(ctx context.Context, txn *Transaction) error
	GetByTxnID(ctx context.Context, txnID string) (*Transaction, error)
	ListByOrderID(ctx context.Context, orderID uint) ([]*Transaction, error)
}
