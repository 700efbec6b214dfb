package payment

import (
	"fmt"
	"time"

	vo "paybridge/internal/domain/payment/valueobjects"
	"paybridge/internal/shared/biztime"
)

// Transaction is an immutable record of an auth, capture or refund event.
// Records are append-only and chain to each other through the parent id.
type Transaction struct {
	txnID       string
	parentTxnID *string
	paymentID   uint
	orderID     uint
	txnType     vo.TransactionType
	rawDetails  map[string]interface{}
	comment     string
	createdAt   time.Time
}

func NewTransaction(
	orderID, paymentID uint,
	txnID string,
	parentTxnID *string,
	txnType vo.TransactionType,
	rawDetails map[string]interface{},
	comment string,
) (*Transaction, error) {
	if orderID == 0 {
		return nil, fmt.Errorf("order ID is required")
	}
	if paymentID == 0 {
		return nil, fmt.Errorf("payment ID is required")
	}
	if txnID == "" {
		return nil, fmt.Errorf("transaction ID is required")
	}
	if !txnType.IsValid() {
		return nil, fmt.Errorf("invalid transaction type %q", txnType)
	}

	return &Transaction{
		txnID:       txnID,
		parentTxnID: parentTxnID,
		paymentID:   paymentID,
		orderID:     orderID,
		txnType:     txnType,
		rawDetails:  rawDetails,
		comment:     comment,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func (t *Transaction) TxnID() string {
	return t.txnID
}

func (t *Transaction) ParentTxnID() *string {
	return t.parentTxnID
}

func (t *Transaction) PaymentID() uint {
	return t.paymentID
}

func (t *Transaction) OrderID() uint {
	return t.orderID
}

func (t *Transaction) Type() vo.TransactionType {
	return t.txnType
}

func (t *Transaction) RawDetails() map[string]interface{} {
	return t.rawDetails
}

func (t *Transaction) Comment() string {
	return t.comment
}

func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

func ReconstructTransaction(
	txnID string,
	parentTxnID *string,
	paymentID, orderID uint,
	txnType vo.TransactionType,
	rawDetails map[string]interface{},
	comment string,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		txnID:       txnID,
		parentTxnID: parentTxnID,
		paymentID:   paymentID,
		orderID:     orderID,
		txnType:     txnType,
		rawDetails:  rawDetails,
		comment:     comment,
		createdAt:   createdAt,
	}
}
