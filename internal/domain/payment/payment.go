package payment

import (
	"fmt"
	"time"

	vo "paybridge/internal/domain/payment/valueobjects"
	"paybridge/internal/shared/biztime"
)

// Additional-information keys recorded on the payment. The key names are part
// of the stored data contract and match what merchants already see.
const (
	InfoKeyTransactionID  = "Transaction ID"
	InfoKeyCardType       = "Card Type"
	InfoKeyCardNumber     = "Card Number"
	InfoKeyCardExpiration = "Card Expiration Date"
	InfoKeyCurrency       = "Currency"
)

// CardDetails is the normalized card metadata taken from the gateway's
// authoritative transaction record.
type CardDetails struct {
	TransactionID string
	CardType      string
	MaskedPan     string
	Expiry        vo.CardExpiry
	Currency      string
}

// Payment is the single active payment of an order. It carries the
// transaction chain head (lastTransID/parentTransID) and the card metadata
// recorded during reconciliation.
type Payment struct {
	id      uint
	orderID uint

	lastTransID       *string
	parentTransID     *string
	transactionClosed bool

	cardType     string
	cardLast4    string
	cardExpMonth int
	cardExpYear  int

	additionalInformation map[string]interface{}

	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewPayment(orderID uint) (*Payment, error) {
	if orderID == 0 {
		return nil, fmt.Errorf("order ID is required")
	}

	now := biztime.NowUTC()
	return &Payment{
		orderID:               orderID,
		transactionClosed:     true,
		additionalInformation: make(map[string]interface{}),
		createdAt:             now,
		updatedAt:             now,
	}, nil
}

// HasTransaction reports whether an authorization has already been recorded.
func (p *Payment) HasTransaction() bool {
	return p.lastTransID != nil && *p.lastTransID != ""
}

// OpenTransaction marks the active transaction as still open for capture.
func (p *Payment) OpenTransaction() {
	p.transactionClosed = false
	p.updatedAt = biztime.NowUTC()
}

// CloseTransaction marks the active transaction as closed.
func (p *Payment) CloseTransaction() {
	p.transactionClosed = true
	p.updatedAt = biztime.NowUTC()
}

// BeginTransaction records txnID as the payment's active transaction and
// returns the previous active id as the new parent (nil when none existed).
// Recording the same id twice is refused; the id-to-record mapping is 1:1.
func (p *Payment) BeginTransaction(txnID string) (*string, error) {
	if txnID == "" {
		return nil, fmt.Errorf("transaction ID is required")
	}
	if p.lastTransID != nil && *p.lastTransID == txnID {
		return nil, fmt.Errorf("transaction %s is already recorded", txnID)
	}

	parent := p.lastTransID
	p.lastTransID = &txnID
	p.parentTransID = parent
	p.updatedAt = biztime.NowUTC()
	p.version++

	return parent, nil
}

// ApplyCardDetails stores the normalized card metadata as typed fields and as
// additional information.
func (p *Payment) ApplyCardDetails(details CardDetails) {
	p.cardType = details.CardType
	p.cardLast4 = details.MaskedPan
	if !details.Expiry.IsZero() {
		p.cardExpMonth = details.Expiry.Month()
		p.cardExpYear = details.Expiry.Year()
	}

	p.SetAdditionalInformation(InfoKeyTransactionID, details.TransactionID)
	p.SetAdditionalInformation(InfoKeyCardType, details.CardType)
	p.SetAdditionalInformation(InfoKeyCardNumber, details.MaskedPan)
	if !details.Expiry.IsZero() {
		p.SetAdditionalInformation(InfoKeyCardExpiration, details.Expiry.String())
	}
	p.SetAdditionalInformation(InfoKeyCurrency, details.Currency)
}

// SetAdditionalInformation sets a key-value pair on the payment.
func (p *Payment) SetAdditionalInformation(key string, value interface{}) {
	if p.additionalInformation == nil {
		p.additionalInformation = make(map[string]interface{})
	}
	p.additionalInformation[key] = value
	p.updatedAt = biztime.NowUTC()
}

// AdditionalInformationSnapshot returns a copy of the additional information,
// safe to persist as an immutable transaction detail record.
func (p *Payment) AdditionalInformationSnapshot() map[string]interface{} {
	snapshot := make(map[string]interface{}, len(p.additionalInformation))
	for k, v := range p.additionalInformation {
		snapshot[k] = v
	}
	return snapshot
}

// RefundReference returns the gateway reference a credit request must target:
// the parent transaction id when the chain has one, otherwise the active id,
// with the gateway's capture/refund suffixes stripped.
func (p *Payment) RefundReference() (string, error) {
	ref := p.parentTransID
	if ref == nil {
		ref = p.lastTransID
	}
	if ref == nil || *ref == "" {
		return "", fmt.Errorf("payment has no transaction to refund")
	}
	return vo.StripTransactionSuffixes(*ref), nil
}

func (p *Payment) ID() uint {
	return p.id
}

func (p *Payment) OrderID() uint {
	return p.orderID
}

func (p *Payment) LastTransID() *string {
	return p.lastTransID
}

func (p *Payment) ParentTransID() *string {
	return p.parentTransID
}

func (p *Payment) TransactionClosed() bool {
	return p.transactionClosed
}

func (p *Payment) CardType() string {
	return p.cardType
}

func (p *Payment) CardLast4() string {
	return p.cardLast4
}

func (p *Payment) CardExpMonth() int {
	return p.cardExpMonth
}

func (p *Payment) CardExpYear() int {
	return p.cardExpYear
}

func (p *Payment) AdditionalInformation() map[string]interface{} {
	return p.additionalInformation
}

func (p *Payment) Version() int {
	return p.version
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}

// SetID sets the payment ID after persistence (used by repository after Create)
func (p *Payment) SetID(id uint) {
	p.id = id
}

func ReconstructPayment(
	id, orderID uint,
	lastTransID, parentTransID *string,
	transactionClosed bool,
	cardType, cardLast4 string,
	cardExpMonth, cardExpYear int,
	additionalInformation map[string]interface{},
	version int,
	createdAt, updatedAt time.Time,
) *Payment {
	if additionalInformation == nil {
		additionalInformation = make(map[string]interface{})
	}
	return &Payment{
		id:                    id,
		orderID:               orderID,
		lastTransID:           lastTransID,
		parentTransID:         parentTransID,
		transactionClosed:     transactionClosed,
		cardType:              cardType,
		cardLast4:             cardLast4,
		cardExpMonth:          cardExpMonth,
		cardExpYear:           cardExpYear,
		additionalInformation: additionalInformation,
		version:               version,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}
