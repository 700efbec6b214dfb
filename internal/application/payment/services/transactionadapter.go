// Package services holds domain services of the payment context.
package services

import (
	"context"
	"fmt"

	"paybridge/internal/application/payment/gateway"
	"paybridge/internal/domain/order"
	ordervo "paybridge/internal/domain/order/valueobjects"
	"paybridge/internal/domain/payment"
	vo "paybridge/internal/domain/payment/valueobjects"
	"paybridge/internal/shared/logger"
)

// TransactionAdapter builds local transaction records and mediates all
// capture, cancel and refund operations against the gateway.
type TransactionAdapter struct {
	orderRepo   order.Repository
	paymentRepo payment.Repository
	txnRepo     payment.TransactionRepository
	client      gateway.Client
	logger      logger.Interface
}

func NewTransactionAdapter(
	orderRepo order.Repository,
	paymentRepo payment.Repository,
	txnRepo payment.TransactionRepository,
	client gateway.Client,
	logger logger.Interface,
) *TransactionAdapter {
	return &TransactionAdapter{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		txnRepo:     txnRepo,
		client:      client,
		logger:      logger,
	}
}

// CreateTransaction records txnID as the payment's active transaction,
// chaining the previous one as parent, and persists an immutable transaction
// record carrying the payment's additional-information snapshot.
func (a *TransactionAdapter) CreateTransaction(
	ctx context.Context,
	o *order.Order,
	p *payment.Payment,
	txnID string,
	txnType vo.TransactionType,
) (*payment.Transaction, error) {
	var comment string
	switch txnType {
	case vo.TransactionTypeAuth:
		comment = fmt.Sprintf("The authorized amount is %s.", o.TotalDue())
	case vo.TransactionTypeCapture:
		comment = fmt.Sprintf("The captured amount is %s.", o.TotalDue())
	}

	parent, err := p.BeginTransaction(txnID)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	txn, err := payment.NewTransaction(
		o.ID(), p.ID(), txnID, parent, txnType,
		p.AdditionalInformationSnapshot(), comment,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction record: %w", err)
	}

	if comment != "" {
		o.AddStatusHistory(comment)
	}

	if err := a.txnRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}
	if err := a.paymentRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	if err := a.orderRepo.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	a.logger.Infow("transaction recorded",
		"order_increment_id", o.IncrementID(),
		"txn_id", txnID,
		"txn_type", txnType.String(),
		"parent_txn_id", parent)

	return txn, nil
}

// Capture collects the given amount against the payment's active transaction.
// No local transaction record is created; the capture is tracked gateway side.
func (a *TransactionAdapter) Capture(ctx context.Context, o *order.Order, p *payment.Payment, amount float64) error {
	if !p.HasTransaction() {
		return fmt.Errorf("payment for order %s has no transaction to capture", o.IncrementID())
	}

	minor := ordervo.NewAmount(amount, o.Currency()).MinorUnits()

	if err := a.client.Capture(ctx, *p.LastTransID(), minor); err != nil {
		return fmt.Errorf("capture request failed: %w", err)
	}

	a.logger.Infow("payment captured",
		"order_increment_id", o.IncrementID(),
		"txn_id", *p.LastTransID(),
		"amount_minor", minor)

	return nil
}

// Cancel voids the payment's active transaction.
func (a *TransactionAdapter) Cancel(ctx context.Context, o *order.Order, p *payment.Payment) error {
	if !p.HasTransaction() {
		return fmt.Errorf("payment for order %s has no transaction to cancel", o.IncrementID())
	}

	if err := a.client.Cancel(ctx, *p.LastTransID()); err != nil {
		return fmt.Errorf("cancel request failed: %w", err)
	}

	a.logger.Infow("payment canceled",
		"order_increment_id", o.IncrementID(),
		"txn_id", *p.LastTransID())

	return nil
}

// Refund credits the given amount against the original gateway reference,
// recovered from the parent transaction id with its suffixes stripped.
func (a *TransactionAdapter) Refund(ctx context.Context, o *order.Order, p *payment.Payment, amount float64) error {
	ref, err := p.RefundReference()
	if err != nil {
		return fmt.Errorf("cannot refund order %s: %w", o.IncrementID(), err)
	}

	minor := ordervo.NewAmount(amount, o.Currency()).MinorUnits()

	if err := a.client.Credit(ctx, ref, minor); err != nil {
		return fmt.Errorf("credit request failed: %w", err)
	}

	a.logger.Infow("payment refunded",
		"order_increment_id", o.IncrementID(),
		"gateway_reference", ref,
		"amount_minor", minor)

	return nil
}
