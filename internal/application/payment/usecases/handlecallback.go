package usecases

import (
	"context"
	"fmt"
	"net/url"

	"paybridge/internal/application/payment/gateway"
	"paybridge/internal/application/payment/services"
	"paybridge/internal/domain/order"
	ordervo "paybridge/internal/domain/order/valueobjects"
	"paybridge/internal/domain/payment"
	vo "paybridge/internal/domain/payment/valueobjects"
	apperrors "paybridge/internal/shared/errors"
	"paybridge/internal/shared/logger"
)

// CallbackOutcome classifies how a gateway callback was handled.
type CallbackOutcome string

const (
	// OutcomeAccepted means the callback was applied and the order moved to
	// processing. Only this outcome is acknowledged to the gateway.
	OutcomeAccepted CallbackOutcome = "accepted"
	// OutcomeIgnored means the callback referenced an unknown order or hit an
	// idempotency gate; nothing changed and nothing needs to.
	OutcomeIgnored CallbackOutcome = "ignored"
	// OutcomeRejected means the callback was malformed or failed the
	// authenticity check; nothing changed.
	OutcomeRejected CallbackOutcome = "rejected"
	// OutcomeFailed means a transient error prevented processing; the gateway
	// should redeliver.
	OutcomeFailed CallbackOutcome = "failed"
)

type CallbackResult struct {
	Outcome CallbackOutcome
	Reason  string
}

// Acknowledged reports whether the gateway should be told to stop redelivery.
func (r *CallbackResult) Acknowledged() bool {
	return r.Outcome == OutcomeAccepted
}

// Retryable reports whether the gateway should redeliver the callback.
func (r *CallbackResult) Retryable() bool {
	return r.Outcome == OutcomeFailed
}

type HandleCallbackCommand struct {
	OrderIncrementID string
	RawBody          string
}

// HandleCallbackUseCase reconciles an asynchronous gateway notification with
// the order and payment records. It never returns an error: every failure
// mode degrades to a CallbackResult so the HTTP boundary can answer the
// gateway without leaking exceptions past the handler.
type HandleCallbackUseCase struct {
	orderRepo    order.Repository
	paymentRepo  payment.Repository
	adapter      *services.TransactionAdapter
	client       gateway.Client
	confirmation ConfirmationSender
	locker       OrderLocker
	txManager    TxManager
	statusTable  ordervo.StateStatusTable
	logger       logger.Interface
}

func NewHandleCallbackUseCase(
	orderRepo order.Repository,
	paymentRepo payment.Repository,
	adapter *services.TransactionAdapter,
	client gateway.Client,
	confirmation ConfirmationSender,
	locker OrderLocker,
	txManager TxManager,
	statusTable ordervo.StateStatusTable,
	logger logger.Interface,
) *HandleCallbackUseCase {
	return &HandleCallbackUseCase{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		adapter:      adapter,
		client:       client,
		confirmation: confirmation,
		locker:       locker,
		txManager:    txManager,
		statusTable:  statusTable,
		logger:       logger,
	}
}

func (uc *HandleCallbackUseCase) Execute(ctx context.Context, cmd HandleCallbackCommand) *CallbackResult {
	values, err := url.ParseQuery(cmd.RawBody)
	if err != nil {
		uc.logger.Warnw("malformed callback body", "order_increment_id", cmd.OrderIncrementID, "error", err)
		return &CallbackResult{Outcome: OutcomeRejected, Reason: "malformed callback body"}
	}

	txnID := values.Get("authorizationIdentifier")
	if txnID == "" {
		uc.logger.Warnw("callback without authorization identifier", "order_increment_id", cmd.OrderIncrementID)
		return &CallbackResult{Outcome: OutcomeRejected, Reason: "missing authorizationIdentifier"}
	}

	if cmd.OrderIncrementID == "" {
		// Callbacks that cannot name an order are expected noise, handled
		// the same as callbacks for unknown orders.
		uc.logger.Debugw("callback without order reference", "txn_id", txnID)
		return &CallbackResult{Outcome: OutcomeIgnored, Reason: "missing order reference"}
	}

	release, err := uc.locker.Lock(ctx, cmd.OrderIncrementID)
	if err != nil {
		uc.logger.Errorw("failed to acquire order lock",
			"order_increment_id", cmd.OrderIncrementID, "error", err)
		return &CallbackResult{Outcome: OutcomeFailed, Reason: "order lock unavailable"}
	}
	defer release()

	result := &CallbackResult{Outcome: OutcomeAccepted}
	var reconciled *order.Order

	txErr := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		o, err := uc.orderRepo.GetByIncrementIDForUpdate(ctx, cmd.OrderIncrementID)
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				// Duplicate or stray callbacks for unknown orders are
				// expected; not an alarm condition.
				uc.logger.Debugw("callback for unknown order", "order_increment_id", cmd.OrderIncrementID)
				result = &CallbackResult{Outcome: OutcomeIgnored, Reason: "order not found"}
				return nil
			}
			return fmt.Errorf("failed to load order: %w", err)
		}

		if o.State().IsProcessing() {
			result = &CallbackResult{Outcome: OutcomeIgnored, Reason: "order already processing"}
			return nil
		}

		p, err := uc.paymentRepo.GetByOrderID(ctx, o.ID())
		if err != nil {
			return fmt.Errorf("failed to load payment: %w", err)
		}

		if p.HasTransaction() {
			result = &CallbackResult{Outcome: OutcomeIgnored, Reason: "payment already has a transaction"}
			return nil
		}

		info, err := uc.client.GetTransaction(ctx, txnID)
		if err != nil {
			return fmt.Errorf("failed to fetch gateway transaction %s: %w", txnID, err)
		}

		uc.logger.Debugw("verifying gateway transaction",
			"txn_id", txnID,
			"gateway_order_id", info.OrderID,
			"order_id", o.ID(),
			"order_increment_id", o.IncrementID())

		if !o.MatchesGatewayReference(info.OrderID) {
			uc.logger.Warnw("gateway order id mismatch",
				"txn_id", txnID,
				"gateway_order_id", info.OrderID,
				"order_increment_id", o.IncrementID())
			result = &CallbackResult{Outcome: OutcomeRejected, Reason: "order id mismatch"}
			return nil
		}

		details := payment.CardDetails{
			TransactionID: txnID,
			CardType:      vo.CardTypeFromCode(info.CardType),
			MaskedPan:     info.MaskedPan,
			Currency:      info.Currency,
		}
		expiry, err := vo.ParseCardExpiry(info.CardExpiryDate)
		if err != nil {
			uc.logger.Warnw("unparsable card expiry from gateway",
				"txn_id", txnID, "expiry", info.CardExpiryDate, "error", err)
		} else {
			details.Expiry = expiry
		}
		p.ApplyCardDetails(details)
		p.OpenTransaction()

		o.MarkProcessing(uc.statusTable.StatusFor(ordervo.OrderStateProcessing))

		if _, err := uc.adapter.CreateTransaction(ctx, o, p, txnID, vo.TransactionTypeAuth); err != nil {
			return fmt.Errorf("failed to record auth transaction: %w", err)
		}

		reconciled = o
		return nil
	})

	if txErr != nil {
		uc.logger.Errorw("callback reconciliation failed",
			"order_increment_id", cmd.OrderIncrementID,
			"txn_id", txnID,
			"error", txErr)
		return &CallbackResult{Outcome: OutcomeFailed, Reason: txErr.Error()}
	}

	if result.Outcome != OutcomeAccepted {
		return result
	}

	uc.logger.Infow("callback reconciled",
		"order_increment_id", cmd.OrderIncrementID,
		"txn_id", txnID)

	if !reconciled.EmailSent() {
		uc.sendOrderConfirmation(ctx, reconciled)
	}

	return result
}

// sendOrderConfirmation attempts the confirmation email exactly once and
// records the outcome as order history. A failed send never fails the
// callback; the history comment is the audit trail.
func (uc *HandleCallbackUseCase) sendOrderConfirmation(ctx context.Context, o *order.Order) {
	if err := uc.confirmation.SendOrderConfirmation(ctx, o); err != nil {
		uc.logger.Warnw("failed to send order confirmation",
			"order_increment_id", o.IncrementID(), "error", err)
		o.AddStatusHistory(fmt.Sprintf("Failed to send order confirmation email: %s", err))
		o.SetCustomerNotified(false)
	} else {
		o.AddStatusHistory("Order confirmation email sent to customer")
		o.SetEmailSent()
		o.SetCustomerNotified(true)
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Warnw("failed to record confirmation outcome",
			"order_increment_id", o.IncrementID(), "error", err)
	}
}
