package usecases

import (
	"context"
	"fmt"

	"paybridge/internal/application/payment/services"
	"paybridge/internal/domain/order"
	"paybridge/internal/domain/payment"
	"paybridge/internal/shared/logger"
)

type RefundPaymentCommand struct {
	OrderIncrementID string
	Amount           float64
}

// RefundPaymentUseCase returns a captured amount to the customer. The
// gateway reference is derived from the stored transaction chain, never
// taken from the caller.
type RefundPaymentUseCase struct {
	orderRepo   order.Repository
	paymentRepo payment.Repository
	adapter     *services.TransactionAdapter
	locker      OrderLocker
	logger      logger.Interface
}

func NewRefundPaymentUseCase(
	orderRepo order.Repository,
	paymentRepo payment.Repository,
	adapter *services.TransactionAdapter,
	locker OrderLocker,
	logger logger.Interface,
) *RefundPaymentUseCase {
	return &RefundPaymentUseCase{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		adapter:     adapter,
		locker:      locker,
		logger:      logger,
	}
}

func (uc *RefundPaymentUseCase) Execute(ctx context.Context, cmd RefundPaymentCommand) error {
	if cmd.Amount <= 0 {
		return fmt.Errorf("refund amount must be positive")
	}

	release, err := uc.locker.Lock(ctx, cmd.OrderIncrementID)
	if err != nil {
		return fmt.Errorf("failed to acquire order lock: %w", err)
	}
	defer release()

	o, err := uc.orderRepo.GetByIncrementID(ctx, cmd.OrderIncrementID)
	if err != nil {
		return err
	}
	p, err := uc.paymentRepo.GetByOrderID(ctx, o.ID())
	if err != nil {
		return err
	}

	if err := uc.adapter.Refund(ctx, o, p, cmd.Amount); err != nil {
		return err
	}

	o.AddStatusHistory(fmt.Sprintf("Refunded amount of %.2f %s online.", cmd.Amount, o.Currency()))
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Warnw("failed to record refund comment",
			"order_increment_id", cmd.OrderIncrementID, "error", err)
	}

	return nil
}
