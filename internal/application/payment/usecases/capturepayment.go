package usecases

import (
	"context"
	"fmt"

	"paybridge/internal/application/payment/services"
	"paybridge/internal/domain/order"
	"paybridge/internal/domain/payment"
	"paybridge/internal/shared/logger"
)

type CapturePaymentCommand struct {
	OrderIncrementID string
	Amount           float64
}

// CapturePaymentUseCase collects a previously authorized amount. The capture
// itself is tracked by the gateway only; locally the order just gets a
// history comment.
type CapturePaymentUseCase struct {
	orderRepo   order.Repository
	paymentRepo payment.Repository
	adapter     *services.TransactionAdapter
	locker      OrderLocker
	logger      logger.Interface
}

func NewCapturePaymentUseCase(
	orderRepo order.Repository,
	paymentRepo payment.Repository,
	adapter *services.TransactionAdapter,
	locker OrderLocker,
	logger logger.Interface,
) *CapturePaymentUseCase {
	return &CapturePaymentUseCase{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		adapter:     adapter,
		locker:      locker,
		logger:      logger,
	}
}

func (uc *CapturePaymentUseCase) Execute(ctx context.Context, cmd CapturePaymentCommand) error {
	if cmd.Amount <= 0 {
		return fmt.Errorf("capture amount must be positive")
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

	if err := uc.adapter.Capture(ctx, o, p, cmd.Amount); err != nil {
		return err
	}

	o.AddStatusHistory(fmt.Sprintf("Captured amount of %.2f %s online.", cmd.Amount, o.Currency()))
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Warnw("failed to record capture comment",
			"order_increment_id", cmd.OrderIncrementID, "error", err)
	}

	return nil
}
