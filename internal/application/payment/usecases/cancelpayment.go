package usecases

import (
	"context"
	"fmt"

	"paybridge/internal/application/payment/services"
	"paybridge/internal/domain/order"
	"paybridge/internal/domain/payment"
	"paybridge/internal/shared/logger"
)

type CancelPaymentCommand struct {
	OrderIncrementID string
}

// CancelPaymentUseCase voids the authorization held for an order.
type CancelPaymentUseCase struct {
	orderRepo   order.Repository
	paymentRepo payment.Repository
	adapter     *services.TransactionAdapter
	locker      OrderLocker
	logger      logger.Interface
}

func NewCancelPaymentUseCase(
	orderRepo order.Repository,
	paymentRepo payment.Repository,
	adapter *services.TransactionAdapter,
	locker OrderLocker,
	logger logger.Interface,
) *CancelPaymentUseCase {
	return &CancelPaymentUseCase{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		adapter:     adapter,
		locker:      locker,
		logger:      logger,
	}
}

func (uc *CancelPaymentUseCase) Execute(ctx context.Context, cmd CancelPaymentCommand) error {
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

	if err := uc.adapter.Cancel(ctx, o, p); err != nil {
		return err
	}

	p.CloseTransaction()
	if err := uc.paymentRepo.Update(ctx, p); err != nil {
		uc.logger.Warnw("failed to close payment transaction",
			"order_increment_id", cmd.OrderIncrementID, "error", err)
	}

	o.AddStatusHistory("Canceled payment online.")
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Warnw("failed to record cancel comment",
			"order_increment_id", cmd.OrderIncrementID, "error", err)
	}

	return nil
}
