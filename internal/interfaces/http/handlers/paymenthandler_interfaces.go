package handlers

import (
	"context"

	"paybridge/internal/application/payment/usecases"
)

// Use case interfaces consumed by PaymentHandler. The concrete
// application-layer use cases satisfy these; tests substitute mocks.

type HandleCallbackUseCase interface {
	Execute(ctx context.Context, cmd usecases.HandleCallbackCommand) *usecases.CallbackResult
}

type CreatePaymentLinkUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePaymentLinkCommand) (*usecases.PaymentLinkResult, error)
}

type CapturePaymentUseCase interface {
	Execute(ctx context.Context, cmd usecases.CapturePaymentCommand) error
}

type CancelPaymentUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelPaymentCommand) error
}

type RefundPaymentUseCase interface {
	Execute(ctx context.Context, cmd usecases.RefundPaymentCommand) error
}
