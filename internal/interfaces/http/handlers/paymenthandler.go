package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"paybridge/internal/application/payment/usecases"
	"paybridge/internal/shared/logger"
	"paybridge/internal/shared/utils"
)

// Callback bodies are small form-encoded payloads; anything bigger is abuse.
const maxCallbackBodySize = 64 << 10

type PaymentHandler struct {
	handleCallbackUC HandleCallbackUseCase
	createLinkUC     CreatePaymentLinkUseCase
	captureUC        CapturePaymentUseCase
	cancelUC         CancelPaymentUseCase
	refundUC         RefundPaymentUseCase
	logger           logger.Interface
}

func NewPaymentHandler(
	handleCallbackUC HandleCallbackUseCase,
	createLinkUC CreatePaymentLinkUseCase,
	captureUC CapturePaymentUseCase,
	cancelUC CancelPaymentUseCase,
	refundUC RefundPaymentUseCase,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		handleCallbackUC: handleCallbackUC,
		createLinkUC:     createLinkUC,
		captureUC:        captureUC,
		cancelUC:         cancelUC,
		refundUC:         refundUC,
		logger:           logger,
	}
}

// HandleCallback receives the gateway's server-to-server notification.
// The gateway only understands three answers: "OK" when the payment was
// applied, an empty 200 when there is nothing to do, and a 500 when it
// should retry later.
func (h *PaymentHandler) HandleCallback(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCallbackBodySize))
	if err != nil {
		h.logger.Errorw("failed to read callback body", "error", err)
		c.Status(http.StatusOK)
		return
	}

	cmd := usecases.HandleCallbackCommand{
		OrderIncrementID: c.Query("order_id"),
		RawBody:          string(body),
	}

	result := h.handleCallbackUC.Execute(c.Request.Context(), cmd)

	switch {
	case result.Acknowledged():
		c.String(http.StatusOK, "OK")
	case result.Retryable():
		c.Status(http.StatusInternalServerError)
	default:
		// Ignored and rejected callbacks get an empty 200 so the gateway
		// stops retrying a notification that will never apply.
		h.logger.Infow("callback not applied",
			"order_id", cmd.OrderIncrementID,
			"outcome", result.Outcome,
			"reason", result.Reason,
		)
		c.Status(http.StatusOK)
	}
}

type CreatePaymentLinkRequest struct {
	OrderIncrementID string `json:"order_increment_id" binding:"required"`
}

type CreatePaymentLinkResponse struct {
	PaymentWindowURL string `json:"payment_window_url"`
}

// CreatePaymentLink builds a hosted payment window URL for an order.
func (h *PaymentHandler) CreatePaymentLink(c *gin.Context) {
	var req CreatePaymentLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.createLinkUC.Execute(c.Request.Context(), usecases.CreatePaymentLinkCommand{
		OrderIncrementID: req.OrderIncrementID,
	})
	if err != nil {
		h.logger.Errorw("failed to create payment link", "error", err, "order_id", req.OrderIncrementID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment link created successfully", CreatePaymentLinkResponse{
		PaymentWindowURL: result.URL,
	})
}

type AmountRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// Capture collects a previously authorized amount.
func (h *PaymentHandler) Capture(c *gin.Context) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	orderID := c.Param("order_id")
	err := h.captureUC.Execute(c.Request.Context(), usecases.CapturePaymentCommand{
		OrderIncrementID: orderID,
		Amount:           req.Amount,
	})
	if err != nil {
		h.logger.Errorw("failed to capture payment", "error", err, "order_id", orderID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment captured successfully", nil)
}

// Cancel voids the authorization held for an order.
func (h *PaymentHandler) Cancel(c *gin.Context) {
	orderID := c.Param("order_id")
	err := h.cancelUC.Execute(c.Request.Context(), usecases.CancelPaymentCommand{
		OrderIncrementID: orderID,
	})
	if err != nil {
		h.logger.Errorw("failed to cancel payment", "error", err, "order_id", orderID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment canceled successfully", nil)
}

// Refund returns a captured amount to the customer.
func (h *PaymentHandler) Refund(c *gin.Context) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	orderID := c.Param("order_id")
	err := h.refundUC.Execute(c.Request.Context(), usecases.RefundPaymentCommand{
		OrderIncrementID: orderID,
		Amount:           req.Amount,
	})
	if err != nil {
		h.logger.Errorw("failed to refund payment", "error", err, "order_id", orderID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment refunded successfully", nil)
}
