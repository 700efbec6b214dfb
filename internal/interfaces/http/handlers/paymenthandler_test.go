package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paybridge/internal/application/payment/usecases"
	"paybridge/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCallbackUC struct {
	result *usecases.CallbackResult
	cmd    usecases.HandleCallbackCommand
}

func (m *mockCallbackUC) Execute(ctx context.Context, cmd usecases.HandleCallbackCommand) *usecases.CallbackResult {
	m.cmd = cmd
	return m.result
}

type mockCreateLinkUC struct {
	result *usecases.PaymentLinkResult
	err    error
}

func (m *mockCreateLinkUC) Execute(ctx context.Context, cmd usecases.CreatePaymentLinkCommand) (*usecases.PaymentLinkResult, error) {
	return m.result, m.err
}

type mockCaptureUC struct {
	cmd usecases.CapturePaymentCommand
	err error
}

func (m *mockCaptureUC) Execute(ctx context.Context, cmd usecases.CapturePaymentCommand) error {
	m.cmd = cmd
	return m.err
}

type mockCancelUC struct {
	err error
}

func (m *mockCancelUC) Execute(ctx context.Context, cmd usecases.CancelPaymentCommand) error {
	return m.err
}

type mockRefundUC struct {
	err error
}

func (m *mockRefundUC) Execute(ctx context.Context, cmd usecases.RefundPaymentCommand) error {
	return m.err
}

type handlerMocks struct {
	callback *mockCallbackUC
	link     *mockCreateLinkUC
	capture  *mockCaptureUC
	cancel   *mockCancelUC
	refund   *mockRefundUC
}

func newTestRouter(t *testing.T) (*gin.Engine, *handlerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mocks := &handlerMocks{
		callback: &mockCallbackUC{result: &usecases.CallbackResult{Outcome: usecases.OutcomeAccepted}},
		link:     &mockCreateLinkUC{result: &usecases.PaymentLinkResult{URL: "https://gw.example/pay/abc"}},
		capture:  &mockCaptureUC{},
		cancel:   &mockCancelUC{},
		refund:   &mockRefundUC{},
	}

	handler := NewPaymentHandler(
		mocks.callback, mocks.link, mocks.capture, mocks.cancel, mocks.refund,
		logger.NewLogger(),
	)

	engine := gin.New()
	engine.POST("/payments/callback", handler.HandleCallback)
	engine.POST("/payments/link", handler.CreatePaymentLink)
	engine.POST("/payments/:order_id/capture", handler.Capture)
	engine.POST("/payments/:order_id/cancel", handler.Cancel)
	engine.POST("/payments/:order_id/refund", handler.Refund)

	return engine, mocks
}

func TestHandleCallbackAcceptedRespondsOK(t *testing.T) {
	engine, mocks := newTestRouter(t)

	body := "authorizationIdentifier=tx-1"
	req := httptest.NewRequest(http.MethodPost, "/payments/callback?order_id=1000000123", strings.NewReader(body))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.Equal(t, "1000000123", mocks.callback.cmd.OrderIncrementID)
	assert.Equal(t, body, mocks.callback.cmd.RawBody)
}

func TestHandleCallbackIgnoredRespondsEmpty(t *testing.T) {
	engine, mocks := newTestRouter(t)
	mocks.callback.result = &usecases.CallbackResult{Outcome: usecases.OutcomeIgnored, Reason: "order not found"}

	req := httptest.NewRequest(http.MethodPost, "/payments/callback?order_id=x", strings.NewReader("authorizationIdentifier=tx-1"))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String(), "non-applied callbacks must not answer OK")
}

func TestHandleCallbackRejectedRespondsEmpty(t *testing.T) {
	engine, mocks := newTestRouter(t)
	mocks.callback.result = &usecases.CallbackResult{Outcome: usecases.OutcomeRejected, Reason: "order id mismatch"}

	req := httptest.NewRequest(http.MethodPost, "/payments/callback?order_id=x", strings.NewReader("authorizationIdentifier=tx-1"))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandleCallbackFailedResponds500(t *testing.T) {
	engine, mocks := newTestRouter(t)
	mocks.callback.result = &usecases.CallbackResult{Outcome: usecases.OutcomeFailed, Reason: "db down"}

	req := httptest.NewRequest(http.MethodPost, "/payments/callback?order_id=x", strings.NewReader("authorizationIdentifier=tx-1"))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code, "transient failures must signal the gateway to retry")
}

func TestCreatePaymentLinkEndpoint(t *testing.T) {
	engine, _ := newTestRouter(t)

	body := `{"order_increment_id":"1000000123"}`
	req := httptest.NewRequest(http.MethodPost, "/payments/link", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			PaymentWindowURL string `json:"payment_window_url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://gw.example/pay/abc", resp.Data.PaymentWindowURL)
}

func TestCreatePaymentLinkBadRequest(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/payments/link", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCaptureEndpoint(t *testing.T) {
	engine, mocks := newTestRouter(t)

	body := `{"amount":125.50}`
	req := httptest.NewRequest(http.MethodPost, "/payments/1000000123/capture", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1000000123", mocks.capture.cmd.OrderIncrementID)
	assert.Equal(t, 125.50, mocks.capture.cmd.Amount)
}

func TestCaptureRejectsZeroAmount(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/payments/1000000123/capture", strings.NewReader(`{"amount":0}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelEndpoint(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/payments/1000000123/cancel", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefundEndpointError(t *testing.T) {
	engine, mocks := newTestRouter(t)
	mocks.refund.err = fmt.Errorf("gateway declined")

	req := httptest.NewRequest(http.MethodPost, "/payments/1000000123/refund", strings.NewReader(`{"amount":10}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
