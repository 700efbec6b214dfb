package usecases

import (
	"context"
	"fmt"

	"paybridge/internal/application/payment/gateway"
	"paybridge/internal/domain/order"
	"paybridge/internal/domain/payment"
	apperrors "paybridge/internal/shared/errors"
)

// =====================================================================
// Mock repositories
// =====================================================================

type mockOrderRepo struct {
	orders      map[string]*order.Order
	updateCalls int
	updateErr   error
	getErr      error
}

func newMockOrderRepo(orders ...*order.Order) *mockOrderRepo {
	repo := &mockOrderRepo{orders: make(map[string]*order.Order)}
	for _, o := range orders {
		repo.orders[o.IncrementID()] = o
	}
	return repo
}

func (m *mockOrderRepo) Create(ctx context.Context, o *order.Order) error {
	m.orders[o.IncrementID()] = o
	return nil
}

func (m *mockOrderRepo) Update(ctx context.Context, o *order.Order) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.orders[o.IncrementID()] = o
	return nil
}

func (m *mockOrderRepo) GetByIncrementID(ctx context.Context, incrementID string) (*order.Order, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	o, ok := m.orders[incrementID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", incrementID))
	}
	return o, nil
}

func (m *mockOrderRepo) GetByIncrementIDForUpdate(ctx context.Context, incrementID string) (*order.Order, error) {
	return m.GetByIncrementID(ctx, incrementID)
}

type mockPaymentRepo struct {
	payments    map[uint]*payment.Payment
	updateCalls int
	updateErr   error
}

func newMockPaymentRepo(payments ...*payment.Payment) *mockPaymentRepo {
	repo := &mockPaymentRepo{payments: make(map[uint]*payment.Payment)}
	for _, p := range payments {
		repo.payments[p.OrderID()] = p
	}
	return repo
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	m.payments[p.OrderID()] = p
	return nil
}

func (m *mockPaymentRepo) Update(ctx context.Context, p *payment.Payment) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.payments[p.OrderID()] = p
	return nil
}

func (m *mockPaymentRepo) GetByOrderID(ctx context.Context, orderID uint) (*payment.Payment, error) {
	p, ok := m.payments[orderID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("payment for order %d not found", orderID))
	}
	return p, nil
}

type mockTxnRepo struct {
	created   []*payment.Transaction
	createErr error
}

func (m *mockTxnRepo) Create(ctx context.Context, txn *payment.Transaction) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, txn)
	return nil
}

func (m *mockTxnRepo) GetByTxnID(ctx context.Context, txnID string) (*payment.Transaction, error) {
	for _, txn := range m.created {
		if txn.TxnID() == txnID {
			return txn, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", txnID))
}

func (m *mockTxnRepo) ListByOrderID(ctx context.Context, orderID uint) ([]*payment.Transaction, error) {
	var result []*payment.Transaction
	for _, txn := range m.created {
		if txn.OrderID() == orderID {
			result = append(result, txn)
		}
	}
	return result, nil
}

// =====================================================================
// Mock gateway client
// =====================================================================

type gatewayCall struct {
	method string
	txnID  string
	amount int64
}

type mockGatewayClient struct {
	txnInfo    *gateway.TransactionInfo
	txnErr     error
	linkResp   *gateway.PaymentLinkResponse
	linkErr    error
	linkReq    *gateway.PaymentLinkRequest
	opErr      error
	calls      []gatewayCall
	getCalls   int
}

func (m *mockGatewayClient) GetTransaction(ctx context.Context, transactionID string) (*gateway.TransactionInfo, error) {
	m.getCalls++
	if m.txnErr != nil {
		return nil, m.txnErr
	}
	return m.txnInfo, nil
}

func (m *mockGatewayClient) Capture(ctx context.Context, transactionID string, amountMinor int64) error {
	m.calls = append(m.calls, gatewayCall{method: "capture", txnID: transactionID, amount: amountMinor})
	return m.opErr
}

func (m *mockGatewayClient) Cancel(ctx context.Context, transactionID string) error {
	m.calls = append(m.calls, gatewayCall{method: "cancel", txnID: transactionID})
	return m.opErr
}

func (m *mockGatewayClient) Credit(ctx context.Context, transactionID string, amountMinor int64) error {
	m.calls = append(m.calls, gatewayCall{method: "credit", txnID: transactionID, amount: amountMinor})
	return m.opErr
}

func (m *mockGatewayClient) CreatePaymentLink(ctx context.Context, req gateway.PaymentLinkRequest) (*gateway.PaymentLinkResponse, error) {
	m.linkReq = &req
	if m.linkErr != nil {
		return nil, m.linkErr
	}
	return m.linkResp, nil
}

// =====================================================================
// Mock collaborators
// =====================================================================

type mockConfirmationSender struct {
	sendErr   error
	sendCalls int
}

func (m *mockConfirmationSender) SendOrderConfirmation(ctx context.Context, o *order.Order) error {
	m.sendCalls++
	return m.sendErr
}

type mockLocker struct {
	lockErr      error
	lockCalls    int
	releaseCalls int
}

func (m *mockLocker) Lock(ctx context.Context, incrementID string) (func(), error) {
	m.lockCalls++
	if m.lockErr != nil {
		return nil, m.lockErr
	}
	return func() { m.releaseCalls++ }, nil
}

// mockTxManager runs the function directly; a returned error stands in for
// a rollback.
type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
