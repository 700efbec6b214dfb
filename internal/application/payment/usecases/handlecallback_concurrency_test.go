package usecases

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"paybridge/internal/application/payment/gateway"
	"paybridge/internal/application/payment/services"
	"paybridge/internal/domain/order"
	ordervo "paybridge/internal/domain/order/valueobjects"
	"paybridge/internal/domain/payment"
	paymentvo "paybridge/internal/domain/payment/valueobjects"
	"paybridge/internal/infrastructure/persistence/migrations"
	"paybridge/internal/infrastructure/repository"
	"paybridge/internal/shared/db"
	"paybridge/internal/shared/logger"
)

// openLocker grants every lock, so the row lock inside the transaction is
// the only thing serializing concurrent deliveries.
type openLocker struct{}

func (openLocker) Lock(ctx context.Context, incrementID string) (func(), error) {
	return func() {}, nil
}

type countingSender struct {
	calls atomic.Int32
}

func (s *countingSender) SendOrderConfirmation(ctx context.Context, o *order.Order) error {
	s.calls.Add(1)
	return nil
}

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory
	// database.
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.MigratePaymentTables(gormDB))

	return gormDB
}

// Two deliveries of the same callback racing through the real transaction
// manager and repositories must produce exactly one auth transaction and one
// confirmation email.
func TestHandleCallbackConcurrentDeliveries(t *testing.T) {
	gormDB := newSQLiteDB(t)
	ctx := context.Background()

	orderRepo := repository.NewOrderRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)
	txnRepo := repository.NewTransactionRepository(gormDB)

	o, err := order.NewOrder("1000000123", ordervo.NewAmount(250.00, "DKK"), "customer@example.com")
	require.NoError(t, err)
	require.NoError(t, orderRepo.Create(ctx, o))

	p, err := payment.NewPayment(o.ID())
	require.NoError(t, err)
	require.NoError(t, paymentRepo.Create(ctx, p))

	client := &mockGatewayClient{
		txnInfo: &gateway.TransactionInfo{
			OrderID:        "1000000123",
			CardType:       6,
			MaskedPan:      "457199XXXXXX1234",
			CardExpiryDate: "2512",
			Currency:       "DKK",
		},
	}
	sender := &countingSender{}

	log := logger.NewLogger()
	adapter := services.NewTransactionAdapter(orderRepo, paymentRepo, txnRepo, client, log)
	statusTable := ordervo.NewStateStatusTable(map[string]string{"processing": "processing"})

	uc := NewHandleCallbackUseCase(
		orderRepo, paymentRepo, adapter, client,
		sender, openLocker{}, db.NewTransactionManager(gormDB), statusTable, log,
	)

	cmd := HandleCallbackCommand{
		OrderIncrementID: "1000000123",
		RawBody:          "authorizationIdentifier=tx-1",
	}

	results := make([]*CallbackResult, 2)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = uc.Execute(ctx, cmd)
		}(i)
	}
	wg.Wait()

	outcomes := map[CallbackOutcome]int{}
	for _, r := range results {
		require.NotNil(t, r)
		outcomes[r.Outcome]++
	}
	assert.Equal(t, 1, outcomes[OutcomeAccepted])
	assert.Equal(t, 1, outcomes[OutcomeIgnored])

	txns, err := txnRepo.ListByOrderID(ctx, o.ID())
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "tx-1", txns[0].TxnID())
	assert.Equal(t, paymentvo.TransactionTypeAuth, txns[0].Type())

	assert.Equal(t, int32(1), sender.calls.Load())

	reloaded, err := orderRepo.GetByIncrementID(ctx, "1000000123")
	require.NoError(t, err)
	assert.Equal(t, ordervo.OrderStateProcessing, reloaded.State())
	assert.True(t, reloaded.EmailSent())
}
