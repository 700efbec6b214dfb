package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paybridge/internal/application/payment/gateway"
	"paybridge/internal/domain/order"
	ordervo "paybridge/internal/domain/order/valueobjects"
	"paybridge/internal/shared/logger"
)

func newLinkFixture(t *testing.T) (*CreatePaymentLinkUseCase, *mockOrderRepo, *mockGatewayClient) {
	t.Helper()

	o, err := order.NewOrder("1000000123", ordervo.NewAmount(199.95, "DKK"), "customer@example.com")
	require.NoError(t, err)
	o.SetID(42)
	o.SetLocale("da_DK")
	o.SetAddresses(
		ordervo.Address{Line1: "Bredgade 1", City: "Copenhagen", Postcode: "1260", Country: "DK"},
		ordervo.Address{Line1: "Storgata 2", City: "Oslo", Postcode: "0155", Country: "NO"},
	)

	orderRepo := newMockOrderRepo(o)
	client := &mockGatewayClient{
		linkResp: &gateway.PaymentLinkResponse{PaymentWindowLink: "https://gw.example/pay/abc"},
	}

	uc := NewCreatePaymentLinkUseCase(orderRepo, client, LinkConfig{
		PublicBaseURL: "https://shop.example.com/",
		DefaultLocale: "en_US",
	}, logger.NewLogger())

	return uc, orderRepo, client
}

func TestCreatePaymentLink(t *testing.T) {
	uc, _, client := newLinkFixture(t)

	result, err := uc.Execute(context.Background(), CreatePaymentLinkCommand{OrderIncrementID: "1000000123"})
	require.NoError(t, err)
	assert.Equal(t, "https://gw.example/pay/abc", result.URL)

	req := client.linkReq
	require.NotNil(t, req)
	assert.Equal(t, "1000000123", req.OrderNumber)
	assert.Equal(t, int64(19995), req.Amount)
	assert.Equal(t, "DKK", req.Currency)
	assert.Equal(t, "da", req.EnforceLanguage)
	assert.False(t, req.SaveCard)

	assert.Equal(t, "https://shop.example.com/payments/return?order_id=1000000123", req.CustomerAcceptURL)
	assert.Equal(t, "https://shop.example.com/payments/cancel?order_id=1000000123", req.CustomerDeclineURL)
	assert.Equal(t, "https://shop.example.com/payments/callback?order_id=1000000123", req.ServerCallbackURL)

	assert.Equal(t, "208", req.BillingAddress.Country)
	assert.Equal(t, "578", req.ShippingAddress.Country)
	assert.Equal(t, "Bredgade 1", req.BillingAddress.AddressLine1)
	assert.Equal(t, "1260", req.BillingAddress.PostCode)
}

func TestCreatePaymentLinkDefaultLocale(t *testing.T) {
	uc, orderRepo, client := newLinkFixture(t)
	orderRepo.orders["1000000123"].SetLocale("")

	_, err := uc.Execute(context.Background(), CreatePaymentLinkCommand{OrderIncrementID: "1000000123"})
	require.NoError(t, err)

	assert.Equal(t, "en", client.linkReq.EnforceLanguage)
}

func TestCreatePaymentLinkGatewayError(t *testing.T) {
	uc, _, client := newLinkFixture(t)
	client.linkErr = fmt.Errorf("gateway down")

	_, err := uc.Execute(context.Background(), CreatePaymentLinkCommand{OrderIncrementID: "1000000123"})
	assert.Error(t, err)
}

func TestCreatePaymentLinkUnknownOrder(t *testing.T) {
	uc, _, _ := newLinkFixture(t)

	_, err := uc.Execute(context.Background(), CreatePaymentLinkCommand{OrderIncrementID: "nope"})
	assert.Error(t, err)
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		locale   string
		expected string
	}{
		{"da_DK", "da"},
		{"en_US", "en"},
		{"en_GB", "en"},
		{"de_DE", "de"},
		{"sv_SE", "sv"},
		{"nb_NO", "no"},
		{"nn_NO", "no"},
		{"no_NO", "no"},
		{"fr", "fr"},
		{"DA_DK", "da"},
		// Deprecated subtags go through as sent, not canonicalized.
		{"iw_IL", "iw"},
		{"in_ID", "in"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveLanguage(tt.locale))
		})
	}
}
