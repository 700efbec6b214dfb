// Package gateway defines the contract this service consumes from the hosted
// payment gateway, together with the wire types the gateway's API uses.
package gateway

import "context"

// TransactionInfo is the gateway's authoritative record for a transaction.
// It is fetched during reconciliation and never stored as-is.
type TransactionInfo struct {
	OrderID        string `json:"OrderID"`
	CardType       int    `json:"CardType"`
	MaskedPan      string `json:"MaskedPan"`
	CardExpiryDate string `json:"CardExpiryDate"`
	Currency       string `json:"Currency"`
	Status         string `json:"Status"`
}

// Address is a postal address in the gateway's wire format. Country is the
// ISO 3166-1 numeric code the gateway expects, not the alpha-2 code.
type Address struct {
	AddressLine1 string `json:"AddressLine1"`
	AddressLine2 string `json:"AddressLine2"`
	City         string `json:"City"`
	PostCode     string `json:"PostCode"`
	Country      string `json:"Country"`
}

// PaymentLinkRequest initiates a hosted payment window session.
type PaymentLinkRequest struct {
	OrderNumber        string  `json:"OrderNumber"`
	CustomerAcceptURL  string  `json:"CustomerAcceptUrl"`
	CustomerDeclineURL string  `json:"CustomerDeclineUrl"`
	ServerCallbackURL  string  `json:"ServerCallbackUrl"`
	Amount             int64   `json:"Amount"`
	Currency           string  `json:"Currency"`
	EnforceLanguage    string  `json:"EnforceLanguage"`
	SaveCard           bool    `json:"SaveCard"`
	BillingAddress     Address `json:"BillingAddress"`
	ShippingAddress    Address `json:"ShippingAddress"`
}

type PaymentLinkResponse struct {
	PaymentWindowLink string `json:"paymentWindowLink"`
}

// Client executes calls against the payment gateway. Amounts are integer
// minor currency units everywhere on this boundary.
type Client interface {
	GetTransaction(ctx context.Context, transactionID string) (*TransactionInfo, error)
	Capture(ctx context.Context, transactionID string, amountMinor int64) error
	Cancel(ctx context.Context, transactionID string) error
	Credit(ctx context.Context, transactionID string, amountMinor int64) error
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (*PaymentLinkResponse, error)
}
