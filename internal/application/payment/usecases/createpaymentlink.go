package usecases

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"paybridge/internal/application/payment/gateway"
	"paybridge/internal/domain/order"
	ordervo "paybridge/internal/domain/order/valueobjects"
	"paybridge/internal/shared/logger"
)

type CreatePaymentLinkCommand struct {
	OrderIncrementID string
}

type PaymentLinkResult struct {
	URL string
}

// LinkConfig carries the deployment-specific pieces of the payment link.
// PublicBaseURL is the storefront origin fronting this service: the gateway
// posts to /payments/callback here, while the accept/decline redirects land
// on storefront pages served in front of us.
type LinkConfig struct {
	PublicBaseURL string
	DefaultLocale string
}

// CreatePaymentLinkUseCase assembles the payment-initiation request and asks
// the gateway for a hosted payment window link.
type CreatePaymentLinkUseCase struct {
	orderRepo order.Repository
	client    gateway.Client
	cfg       LinkConfig
	logger    logger.Interface
}

func NewCreatePaymentLinkUseCase(
	orderRepo order.Repository,
	client gateway.Client,
	cfg LinkConfig,
	logger logger.Interface,
) *CreatePaymentLinkUseCase {
	return &CreatePaymentLinkUseCase{
		orderRepo: orderRepo,
		client:    client,
		cfg:       cfg,
		logger:    logger,
	}
}

func (uc *CreatePaymentLinkUseCase) Execute(ctx context.Context, cmd CreatePaymentLinkCommand) (*PaymentLinkResult, error) {
	o, err := uc.orderRepo.GetByIncrementID(ctx, cmd.OrderIncrementID)
	if err != nil {
		return nil, err
	}

	req := uc.buildRequest(o)

	resp, err := uc.client.CreatePaymentLink(ctx, req)
	if err != nil {
		uc.logger.Errorw("failed to create payment link",
			"order_increment_id", cmd.OrderIncrementID, "error", err)
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}

	uc.logger.Infow("payment link created", "order_increment_id", cmd.OrderIncrementID)

	return &PaymentLinkResult{URL: resp.PaymentWindowLink}, nil
}

func (uc *CreatePaymentLinkUseCase) buildRequest(o *order.Order) gateway.PaymentLinkRequest {
	incrementID := o.IncrementID()

	locale := o.Locale()
	if locale == "" {
		locale = uc.cfg.DefaultLocale
	}

	return gateway.PaymentLinkRequest{
		OrderNumber:        incrementID,
		CustomerAcceptURL:  uc.callbackURL("return", incrementID),
		CustomerDeclineURL: uc.callbackURL("cancel", incrementID),
		ServerCallbackURL:  uc.callbackURL("callback", incrementID),
		Amount:             o.TotalDue().MinorUnits(),
		Currency:           o.Currency(),
		EnforceLanguage:    ResolveLanguage(locale),
		SaveCard:           false,
		BillingAddress:     toGatewayAddress(o.BillingAddress()),
		ShippingAddress:    toGatewayAddress(o.ShippingAddress()),
	}
}

func (uc *CreatePaymentLinkUseCase) callbackURL(action, incrementID string) string {
	return fmt.Sprintf("%s/payments/%s?order_id=%s",
		strings.TrimRight(uc.cfg.PublicBaseURL, "/"), action, incrementID)
}

func toGatewayAddress(a ordervo.Address) gateway.Address {
	return gateway.Address{
		AddressLine1: a.Line1,
		AddressLine2: a.Line2,
		City:         a.City,
		PostCode:     a.Postcode,
		Country:      gateway.CountryAlpha2ToNumeric(a.Country),
	}
}

// norwegianVariants maps both written Norwegian forms to the gateway's
// single Norwegian language code.
var norwegianVariants = map[string]string{
	"nb": "no",
	"nn": "no",
}

// ResolveLanguage derives the gateway language code from a locale string
// such as "da_DK": the primary language subtag, with Norwegian variants
// collapsed to "no".
func ResolveLanguage(locale string) string {
	lang := strings.SplitN(locale, "_", 2)[0]

	// Parse canonicalizes deprecated subtags ("iw" becomes "he"); the
	// gateway gets the subtag as sent, so the parsed base is only used to
	// normalize case.
	if tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-")); err == nil {
		if base, conf := tag.Base(); conf != language.No && strings.EqualFold(base.String(), lang) {
			lang = base.String()
		}
	}

	if mapped, ok := norwegianVariants[lang]; ok {
		return mapped
	}
	return lang
}
