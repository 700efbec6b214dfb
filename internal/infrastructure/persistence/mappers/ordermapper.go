package mappers

import (
	"encoding/json"
	"fmt"

	"paybridge/internal/domain/order"
	vo "paybridge/internal/domain/order/valueobjects"
	"paybridge/internal/infrastructure/persistence/models"
)

func OrderToModel(o *order.Order) (*models.OrderModel, error) {
	history, err := json.Marshal(o.StatusHistory())
	if err != nil {
		return nil, fmt.Errorf("failed to encode status history: %w", err)
	}

	billing := o.BillingAddress()
	shipping := o.ShippingAddress()

	return &models.OrderModel{
		ID:               o.ID(),
		IncrementID:      o.IncrementID(),
		State:            o.State().String(),
		Status:           o.Status(),
		TotalDue:         o.TotalDue().MinorUnits(),
		Currency:         o.Currency(),
		CustomerEmail:    o.CustomerEmail(),
		Locale:           o.Locale(),
		BillingLine1:     billing.Line1,
		BillingLine2:     billing.Line2,
		BillingCity:      billing.City,
		BillingPostcode:  billing.Postcode,
		BillingCountry:   billing.Country,
		ShippingLine1:    shipping.Line1,
		ShippingLine2:    shipping.Line2,
		ShippingCity:     shipping.City,
		ShippingPostcode: shipping.Postcode,
		ShippingCountry:  shipping.Country,
		EmailSent:        o.EmailSent(),
		CustomerNotified: o.CustomerNotified(),
		StatusHistory:    history,
		Version:          o.Version(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
	}, nil
}

func OrderToDomain(model *models.OrderModel) (*order.Order, error) {
	state, err := vo.NewOrderState(model.State)
	if err != nil {
		return nil, fmt.Errorf("invalid order state: %w", err)
	}

	var history []order.StatusHistoryEntry
	if len(model.StatusHistory) > 0 {
		if err := json.Unmarshal(model.StatusHistory, &history); err != nil {
			return nil, fmt.Errorf("failed to decode status history: %w", err)
		}
	}

	billing := vo.Address{
		Line1:    model.BillingLine1,
		Line2:    model.BillingLine2,
		City:     model.BillingCity,
		Postcode: model.BillingPostcode,
		Country:  model.BillingCountry,
	}
	shipping := vo.Address{
		Line1:    model.ShippingLine1,
		Line2:    model.ShippingLine2,
		City:     model.ShippingCity,
		Postcode: model.ShippingPostcode,
		Country:  model.ShippingCountry,
	}

	return order.ReconstructOrder(
		model.ID,
		model.IncrementID,
		state,
		model.Status,
		vo.AmountFromMinorUnits(model.TotalDue, model.Currency),
		model.CustomerEmail,
		model.Locale,
		billing,
		shipping,
		model.EmailSent,
		model.CustomerNotified,
		history,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
