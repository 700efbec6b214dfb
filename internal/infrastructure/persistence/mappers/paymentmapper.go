package mappers

import (
	"encoding/json"
	"fmt"

	"paybridge/internal/domain/payment"
	"paybridge/internal/infrastructure/persistence/models"
)

func PaymentToModel(p *payment.Payment) (*models.PaymentModel, error) {
	info, err := json.Marshal(p.AdditionalInformation())
	if err != nil {
		return nil, fmt.Errorf("failed to encode additional information: %w", err)
	}

	return &models.PaymentModel{
		ID:                    p.ID(),
		OrderID:               p.OrderID(),
		LastTransID:           p.LastTransID(),
		ParentTransID:         p.ParentTransID(),
		TransactionClosed:     p.TransactionClosed(),
		CardType:              p.CardType(),
		CardLast4:             p.CardLast4(),
		CardExpMonth:          p.CardExpMonth(),
		CardExpYear:           p.CardExpYear(),
		AdditionalInformation: info,
		Version:               p.Version(),
		CreatedAt:             p.CreatedAt(),
		UpdatedAt:             p.UpdatedAt(),
	}, nil
}

func PaymentToDomain(model *models.PaymentModel) (*payment.Payment, error) {
	var info map[string]interface{}
	if len(model.AdditionalInformation) > 0 {
		if err := json.Unmarshal(model.AdditionalInformation, &info); err != nil {
			return nil, fmt.Errorf("failed to decode additional information: %w", err)
		}
	}

	return payment.ReconstructPayment(
		model.ID,
		model.OrderID,
		model.LastTransID,
		model.ParentTransID,
		model.TransactionClosed,
		model.CardType,
		model.CardLast4,
		model.CardExpMonth,
		model.CardExpYear,
		info,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
