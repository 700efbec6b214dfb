package mappers

import (
	"encoding/json"
	"fmt"

	"paybridge/internal/domain/payment"
	vo "paybridge/internal/domain/payment/valueobjects"
	"paybridge/internal/infrastructure/persistence/models"
)

func TransactionToModel(t *payment.Transaction) (*models.TransactionModel, error) {
	details, err := json.Marshal(t.RawDetails())
	if err != nil {
		return nil, fmt.Errorf("failed to encode raw details: %w", err)
	}

	return &models.TransactionModel{
		TxnID:       t.TxnID(),
		ParentTxnID: t.ParentTxnID(),
		PaymentID:   t.PaymentID(),
		OrderID:     t.OrderID(),
		Type:        t.Type().String(),
		RawDetails:  details,
		Comment:     t.Comment(),
		CreatedAt:   t.CreatedAt(),
	}, nil
}

func TransactionToDomain(model *models.TransactionModel) (*payment.Transaction, error) {
	txnType, err := vo.NewTransactionType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction type: %w", err)
	}

	var details map[string]interface{}
	if len(model.RawDetails) > 0 {
		if err := json.Unmarshal(model.RawDetails, &details); err != nil {
			return nil, fmt.Errorf("failed to decode raw details: %w", err)
		}
	}

	return payment.ReconstructTransaction(
		model.TxnID,
		model.ParentTxnID,
		model.PaymentID,
		model.OrderID,
		txnType,
		details,
		model.Comment,
		model.CreatedAt,
	), nil
}
