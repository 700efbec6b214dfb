package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"paybridge/internal/domain/payment"
	"paybridge/internal/infrastructure/persistence/mappers"
	"paybridge/internal/infrastructure/persistence/models"
	"paybridge/internal/shared/db"
	apperrors "paybridge/internal/shared/errors"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

var _ payment.Repository = (*PaymentRepository)(nil)

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	model, err := mappers.PaymentToModel(p)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	p.SetID(model.ID)

	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	model, err := mappers.PaymentToModel(p)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"last_trans_id":          model.LastTransID,
			"parent_trans_id":        model.ParentTransID,
			"transaction_closed":     model.TransactionClosed,
			"card_type":              model.CardType,
			"card_last4":             model.CardLast4,
			"card_exp_month":         model.CardExpMonth,
			"card_exp_year":          model.CardExpYear,
			"additional_information": model.AdditionalInformation,
			"version":                model.Version,
			"updated_at":             model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID uint) (*payment.Payment, error) {
	var model models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("order_id = ?", orderID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("payment for order %d not found", orderID))
		}
		return nil, fmt.Errorf("failed to get payment by order_id: %w", err)
	}

	return mappers.PaymentToDomain(&model)
}
