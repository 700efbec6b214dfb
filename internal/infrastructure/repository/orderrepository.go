package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"paybridge/internal/domain/order"
	"paybridge/internal/infrastructure/persistence/mappers"
	"paybridge/internal/infrastructure/persistence/models"
	"paybridge/internal/shared/db"
	apperrors "paybridge/internal/shared/errors"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ order.Repository = (*OrderRepository)(nil)

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	model, err := mappers.OrderToModel(o)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	o.SetID(model.ID)

	return nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	model, err := mappers.OrderToModel(o)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"state":             model.State,
			"status":            model.Status,
			"email_sent":        model.EmailSent,
			"customer_notified": model.CustomerNotified,
			"status_history":    model.StatusHistory,
			"version":           model.Version,
			"updated_at":        model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *OrderRepository) GetByIncrementID(ctx context.Context, incrementID string) (*order.Order, error) {
	return r.getByIncrementID(ctx, incrementID, false)
}

// GetByIncrementIDForUpdate loads the order with a FOR UPDATE row lock. It
// only has an effect inside a transaction started by the TransactionManager.
func (r *OrderRepository) GetByIncrementIDForUpdate(ctx context.Context, incrementID string) (*order.Order, error) {
	return r.getByIncrementID(ctx, incrementID, true)
}

func (r *OrderRepository) getByIncrementID(ctx context.Context, incrementID string, forUpdate bool) (*order.Order, error) {
	query := db.GetTxFromContext(ctx, r.db)
	// sqlite rejects FOR UPDATE; its single-writer lock serializes
	// transactions anyway.
	if forUpdate && query.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var model models.OrderModel
	if err := query.Where("increment_id = ?", incrementID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", incrementID))
		}
		return nil, fmt.Errorf("failed to get order by increment_id: %w", err)
	}

	return mappers.OrderToDomain(&model)
}
