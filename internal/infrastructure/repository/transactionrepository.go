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

// TransactionRepository stores the append-only gateway transaction history.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

var _ payment.TransactionRepository = (*TransactionRepository)(nil)

func (r *TransactionRepository) Create(ctx context.Context, txn *payment.Transaction) error {
	model, err := mappers.TransactionToModel(txn)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

func (r *TransactionRepository) GetByTxnID(ctx context.Context, txnID string) (*payment.Transaction, error) {
	var model models.TransactionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("txn_id = ?", txnID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", txnID))
		}
		return nil, fmt.Errorf("failed to get transaction by txn_id: %w", err)
	}

	return mappers.TransactionToDomain(&model)
}

func (r *TransactionRepository) ListByOrderID(ctx context.Context, orderID uint) ([]*payment.Transaction, error) {
	var rows []models.TransactionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions by order_id: %w", err)
	}

	txns := make([]*payment.Transaction, 0, len(rows))
	for i := range rows {
		txn, err := mappers.TransactionToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, nil
}
