package models

import (
	"time"

	"gorm.io/datatypes"
)

// TransactionModel is append-only; rows are never updated after creation.
type TransactionModel struct {
	ID          uint    `gorm:"primaryKey"`
	TxnID       string  `gorm:"uniqueIndex;size:64;not null"`
	ParentTxnID *string `gorm:"size:64"`
	PaymentID   uint    `gorm:"index;not null"`
	OrderID     uint    `gorm:"index;not null"`
	Type        string  `gorm:"size:16;not null"`
	RawDetails  datatypes.JSON
	Comment     string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (TransactionModel) TableName() string {
	return "payment_transactions"
}
