package models

import (
	"time"

	"gorm.io/datatypes"
)

type PaymentModel struct {
	ID                    uint    `gorm:"primaryKey"`
	OrderID               uint    `gorm:"uniqueIndex;not null"`
	LastTransID           *string `gorm:"size:64;index"`
	ParentTransID         *string `gorm:"size:64"`
	TransactionClosed     bool    `gorm:"not null;default:false"`
	CardType              string  `gorm:"size:32"`
	CardLast4             string  `gorm:"size:8"`
	CardExpMonth          int
	CardExpYear           int
	AdditionalInformation datatypes.JSON
	Version               int `gorm:"default:0"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (PaymentModel) TableName() string {
	return "payments"
}
