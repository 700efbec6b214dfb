package models

import (
	"time"

	"gorm.io/datatypes"
)

type OrderModel struct {
	ID               uint   `gorm:"primaryKey"`
	IncrementID      string `gorm:"uniqueIndex;size:32;not null"`
	State            string `gorm:"size:20;not null;index"`
	Status           string `gorm:"size:32;not null"`
	TotalDue         int64  `gorm:"not null"`
	Currency         string `gorm:"size:3;not null"`
	CustomerEmail    string `gorm:"size:255"`
	Locale           string `gorm:"size:10"`
	BillingLine1     string `gorm:"size:255"`
	BillingLine2     string `gorm:"size:255"`
	BillingCity      string `gorm:"size:128"`
	BillingPostcode  string `gorm:"size:16"`
	BillingCountry   string `gorm:"size:2"`
	ShippingLine1    string `gorm:"size:255"`
	ShippingLine2    string `gorm:"size:255"`
	ShippingCity     string `gorm:"size:128"`
	ShippingPostcode string `gorm:"size:16"`
	ShippingCountry  string `gorm:"size:2"`
	EmailSent        bool   `gorm:"not null;default:false"`
	CustomerNotified bool   `gorm:"not null;default:false"`
	StatusHistory    datatypes.JSON
	Version          int `gorm:"default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
