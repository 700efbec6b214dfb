package migrations

import (
	"paybridge/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

func MigratePaymentTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.OrderModel{},
		&models.PaymentModel{},
		&models.TransactionModel{},
	)
}
