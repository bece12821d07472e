package db

import (
	"gorm.io/gorm"

	"github.com/yungbote/orderbench/internal/domain/orders"
)

// AutoMigrateAll creates the five entity tables in dependency order.
func AutoMigrateAll(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&orders.Customer{},
		&orders.Order{},
		&orders.OrderItem{},
		&orders.Payment{},
		&orders.ShippingDetail{},
	)
}
