package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// One payment per order.
	OrderID int64  `gorm:"column:order_id;not null;uniqueIndex" json:"order_id"`
	Order   *Order `gorm:"foreignKey:OrderID;references:ID" json:"order,omitempty"`

	Amount decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	PaidAt time.Time       `gorm:"column:paid_at;not null" json:"paid_at"`
}

func (Payment) TableName() string { return "payments" }
