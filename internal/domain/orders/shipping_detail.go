package orders

import "time"

type ShippingDetail struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// One shipping record per order.
	OrderID int64  `gorm:"column:order_id;not null;uniqueIndex" json:"order_id"`
	Order   *Order `gorm:"foreignKey:OrderID;references:ID" json:"order,omitempty"`

	Address   string    `gorm:"column:address;not null" json:"address"`
	ShippedAt time.Time `gorm:"column:shipped_at;not null" json:"shipped_at"`
}

func (ShippingDetail) TableName() string { return "shipping_details" }
