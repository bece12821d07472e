package orders

import "github.com/shopspring/decimal"

type OrderItem struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID int64  `gorm:"column:order_id;not null;index" json:"order_id"`
	Order   *Order `gorm:"foreignKey:OrderID;references:ID" json:"order,omitempty"`

	Quantity  int             `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null" json:"unit_price"`
	Taxable   bool            `gorm:"column:taxable;not null" json:"taxable"`
}

func (OrderItem) TableName() string { return "order_items" }
