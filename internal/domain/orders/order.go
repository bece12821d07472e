package orders

type Order struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CustomerID int64     `gorm:"column:customer_id;not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`

	Items    []OrderItem     `gorm:"foreignKey:OrderID;references:ID" json:"items,omitempty"`
	Payment  *Payment        `gorm:"foreignKey:OrderID;references:ID" json:"payment,omitempty"`
	Shipping *ShippingDetail `gorm:"foreignKey:OrderID;references:ID" json:"shipping,omitempty"`
}

func (Order) TableName() string { return "orders" }
