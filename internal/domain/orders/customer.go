package orders

type Customer struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;not null" json:"name"`
	// Back-reference only; nothing in the engine cascades writes through it.
	Orders []Order `gorm:"foreignKey:CustomerID;references:ID" json:"orders,omitempty"`
}

func (Customer) TableName() string { return "customers" }
