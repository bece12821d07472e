package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// Placeholder values written for every persisted order. They are fixed by the
// reference behavior under benchmark and are never derived from item totals.
const PlaceholderAddress = "Test"

// PlaceholderAmount returns the fixed payment amount stamped on every order.
func PlaceholderAmount() decimal.Decimal { return decimal.NewFromInt(100) }

// OrderItemInput is the pre-persistence form of a line item. It carries no
// identity until the strategies hand it to the store.
type OrderItemInput struct {
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Taxable   bool            `json:"taxable"`
}

// Valid reports whether the item survives the row-by-row item filter.
// Zero/invalid items are dropped silently, never rejected.
func (i OrderItemInput) Valid() bool {
	return i.Quantity > 0 && i.UnitPrice.IsPositive()
}

// Row builds the persistable line item for the given order identity. Pass a
// zero orderID when the row is staged by in-memory reference and the store
// resolves the foreign key at commit.
func (i OrderItemInput) Row(orderID int64) OrderItem {
	return OrderItem{
		OrderID:   orderID,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
		Taxable:   i.Taxable,
	}
}

// OrderInput is one aggregate worth of input: a customer name plus the
// ordered list of line items.
type OrderInput struct {
	CustomerName string           `json:"customer_name"`
	Items        []OrderItemInput `json:"items"`
}

// Skippable reports whether the row-by-row strategies drop the whole
// aggregate. Batch-oriented strategies persist it regardless.
func (in OrderInput) Skippable() bool {
	return in.CustomerName == "" || len(in.Items) == 0
}

// PlaceholderPayment synthesizes the fixed payment row for an order.
func PlaceholderPayment(orderID int64) *Payment {
	return &Payment{
		OrderID: orderID,
		Amount:  PlaceholderAmount(),
		PaidAt:  time.Now().UTC(),
	}
}

// PlaceholderShipping synthesizes the fixed shipping row for an order.
func PlaceholderShipping(orderID int64) *ShippingDetail {
	return &ShippingDetail{
		OrderID:   orderID,
		Address:   PlaceholderAddress,
		ShippedAt: time.Now().UTC(),
	}
}

// Graph builds the whole aggregate linked by object reference instead of
// foreign-key value: the order holds its not-yet-identified customer, and the
// children hang off the order. A single commit resolves every identity.
func (in OrderInput) Graph() *Order {
	items := make([]OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, it.Row(0))
	}
	return &Order{
		Customer: &Customer{Name: in.CustomerName},
		Items:    items,
		Payment:  PlaceholderPayment(0),
		Shipping: PlaceholderShipping(0),
	}
}
