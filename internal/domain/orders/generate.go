package orders

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Generate produces n benchmark inputs with unique customer names and the
// fixed three-item shape used across every strategy run: two valid items and
// one zero-quantity item that the filtering strategies drop.
func Generate(n int) []OrderInput {
	out := make([]OrderInput, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, OrderInput{
			CustomerName: fmt.Sprintf("customer-%04d", i+1),
			Items: []OrderItemInput{
				{Quantity: 2, UnitPrice: decimal.NewFromInt(100), Taxable: true},
				{Quantity: 3, UnitPrice: decimal.NewFromInt(50), Taxable: false},
				{Quantity: 0, UnitPrice: decimal.NewFromInt(20), Taxable: true},
			},
		})
	}
	return out
}
