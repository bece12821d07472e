package persist

import (
	"context"

	"github.com/yungbote/orderbench/internal/data/session"
	"github.com/yungbote/orderbench/internal/domain/orders"
	"github.com/yungbote/orderbench/internal/platform/logger"
)

// bulkGrouped partitions work by entity type across the whole input set:
// all customers in one bulk add, then all orders, then every child row in a
// final commit. Three commits regardless of input size, at the cost of a
// phase-three failure touching every aggregate. No skip or item filter runs
// here; every input yields a customer and an order.
type bulkGrouped struct {
	sessions session.Factory
	log      *logger.Logger
}

func NewBulkGrouped(sessions session.Factory, baseLog *logger.Logger) Strategy {
	return &bulkGrouped{sessions: sessions, log: baseLog.With("strategy", NameBulkGrouped)}
}

func (s *bulkGrouped) Name() string { return NameBulkGrouped }

func (s *bulkGrouped) Save(ctx context.Context, inputs []orders.OrderInput) error {
	sess, err := s.sessions.Acquire(ctx)
	if err != nil {
		return err
	}
	defer sess.Release()
	return bulkSave(ctx, sess, inputs)
}

// bulkSave runs the grouped write plan on one session. The batched strategy
// reuses it per batch.
func bulkSave(ctx context.Context, sess session.Session, inputs []orders.OrderInput) error {
	if len(inputs) == 0 {
		return nil
	}

	// Phase 1: all customers, one commit resolving every customer identity.
	customers := make([]*orders.Customer, 0, len(inputs))
	for _, in := range inputs {
		customers = append(customers, &orders.Customer{Name: in.CustomerName})
	}
	sess.AddAll(customers)
	if err := sess.Commit(ctx); err != nil {
		return err
	}

	// Phase 2: one order per customer, matched by position.
	orderRows := make([]*orders.Order, 0, len(customers))
	for _, c := range customers {
		orderRows = append(orderRows, &orders.Order{CustomerID: c.ID})
	}
	sess.AddAll(orderRows)
	if err := sess.Commit(ctx); err != nil {
		return err
	}

	// Phase 3: the full cross-aggregate child lists, single final commit.
	var items []*orders.OrderItem
	payments := make([]*orders.Payment, 0, len(inputs))
	shipping := make([]*orders.ShippingDetail, 0, len(inputs))
	for i, in := range inputs {
		order := orderRows[i]
		for _, it := range in.Items {
			row := it.Row(order.ID)
			items = append(items, &row)
		}
		payments = append(payments, orders.PlaceholderPayment(order.ID))
		shipping = append(shipping, orders.PlaceholderShipping(order.ID))
	}
	sess.AddAll(items)
	sess.AddAll(payments)
	sess.AddAll(shipping)
	return sess.Commit(ctx)
}
