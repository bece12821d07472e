package persist

import (
	"context"

	"github.com/yungbote/orderbench/internal/data/session"
	"github.com/yungbote/orderbench/internal/domain/orders"
	"github.com/yungbote/orderbench/internal/platform/logger"
)

// declarative follows the exact write plan of rowByRow but expresses the
// skip and item filters as set transformations over the input instead of
// inline branches. Persisted rows are identical to the baseline for the same
// input.
type declarative struct {
	sessions session.Factory
	log      *logger.Logger
}

func NewDeclarative(sessions session.Factory, baseLog *logger.Logger) Strategy {
	return &declarative{sessions: sessions, log: baseLog.With("strategy", NameDeclarative)}
}

func (s *declarative) Name() string { return NameDeclarative }

func (s *declarative) Save(ctx context.Context, inputs []orders.OrderInput) error {
	sess, err := s.sessions.Acquire(ctx)
	if err != nil {
		return err
	}
	defer sess.Release()

	kept := filterSlice(inputs, func(in orders.OrderInput) bool { return !in.Skippable() })
	for _, in := range kept {
		customer := &orders.Customer{Name: in.CustomerName}
		sess.Add(customer)
		if err := sess.Commit(ctx); err != nil {
			return err
		}

		order := &orders.Order{CustomerID: customer.ID}
		sess.Add(order)
		if err := sess.Commit(ctx); err != nil {
			return err
		}

		items := mapSlice(
			filterSlice(in.Items, orders.OrderItemInput.Valid),
			func(it orders.OrderItemInput) *orders.OrderItem {
				row := it.Row(order.ID)
				return &row
			},
		)
		sess.AddAll(items)
		sess.Add(orders.PlaceholderPayment(order.ID))
		sess.Add(orders.PlaceholderShipping(order.ID))
		if err := sess.Commit(ctx); err != nil {
			return err
		}
	}
	return nil
}

func filterSlice[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func mapSlice[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
