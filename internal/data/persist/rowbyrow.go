package persist

import (
	"context"

	"github.com/yungbote/orderbench/internal/data/session"
	"github.com/yungbote/orderbench/internal/domain/orders"
	"github.com/yungbote/orderbench/internal/platform/logger"
)

// rowByRow is the baseline: one session for the whole run, three commits per
// aggregate (customer, order, then children), skip filter applied
// imperatively. It is the performance floor the other strategies are
// measured against.
type rowByRow struct {
	sessions session.Factory
	log      *logger.Logger
}

func NewRowByRow(sessions session.Factory, baseLog *logger.Logger) Strategy {
	return &rowByRow{sessions: sessions, log: baseLog.With("strategy", NameRowByRow)}
}

func (s *rowByRow) Name() string { return NameRowByRow }

func (s *rowByRow) Save(ctx context.Context, inputs []orders.OrderInput) error {
	sess, err := s.sessions.Acquire(ctx)
	if err != nil {
		return err
	}
	defer sess.Release()

	for _, in := range inputs {
		if in.Skippable() {
			continue
		}
		if err := saveAggregate(ctx, sess, in); err != nil {
			return err
		}
	}
	return nil
}

// saveAggregate runs the three-commit plan for one aggregate on an already
// acquired session. Each commit is its own durability point; a failure
// leaves prior commits intact.
func saveAggregate(ctx context.Context, sess session.Session, in orders.OrderInput) error {
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

	for _, item := range in.Items {
		if !item.Valid() {
			continue
		}
		row := item.Row(order.ID)
		sess.Add(&row)
	}
	sess.Add(orders.PlaceholderPayment(order.ID))
	sess.Add(orders.PlaceholderShipping(order.ID))
	return sess.Commit(ctx)
}
