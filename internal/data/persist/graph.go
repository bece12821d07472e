package persist

import (
	"context"

	"github.com/yungbote/orderbench/internal/data/session"
	"github.com/yungbote/orderbench/internal/domain/orders"
	"github.com/yungbote/orderbench/internal/platform/logger"
)

// concurrentGraph has the same fan-out shape as concurrent, but each unit
// stages its whole aggregate linked by in-memory reference and commits once.
// The store client inserts parents first and assigns foreign keys during
// that one commit, collapsing three round trips into one. No filtering
// happens here: every input and every item is persisted as built.
type concurrentGraph struct {
	sessions session.Factory
	log      *logger.Logger
}

func NewConcurrentGraph(sessions session.Factory, baseLog *logger.Logger) Strategy {
	return &concurrentGraph{sessions: sessions, log: baseLog.With("strategy", NameConcurrentGraph)}
}

func (s *concurrentGraph) Name() string { return NameConcurrentGraph }

func (s *concurrentGraph) Save(ctx context.Context, inputs []orders.OrderInput) error {
	return fanOut(len(inputs), func(unit int) error {
		sess, err := s.sessions.Acquire(ctx)
		if err != nil {
			return err
		}
		defer sess.Release()

		sess.Add(inputs[unit].Graph())
		return sess.Commit(ctx)
	})
}
