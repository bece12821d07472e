package persist

import (
	"context"
	"sync"

	"github.com/yungbote/orderbench/internal/data/session"
	"github.com/yungbote/orderbench/internal/domain/orders"
	"github.com/yungbote/orderbench/internal/platform/logger"
)

// concurrent launches one unit of work per aggregate, each with its own
// session and the same three-commit plan as the baseline. Fan-out is
// unbounded; the caller keeps the input size reasonable.
type concurrent struct {
	sessions session.Factory
	log      *logger.Logger
}

func NewConcurrent(sessions session.Factory, baseLog *logger.Logger) Strategy {
	return &concurrent{sessions: sessions, log: baseLog.With("strategy", NameConcurrent)}
}

func (s *concurrent) Name() string { return NameConcurrent }

func (s *concurrent) Save(ctx context.Context, inputs []orders.OrderInput) error {
	return fanOut(len(inputs), func(unit int) error {
		in := inputs[unit]
		if in.Skippable() {
			return nil
		}
		sess, err := s.sessions.Acquire(ctx)
		if err != nil {
			return err
		}
		defer sess.Release()
		return saveAggregate(ctx, sess, in)
	})
}

// fanOut runs n units concurrently and joins at a barrier. Every unit runs
// to completion; one unit's failure never cancels a sibling. The outcomes of
// all failed units are collected into a single AggregateError, not just the
// first one observed.
func fanOut(n int, run func(unit int) error) error {
	if n == 0 {
		return nil
	}

	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(unit int) {
			defer wg.Done()
			errs[unit] = run(unit)
		}(i)
	}
	wg.Wait()

	var units []UnitError
	for i, err := range errs {
		if err != nil {
			units = append(units, UnitError{Unit: i, Err: err})
		}
	}
	if len(units) > 0 {
		return &AggregateError{Units: units}
	}
	return nil
}
