package persist

import (
	"context"
	"fmt"

	"github.com/yungbote/orderbench/internal/data/session"
	"github.com/yungbote/orderbench/internal/domain/orders"
	apperrors "github.com/yungbote/orderbench/internal/pkg/errors"
	"github.com/yungbote/orderbench/internal/platform/logger"
)

// concurrentBatched partitions the input into fixed-size batches and runs
// the bulk-grouped plan once per batch, with batches in flight concurrently.
// A failing batch affects only its own members.
type concurrentBatched struct {
	sessions  session.Factory
	log       *logger.Logger
	batchSize int
}

// NewConcurrentBatched builds the batched strategy. A batchSize below 1 is
// rejected at save time, before any session is acquired; pass
// DefaultBatchSize when the caller has no preference.
func NewConcurrentBatched(sessions session.Factory, baseLog *logger.Logger, batchSize int) Strategy {
	return &concurrentBatched{
		sessions:  sessions,
		log:       baseLog.With("strategy", NameConcurrentBatched),
		batchSize: batchSize,
	}
}

func (s *concurrentBatched) Name() string { return NameConcurrentBatched }

func (s *concurrentBatched) Save(ctx context.Context, inputs []orders.OrderInput) error {
	if s.batchSize < 1 {
		return fmt.Errorf("batch size %d: %w", s.batchSize, apperrors.ErrInvalidArgument)
	}

	batches := partition(inputs, s.batchSize)
	return fanOut(len(batches), func(unit int) error {
		sess, err := s.sessions.Acquire(ctx)
		if err != nil {
			return err
		}
		defer sess.Release()
		return bulkSave(ctx, sess, batches[unit])
	})
}
