// Package persist implements the six interchangeable strategies for writing
// Customer→Order→{Items, Payment, Shipping} aggregates to the store. All of
// them take the same input list and differ only in round-trip count, commit
// granularity, and concurrency shape.
package persist

import (
	"context"

	"github.com/yungbote/orderbench/internal/data/session"
	"github.com/yungbote/orderbench/internal/domain/orders"
	"github.com/yungbote/orderbench/internal/platform/logger"
)

const (
	NameRowByRow          = "row_by_row"
	NameDeclarative       = "declarative"
	NameBulkGrouped       = "bulk_grouped"
	NameConcurrent        = "concurrent"
	NameConcurrentGraph   = "concurrent_graph"
	NameConcurrentBatched = "concurrent_batched"
)

// DefaultBatchSize is the batch width of the concurrent batched strategy
// when the caller does not configure one.
const DefaultBatchSize = 100

// Strategy turns a list of input aggregates into persisted rows. The effect
// is entirely the rows in the store; there is no result beyond success or
// failure of the whole invocation.
type Strategy interface {
	Name() string
	Save(ctx context.Context, inputs []orders.OrderInput) error
}

// All returns every strategy wired to the given session factory, in the
// order they are benchmarked.
func All(sessions session.Factory, log *logger.Logger, batchSize int) []Strategy {
	return []Strategy{
		NewRowByRow(sessions, log),
		NewDeclarative(sessions, log),
		NewBulkGrouped(sessions, log),
		NewConcurrent(sessions, log),
		NewConcurrentGraph(sessions, log),
		NewConcurrentBatched(sessions, log, batchSize),
	}
}
