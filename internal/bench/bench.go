// Package bench drives the persistence strategies against identical input
// and measures wall time and allocation deltas around each invocation. The
// engine itself returns nothing; everything observable lives in the store.
package bench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/orderbench/internal/data/persist"
	"github.com/yungbote/orderbench/internal/domain/orders"
	"github.com/yungbote/orderbench/internal/platform/logger"
)

// RowCounts is the per-table row tally used to verify a strategy run.
type RowCounts struct {
	Customers int64
	Orders    int64
	Items     int64
	Payments  int64
	Shipping  int64
}

// CollectRowCounts counts the five entity tables, one query per table run
// concurrently.
func CollectRowCounts(ctx context.Context, gdb *gorm.DB) (RowCounts, error) {
	var counts RowCounts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return gdb.WithContext(gctx).Model(&orders.Customer{}).Count(&counts.Customers).Error
	})
	g.Go(func() error {
		return gdb.WithContext(gctx).Model(&orders.Order{}).Count(&counts.Orders).Error
	})
	g.Go(func() error {
		return gdb.WithContext(gctx).Model(&orders.OrderItem{}).Count(&counts.Items).Error
	})
	g.Go(func() error {
		return gdb.WithContext(gctx).Model(&orders.Payment{}).Count(&counts.Payments).Error
	})
	g.Go(func() error {
		return gdb.WithContext(gctx).Model(&orders.ShippingDetail{}).Count(&counts.Shipping).Error
	})
	if err := g.Wait(); err != nil {
		return RowCounts{}, fmt.Errorf("failed to count rows: %w", err)
	}
	return counts, nil
}

// Result is one strategy's measurement over one input set.
type Result struct {
	Strategy   string
	Inputs     int
	Duration   time.Duration
	AllocBytes uint64
	Mallocs    uint64
	Counts     RowCounts
	Err        error
}

type Runner struct {
	db    *gorm.DB
	log   *logger.Logger
	runID uuid.UUID
}

func NewRunner(gdb *gorm.DB, baseLog *logger.Logger) *Runner {
	runID := uuid.New()
	return &Runner{
		db:    gdb,
		log:   baseLog.With("component", "BenchRunner", "run_id", runID.String()),
		runID: runID,
	}
}

// Run executes each strategy against the same input list, resetting the
// strategy tables before each invocation so every strategy sees an identical
// store. A failing strategy is recorded and the run moves on.
func (r *Runner) Run(ctx context.Context, strategies []persist.Strategy, inputs []orders.OrderInput) ([]Result, error) {
	results := make([]Result, 0, len(strategies))
	for _, st := range strategies {
		if err := r.Reset(ctx); err != nil {
			return results, err
		}
		res := r.measure(ctx, st, inputs)
		counts, err := CollectRowCounts(ctx, r.db)
		if err != nil {
			return results, err
		}
		res.Counts = counts

		if res.Err != nil {
			r.log.Error("Strategy failed",
				"strategy", res.Strategy, "inputs", res.Inputs, "error", res.Err)
		} else {
			r.log.Info("Strategy finished",
				"strategy", res.Strategy,
				"inputs", res.Inputs,
				"duration", res.Duration,
				"alloc_bytes", res.AllocBytes,
				"mallocs", res.Mallocs,
				"customers", counts.Customers,
				"orders", counts.Orders,
				"items", counts.Items,
			)
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) measure(ctx context.Context, st persist.Strategy, inputs []orders.OrderInput) Result {
	runtime.GC()
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	start := time.Now()
	err := st.Save(ctx, inputs)
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)
	return Result{
		Strategy:   st.Name(),
		Inputs:     len(inputs),
		Duration:   elapsed,
		AllocBytes: after.TotalAlloc - before.TotalAlloc,
		Mallocs:    after.Mallocs - before.Mallocs,
		Err:        err,
	}
}

// Reset clears the strategy tables, children first so foreign keys never
// dangle mid-reset.
func (r *Runner) Reset(ctx context.Context) error {
	models := []any{
		&orders.OrderItem{},
		&orders.Payment{},
		&orders.ShippingDetail{},
		&orders.Order{},
		&orders.Customer{},
	}
	for _, m := range models {
		if err := r.db.WithContext(ctx).
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(m).Error; err != nil {
			return fmt.Errorf("failed to reset tables: %w", err)
		}
	}
	return nil
}
