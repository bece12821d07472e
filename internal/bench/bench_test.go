package bench_test

import (
	"context"
	"testing"

	"github.com/yungbote/orderbench/internal/bench"
	"github.com/yungbote/orderbench/internal/data/persist"
	"github.com/yungbote/orderbench/internal/data/session"
	"github.com/yungbote/orderbench/internal/data/testutil"
	"github.com/yungbote/orderbench/internal/domain/orders"
)

func TestRunnerResetsBetweenStrategies(t *testing.T) {
	gdb := testutil.DB(t)
	logg := testutil.Logger(t)
	factory := session.NewGormFactory(gdb, logg)
	ctx := context.Background()

	strategies := []persist.Strategy{
		persist.NewRowByRow(factory, logg),
		persist.NewBulkGrouped(factory, logg),
	}
	inputs := orders.Generate(4)

	runner := bench.NewRunner(gdb, logg)
	results, err := runner.Run(ctx, strategies, inputs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}

	for _, res := range results {
		if res.Err != nil {
			t.Fatalf("strategy %s failed: %v", res.Strategy, res.Err)
		}
		if res.Inputs != 4 {
			t.Fatalf("strategy %s inputs = %d", res.Strategy, res.Inputs)
		}
		if res.Duration <= 0 {
			t.Fatalf("strategy %s duration = %v", res.Strategy, res.Duration)
		}
		// Each strategy ran against a reset store: four aggregates, not an
		// accumulation from the previous strategy.
		if res.Counts.Customers != 4 || res.Counts.Orders != 4 {
			t.Fatalf("strategy %s counts = %+v", res.Strategy, res.Counts)
		}
	}

	// The last reset + run leaves exactly one strategy's rows behind.
	counts, err := bench.CollectRowCounts(ctx, gdb)
	if err != nil {
		t.Fatalf("CollectRowCounts: %v", err)
	}
	if counts.Customers != 4 {
		t.Fatalf("final customers = %d, want 4", counts.Customers)
	}
}

func TestCollectRowCounts(t *testing.T) {
	gdb := testutil.DB(t)
	logg := testutil.Logger(t)
	factory := session.NewGormFactory(gdb, logg)

	st := persist.NewBulkGrouped(factory, logg)
	if err := st.Save(context.Background(), orders.Generate(3)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	counts, err := bench.CollectRowCounts(context.Background(), gdb)
	if err != nil {
		t.Fatalf("CollectRowCounts: %v", err)
	}
	want := bench.RowCounts{Customers: 3, Orders: 3, Items: 9, Payments: 3, Shipping: 3}
	if counts != want {
		t.Fatalf("counts = %+v, want %+v", counts, want)
	}
}
