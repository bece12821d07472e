package persist_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/yungbote/orderbench/internal/data/persist"
	"github.com/yungbote/orderbench/internal/data/session"
	"github.com/yungbote/orderbench/internal/data/testutil"
	"github.com/yungbote/orderbench/internal/domain/orders"
	apperrors "github.com/yungbote/orderbench/internal/pkg/errors"
)

// countingFactory counts acquisitions on the way through to a real factory.
type countingFactory struct {
	inner    session.Factory
	acquired int64
}

func (f *countingFactory) Acquire(ctx context.Context) (session.Session, error) {
	atomic.AddInt64(&f.acquired, 1)
	return f.inner.Acquire(ctx)
}

// failingFactory refuses every acquisition.
type failingFactory struct{}

func (failingFactory) Acquire(ctx context.Context) (session.Session, error) {
	return nil, fmt.Errorf("pool exhausted: %w", apperrors.ErrSessionAcquisition)
}

// flakyFactory fails acquisition for a chosen set of units, in call order.
type flakyFactory struct {
	inner    session.Factory
	failFor  map[int]bool
	mu       sync.Mutex
	nextUnit int
}

func (f *flakyFactory) Acquire(ctx context.Context) (session.Session, error) {
	f.mu.Lock()
	unit := f.nextUnit
	f.nextUnit++
	f.mu.Unlock()
	if f.failFor[unit] {
		return nil, fmt.Errorf("unit refused: %w", apperrors.ErrSessionAcquisition)
	}
	return f.inner.Acquire(ctx)
}

func TestConcurrentDistinctCustomers(t *testing.T) {
	const n = 1000
	for _, name := range []string{persist.NameConcurrent, persist.NameConcurrentGraph} {
		t.Run(name, func(t *testing.T) {
			gdb := testutil.DB(t)
			st := newStrategies(t, gdb, persist.DefaultBatchSize)[name]

			if err := st.Save(context.Background(), orders.Generate(n)); err != nil {
				t.Fatalf("Save: %v", err)
			}

			var customers []orders.Customer
			if err := gdb.Find(&customers).Error; err != nil {
				t.Fatalf("load customers: %v", err)
			}
			if len(customers) != n {
				t.Fatalf("customers = %d, want %d", len(customers), n)
			}
			names := map[string]bool{}
			ids := map[int64]bool{}
			for _, c := range customers {
				if names[c.Name] {
					t.Fatalf("duplicate customer name %q", c.Name)
				}
				if ids[c.ID] {
					t.Fatalf("duplicate identity %d", c.ID)
				}
				if c.ID == 0 {
					t.Fatalf("missing identity for %q", c.Name)
				}
				names[c.Name] = true
				ids[c.ID] = true
			}
			assertNoOrphans(t, gdb)
		})
	}
}

func TestConcurrentSessionPerAggregate(t *testing.T) {
	gdb := testutil.DB(t)
	factory := &countingFactory{inner: session.NewGormFactory(gdb, testutil.Logger(t))}
	st := persist.NewConcurrent(factory, testutil.Logger(t))

	if err := st.Save(context.Background(), orders.Generate(8)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := atomic.LoadInt64(&factory.acquired); got != 8 {
		t.Fatalf("acquired %d sessions, want one per aggregate (8)", got)
	}
}

func TestGraphStrategySingleCommitPerAggregate(t *testing.T) {
	gdb := testutil.DB(t)
	st := newStrategies(t, gdb, persist.DefaultBatchSize)[persist.NameConcurrentGraph]

	if err := st.Save(context.Background(), exampleInputs()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// The staged graph resolves every FK during its one commit.
	c := countRows(t, gdb)
	if c.customers != 3 || c.orderRows != 3 || c.items != 9 || c.payments != 3 || c.shipping != 3 {
		t.Fatalf("rows = %+v", c)
	}
	assertNoOrphans(t, gdb)
}

func TestFanInCollectsEveryUnitFailure(t *testing.T) {
	st := persist.NewConcurrent(failingFactory{}, testutil.Logger(t))

	err := st.Save(context.Background(), orders.Generate(5))
	if err == nil {
		t.Fatalf("Save succeeded with a failing factory")
	}

	var agg *persist.AggregateError
	if !errors.As(err, &agg) {
		t.Fatalf("err = %T, want *AggregateError", err)
	}
	if len(agg.Units) != 5 {
		t.Fatalf("collected %d unit failures, want 5", len(agg.Units))
	}
	if !errors.Is(err, apperrors.ErrSessionAcquisition) {
		t.Fatalf("underlying causes not preserved: %v", err)
	}
}

func TestFailingUnitDoesNotBlockSiblings(t *testing.T) {
	gdb := testutil.DB(t)
	factory := &flakyFactory{
		inner:   session.NewGormFactory(gdb, testutil.Logger(t)),
		failFor: map[int]bool{2: true},
	}
	st := persist.NewConcurrent(factory, testutil.Logger(t))

	err := st.Save(context.Background(), orders.Generate(6))
	var agg *persist.AggregateError
	if !errors.As(err, &agg) {
		t.Fatalf("err = %v, want *AggregateError", err)
	}
	if len(agg.Units) != 1 {
		t.Fatalf("unit failures = %d, want 1", len(agg.Units))
	}

	// Five siblings must have committed their aggregates regardless.
	c := countRows(t, gdb)
	if c.customers != 5 || c.orderRows != 5 {
		t.Fatalf("sibling rows = %+v, want 5 aggregates", c)
	}
}
