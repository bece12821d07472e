package persist_test

import (
	"context"
	"testing"

	"github.com/yungbote/orderbench/internal/data/persist"
	"github.com/yungbote/orderbench/internal/data/session"
	"github.com/yungbote/orderbench/internal/data/testutil"
	"github.com/yungbote/orderbench/internal/domain/orders"
)

// Run with: go test -bench=. -benchmem ./internal/data/persist/
//
// These exercise every strategy against in-memory sqlite with the same
// 50-aggregate input, mirroring the wall-time/allocation comparison the
// bench CLI runs against postgres.
const benchInputs = 50

func benchmarkStrategy(b *testing.B, name string) {
	gdb := testutil.DB(b)
	logg := testutil.Logger(b)
	factory := session.NewGormFactory(gdb, logg)

	var st persist.Strategy
	for _, s := range persist.All(factory, logg, persist.DefaultBatchSize) {
		if s.Name() == name {
			st = s
		}
	}
	if st == nil {
		b.Fatalf("unknown strategy %q", name)
	}

	inputs := orders.Generate(benchInputs)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := st.Save(ctx, inputs); err != nil {
			b.Fatalf("Save: %v", err)
		}
	}
}

func BenchmarkRowByRow(b *testing.B)          { benchmarkStrategy(b, persist.NameRowByRow) }
func BenchmarkDeclarative(b *testing.B)       { benchmarkStrategy(b, persist.NameDeclarative) }
func BenchmarkBulkGrouped(b *testing.B)       { benchmarkStrategy(b, persist.NameBulkGrouped) }
func BenchmarkConcurrent(b *testing.B)        { benchmarkStrategy(b, persist.NameConcurrent) }
func BenchmarkConcurrentGraph(b *testing.B)   { benchmarkStrategy(b, persist.NameConcurrentGraph) }
func BenchmarkConcurrentBatched(b *testing.B) { benchmarkStrategy(b, persist.NameConcurrentBatched) }
