package cmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/yungbote/orderbench/internal/bench"
	"github.com/yungbote/orderbench/internal/config"
	"github.com/yungbote/orderbench/internal/data/db"
	"github.com/yungbote/orderbench/internal/data/persist"
	"github.com/yungbote/orderbench/internal/data/session"
	"github.com/yungbote/orderbench/internal/domain/orders"
	"github.com/yungbote/orderbench/internal/platform/logger"
	"github.com/yungbote/orderbench/internal/utils"
)

var (
	flagCount      int
	flagBatchSize  int
	flagStrategies []string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every persistence strategy against identical generated input",
	RunE:  runBench,
}

func init() {
	runCmd.Flags().IntVar(&flagCount, "count", 0, "number of input aggregates (overrides config)")
	runCmd.Flags().IntVar(&flagBatchSize, "batch-size", 0, "batch size for the batched strategy (overrides config)")
	runCmd.Flags().StringSliceVar(&flagStrategies, "strategies", nil, "strategies to run (default all)")
	rootCmd.AddCommand(runCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	log, err := logger.New(utils.GetEnv("LOG_MODE", "development", nil))
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagCount > 0 {
		cfg.Bench.Count = flagCount
	}
	if flagBatchSize != 0 {
		cfg.Bench.BatchSize = flagBatchSize
	}
	if len(flagStrategies) > 0 {
		cfg.Bench.Strategies = flagStrategies
	}

	gdb, err := openDB(cfg, log)
	if err != nil {
		return err
	}
	if err := db.AutoMigrateAll(gdb); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	factory := session.NewGormFactory(gdb, log)
	strategies := selectStrategies(
		persist.All(factory, log, cfg.Bench.BatchSize),
		cfg.Bench.Strategies,
	)
	if len(strategies) == 0 {
		return fmt.Errorf("no strategy matches %v", cfg.Bench.Strategies)
	}

	inputs := orders.Generate(cfg.Bench.Count)
	log.Info("Starting benchmark run",
		"driver", cfg.DB.Driver,
		"inputs", len(inputs),
		"batch_size", cfg.Bench.BatchSize,
		"strategies", len(strategies),
	)

	runner := bench.NewRunner(gdb, log)
	results, err := runner.Run(context.Background(), strategies, inputs)
	if err != nil {
		return err
	}

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d strategies failed", failed, len(results))
	}
	return nil
}

func openDB(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	switch cfg.DB.Driver {
	case "postgres":
		return db.OpenPostgres(cfg.DB, log)
	case "sqlite":
		return db.OpenSqlite(cfg.DB.DSN, log)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DB.Driver)
	}
}

func selectStrategies(all []persist.Strategy, names []string) []persist.Strategy {
	if len(names) == 0 {
		return all
	}
	out := make([]persist.Strategy, 0, len(all))
	for _, st := range all {
		if slices.Contains(names, st.Name()) {
			out = append(out, st)
		}
	}
	return out
}
