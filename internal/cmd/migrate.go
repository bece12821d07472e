package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/orderbench/internal/config"
	"github.com/yungbote/orderbench/internal/data/db"
	"github.com/yungbote/orderbench/internal/platform/logger"
	"github.com/yungbote/orderbench/internal/utils"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the entity tables and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log, err := logger.New(utils.GetEnv("LOG_MODE", "development", nil))
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gdb, err := openDB(cfg, log)
	if err != nil {
		return err
	}
	if err := db.AutoMigrateAll(gdb); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	log.Info("Migration complete", "driver", cfg.DB.Driver)
	return nil
}
