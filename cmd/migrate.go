package main

import (
	"context"
	"database/sql"
	root "domainsync"
	"domainsync/internal/config"
	"domainsync/pkg/logger"
	"domainsync/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that creates or upgrades
// the registration snapshot, contact and job queue tables.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := postgres.Migrate(ctx, strg.DB.(*sql.DB), root.Migrations); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}
			logger.Info(ctx, "database is up to date")
		},
	}

	return cmd
}
