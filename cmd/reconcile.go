package main

import (
	"context"
	"domainsync/internal/config"
	"domainsync/internal/reconciler"
	"domainsync/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reconcileCommand constructs the 'reconcile' subcommand. By default it
// schedules a cycle for the workers; with --now it runs the cycle in process
// and prints the resulting summary.
func reconcileCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconciles cached domain registrations with the registrar",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			now, _ := cmd.Flags().GetBool("now")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			rec := reconciler.New(strg, getRegistrar(ctx, cfg), getRecorder(ctx), reconciler.NewOptions(cfg))

			if !now {
				added, err := rec.Enqueue(ctx)
				if err != nil {
					logger.Fatal(ctx, "could not schedule reconciliation", zap.Error(err))
				}
				logger.Info(ctx, "reconciliation scheduled", zap.Bool("added", added))

				return
			}

			plan, err := rec.Run(ctx)
			if err != nil {
				logger.Fatal(ctx, "reconciliation failed", zap.Error(err))
			}

			fmt.Println(plan.Summary()) //nolint: forbidigo
		},
	}

	cmd.Flags().Bool("now", false, "Run the cycle in this process instead of scheduling it")

	return cmd
}
