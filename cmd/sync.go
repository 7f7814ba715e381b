package main

import (
	"context"
	"domainsync/internal/api"
	"domainsync/internal/api/handler/v1handler"
	"domainsync/internal/config"
	"domainsync/internal/contactsync"
	"domainsync/internal/reconciler"
	"domainsync/internal/worker"
	"domainsync/pkg/logger"
	"domainsync/pkg/notifier/slack"
	"domainsync/pkg/storage"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServer(ctx context.Context, cfg *config.Config, deps api.Deps) *http.Server {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	return server
}

func runServer(ctx context.Context, server *http.Server) error {
	logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not start webserver: %w", err)
	}

	return nil
}

func stopServer(ctx context.Context, server *http.Server) error {
	logger.Info(ctx, "stopping webserver...")
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not stop webserver: %w", err)
	}

	return nil
}

func stopWorkers(ctx context.Context, riverClient *river.Client[pgx.Tx]) error {
	logger.Info(ctx, "stopping workers...")
	if err := riverClient.Stop(ctx); err != nil {
		return fmt.Errorf("could not stop workers: %w", err)
	}

	return nil
}

// syncCommand constructs the 'sync' subcommand that runs the API server, the
// job workers and the daily reconciliation schedule until interrupted.
func syncCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Starts API server, background workers and the reconciliation schedule",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			var strg storage.Storage = pgsql
			client := getRegistrar(ctx, cfg)
			recorder := getRecorder(ctx)
			notifier := slack.New(slack.Options{
				Endpoint:   cfg.Notifications.SlackEndpoint,
				HTTPClient: slack.NewHTTPClient(cfg.Notifications.Timeout, cfg.Notifications.AllowPrivateEndpoints),
			})

			rec := reconciler.New(strg, client, recorder, reconciler.NewOptions(cfg))
			syncer := contactsync.New(strg, client, recorder, contactsync.NewOptions(cfg))

			workerOpts, err := worker.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "invalid sync schedule", zap.Error(err))
			}
			riverClient, err := worker.Start(ctx, pgsql.Pool, worker.Deps{
				Reconciler: rec,
				Syncer:     syncer,
				Notifier:   notifier,
			}, workerOpts)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}
			logger.Info(ctx, "workers started", zap.Any("schedule", workerOpts.Schedule))

			server := newServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Reconciler: rec,
					Syncer:     syncer,
					Storage:    strg,
				},
				RiverClient: riverClient,
			})

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return runServer(ctx, server)
			})
			g.Go(func() error {
				// wait for interrupt or a failed webserver
				<-gCtx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				return errors.Join(stopServer(shutdownCtx, server), stopWorkers(shutdownCtx, riverClient))
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "sync stopped with errors", zap.Error(err))
			}
		},
	}

	return cmd
}
