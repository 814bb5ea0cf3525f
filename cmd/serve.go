package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"table-reservation/cmd/bootstrap"
	"table-reservation/internal/infra/migrate"
	"table-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newServeCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the reservation web form and API",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []fx.Option{
				bootstrap.Module,
				fx.NopLogger,
				fx.Provide(gin.New),
			}
			if migrateUp {
				opts = append(opts, fx.Invoke(runMigrations))
			}
			opts = append(opts, fx.Invoke(startServer))

			app := fx.New(opts...)
			if err := app.Start(context.Background()); err != nil {
				return err
			}

			<-app.Done()

			stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := app.Stop(stopCtx); err != nil {
				slog.Error("application did not stop cleanly", "error", err)
			}
			slog.Info("application stopped")
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "apply database migrations on startup")
	return cmd
}

func runMigrations(lc fx.Lifecycle, pool *pgxpool.Pool, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return migrate.Up(ctx, pool, logger)
		},
	})
}

// @title           Le Gourmet reservations
// @version         1.0
// @description     Table reservation form and availability API.

// @BasePath  /
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}
