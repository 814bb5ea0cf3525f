package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"table-reservation/internal/handler/middleware"
	"table-reservation/internal/infra/db"
	"table-reservation/internal/infra/migrate"
	"table-reservation/internal/pkg/config"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			pool, cleanup, err := db.Connect(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			return migrate.Up(ctx, pool, logger)
		},
	}
}
