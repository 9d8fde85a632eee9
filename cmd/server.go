package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/branch-scheduler/internal/auth"
	"github.com/example/branch-scheduler/internal/branches"
	"github.com/example/branch-scheduler/internal/config"
	"github.com/example/branch-scheduler/internal/db"
	"github.com/example/branch-scheduler/internal/logger"
	"github.com/example/branch-scheduler/internal/migrate"
	"github.com/example/branch-scheduler/internal/schedule"
	"github.com/example/branch-scheduler/internal/sweeper"
	"github.com/example/branch-scheduler/internal/web"
	"github.com/spf13/cobra"
)

func newServerCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the schedule API + draft sweeper",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			d, err := db.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer d.Close()

			if err := d.Ping(ctx); err != nil {
				return fmt.Errorf("db ping: %w", err)
			}

			if migrateUp {
				if err := migrate.Up(ctx, d); err != nil {
					return err
				}
			}

			authStore := auth.NewStore(d, cfg.CookieHashKey, cfg.CookieBlockKey)
			repo := branches.NewRepo(d)
			bounds := schedule.DurationBounds{Min: cfg.MinDuration, Max: cfg.MaxDuration}
			svc := branches.NewService(repo, bounds, log)

			sw := &sweeper.Sweeper{
				Repo:     repo,
				TTL:      cfg.DraftTTL,
				Interval: cfg.SweepInterval,
				Log:      log.Named("sweeper"),
			}
			go func() { _ = sw.Run(ctx) }()

			ws := web.NewServer(authStore, svc, repo, log.Named("web"))
			return web.Start(ctx, cfg.ListenAddr, ws.Routes(), log)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "run database migrations on startup")
	cmd.Flags().Lookup("migrate").NoOptDefVal = "true"
	return cmd
}
