package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/example/branch-scheduler/internal/branches"
	"github.com/example/branch-scheduler/internal/config"
	"github.com/example/branch-scheduler/internal/db"
	"github.com/example/branch-scheduler/internal/migrate"
	"github.com/example/branch-scheduler/internal/schedule"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Manage restaurant branches",
	}
	cmd.AddCommand(newBranchAddCmd())
	cmd.AddCommand(newBranchListCmd())
	cmd.AddCommand(newBranchShowCmd())
	return cmd
}

func withRepo(fn func(ctx context.Context, repo *branches.Repo) error) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	d, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer d.Close()

	if err := migrate.Up(ctx, d); err != nil {
		return err
	}
	return fn(ctx, branches.NewRepo(d))
}

func newBranchAddCmd() *cobra.Command {
	var name string

	c := &cobra.Command{
		Use:   "add",
		Short: "Create a branch with an empty weekly schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepo(func(ctx context.Context, repo *branches.Repo) error {
				b := branches.New(name)
				if err := repo.Create(ctx, b); err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "created branch %q (%s)\n", b.Name, b.ID)
				return nil
			})
		},
	}

	c.Flags().StringVar(&name, "name", "", "branch name")
	_ = c.MarkFlagRequired("name")
	return c
}

func newBranchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List branches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepo(func(ctx context.Context, repo *branches.Repo) error {
				bs, err := repo.List(ctx)
				if err != nil {
					return err
				}
				for _, b := range bs {
					state := "disabled"
					if b.Enabled {
						state = "enabled"
					}
					draft := ""
					if b.Draft != nil {
						draft = " [draft open]"
					}
					fmt.Fprintf(os.Stdout, "%s  %-24s %3d min  %s%s\n", b.ID, b.Name, b.ReservationDuration, state, draft)
				}
				return nil
			})
		},
	}
}

func newBranchShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <branch-id>",
		Short: "Print a branch's weekly schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid branch id: %w", err)
			}
			return withRepo(func(ctx context.Context, repo *branches.Repo) error {
				b, err := repo.GetByID(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "%s  reservation duration %d min\n", b.Name, b.ReservationDuration)
				for _, day := range schedule.Weekdays {
					raw, err := json.Marshal(b.Schedule[day])
					if err != nil {
						return err
					}
					fmt.Fprintf(os.Stdout, "  %-10s %s\n", day, raw)
				}
				return nil
			})
		},
	}
}
