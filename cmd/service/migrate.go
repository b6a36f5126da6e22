package service

import (
	"context"
	"fmt"
	"io"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/breeew/datas-api/internal/core"
	"github.com/breeew/datas-api/internal/store/sqlstore"
)

func NewMigrateCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "manage the datas schema",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}
			return Migrate(cmd.Context(), opts.ConfigPath, action, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file path, environment variables are used when empty")
	return cmd
}

func Migrate(ctx context.Context, configPath, action string, out io.Writer) error {
	cfg, err := core.LoadBaseConfig(configPath)
	if err != nil {
		return err
	}

	provider, err := sqlstore.Setup(ctx, cfg.Database.Master())
	if err != nil {
		return err
	}
	defer provider.Close()

	m, err := provider.Migrator()
	if err != nil {
		return err
	}

	switch action {
	case "up":
		res, err := m.Up(ctx)
		for _, r := range res {
			fmt.Fprintf(out, "OK   %s (%s)\n", r.Source.Path, r.Duration)
		}
		return err
	case "down":
		r, err := m.Down(ctx)
		if r != nil {
			fmt.Fprintf(out, "OK   %s (%s)\n", r.Source.Path, r.Duration)
		}
		return err
	case "status":
		list, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range list {
			applied := "Pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(out, "%-20s %s\n", applied, s.Source.Path)
		}
		return nil
	default:
		return fmt.Errorf("unknown migrate action %q", action)
	}
}
