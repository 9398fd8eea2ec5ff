package cmd

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/suggestbox/suggestbox/internal/config"
	"github.com/suggestbox/suggestbox/internal/infra/db"
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(p *goose.Provider) error {
			results, err := p.Up(cmd.Context())
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return err
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(p *goose.Provider) error {
			r, err := p.Down(cmd.Context())
			if r != nil {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return err
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(p *goose.Provider) error {
			statuses, err := p.Status(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range statuses {
				applied := "pending"
				if s.State == goose.StateApplied {
					applied = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-6d %-32s %s\n", s.Source.Version, s.Source.Path, applied)
			}
			return nil
		})
	},
}

func init() {
	MigrateCmd.AddCommand(migrateUpCmd)
	MigrateCmd.AddCommand(migrateDownCmd)
	MigrateCmd.AddCommand(migrateStatusCmd)
}

// withMigrator opens the configured database without the container, so
// database.auto_migrate never runs ahead of an explicit migrate command.
func withMigrator(fn func(p *goose.Provider) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	d, err := db.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(d) }()

	p, err := db.NewMigrator(d, cfg.Database.Driver)
	if err != nil {
		return err
	}
	return fn(p)
}
