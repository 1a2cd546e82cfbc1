package main

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"rental-system/pkg/database/postgresql"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Управление схемой БД (goose, встроенные миграции)",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Применить все новые миграции",
	Run: run(func(ctx context.Context, e *env, _ []string) error {
		m, err := postgresql.NewMigrator(e.db)
		if err != nil {
			return err
		}
		results, err := m.Up(ctx)
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		if len(results) == 0 {
			fmt.Println(yellow("ℹ️  Новых миграций нет"))
			return nil
		}
		for _, r := range results {
			fmt.Printf("%s %s (%s)\n", green("✅"), r.Source.Path, r.Duration)
		}
		return nil
	}),
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Откатить последнюю миграцию",
	Run: run(func(ctx context.Context, e *env, _ []string) error {
		m, err := postgresql.NewMigrator(e.db)
		if err != nil {
			return err
		}
		r, err := m.Down(ctx)
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		fmt.Printf("%s откат %s\n", green("✅"), r.Source.Path)
		return nil
	}),
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Показать примененные и ожидающие миграции",
	Run: run(func(ctx context.Context, e *env, _ []string) error {
		m, err := postgresql.NewMigrator(e.db)
		if err != nil {
			return err
		}
		statuses, err := m.Status(ctx)
		if err != nil {
			return fmt.Errorf("migrate status: %w", err)
		}
		for _, s := range statuses {
			if s.State == goose.StateApplied {
				fmt.Printf("%s %-30s %s\n", green("✅"), s.Source.Path, s.AppliedAt.Format("2006-01-02 15:04:05"))
			} else {
				fmt.Printf("%s %-30s %s\n", yellow("🕒"), s.Source.Path, "ожидает")
			}
		}
		return nil
	}),
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}
