package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rental-system/pkg/config"
	"rental-system/pkg/database/postgresql"
	applogger "rental-system/pkg/logger"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:           "rentalctl",
	Short:         "Служебные команды сервиса аренды техники",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// env - общие зависимости подкоманд.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *pgxpool.Pool
}

func connect(ctx context.Context) (*env, error) {
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Logging)

	db, err := postgresql.ConnectDB(ctx, cfg.Postgres, logger)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, db: db}, nil
}

func (e *env) close() {
	e.db.Close()
	_ = e.logger.Sync()
}

// run оборачивает тело команды: подключение, вывод ошибки красным, код выхода 1.
func run(fn func(ctx context.Context, e *env, args []string) error) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		e, err := connect(ctx)
		if err != nil {
			fmt.Println(red("❌ Ошибка подключения:"), err)
			os.Exit(1)
		}
		defer e.close()

		if err := fn(ctx, e, args); err != nil {
			fmt.Println(red("❌"), err)
			e.close()
			os.Exit(1)
		}
	}
}
