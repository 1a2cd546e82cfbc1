package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// getQuerier - возвращает транзакцию или пул соединений
func getQuerier(pool *pgxpool.Pool, tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return pool
}

func countRows(ctx context.Context, q Querier, table string) (uint64, error) {
	query, args, err := psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса COUNT для %s: %w", table, err)
	}
	var total uint64
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("ошибка подсчета %s: %w", table, err)
	}
	return total, nil
}

// pageOf добавляет LIMIT/OFFSET к запросу списка.
func pageOf(b sq.SelectBuilder, page types.PageRequest) sq.SelectBuilder {
	return b.Limit(page.Size).Offset(page.Offset())
}

func updateByID(ctx context.Context, q Querier, table string, id uint64, set map[string]interface{}) error {
	query, args, err := psql.Update(table).
		SetMap(set).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса UPDATE для %s: %w", table, err)
	}

	result, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления %s: %w", table, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, q Querier, table string, id uint64) error {
	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса DELETE для %s: %w", table, err)
	}

	result, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка удаления из %s: %w", table, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func deleteAll(ctx context.Context, q Querier, table string) (int64, error) {
	query, args, err := psql.Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса DELETE для %s: %w", table, err)
	}

	result, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("ошибка очистки %s: %w", table, err)
	}
	return result.RowsAffected(), nil
}

// notFound превращает pgx.ErrNoRows в ErrNotFound, остальное оборачивает.
func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("ошибка сканирования %s: %w", what, err)
}
