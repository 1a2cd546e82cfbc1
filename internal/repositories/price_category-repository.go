package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/pkg/types"
)

const (
	priceCategoryTable  = "price_categories"
	priceCategoryFields = "id, date_start, date_end, created_at, updated_at"
)

type PriceCategoryRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, d dto.CreatePriceCategoryDTO) (*entities.PriceCategory, error)
	GetAll(ctx context.Context) ([]entities.PriceCategory, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.PriceCategory, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.PriceCategory, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdatePriceCategoryDTO) error
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
	DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error)
}

type priceCategoryRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPriceCategoryRepository(storage *pgxpool.Pool, logger *zap.Logger) PriceCategoryRepositoryInterface {
	return &priceCategoryRepository{storage: storage, logger: logger}
}

func scanPriceCategory(row pgx.Row) (*entities.PriceCategory, error) {
	var p entities.PriceCategory
	if err := row.Scan(&p.ID, &p.DateStart, &p.DateEnd, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, notFound(err, priceCategoryTable)
	}
	return &p, nil
}

func (r *priceCategoryRepository) queryList(ctx context.Context, b sq.SelectBuilder) ([]entities.PriceCategory, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка ценовых категорий: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка ценовых категорий: %w", err)
	}
	defer rows.Close()

	list := make([]entities.PriceCategory, 0)
	for rows.Next() {
		p, err := scanPriceCategory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

// attachOrders подгружает заказы для всех ценовых категорий одним запросом.
func (r *priceCategoryRepository) attachOrders(ctx context.Context, list []entities.PriceCategory) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}

	orders, err := listOrders(ctx, r.storage, sq.Eq{"price_category_id": ids})
	if err != nil {
		return err
	}

	byCategory := make(map[uint64][]entities.Order, len(list))
	for _, o := range orders {
		byCategory[*o.PriceCategoryID] = append(byCategory[*o.PriceCategoryID], o)
	}
	for i := range list {
		list[i].Orders = byCategory[list[i].ID]
		if list[i].Orders == nil {
			list[i].Orders = []entities.Order{}
		}
	}
	return nil
}

func (r *priceCategoryRepository) Create(ctx context.Context, tx pgx.Tx, d dto.CreatePriceCategoryDTO) (*entities.PriceCategory, error) {
	query, args, err := psql.Insert(priceCategoryTable).
		Columns("date_start", "date_end").
		Values(d.DateStart.Time, d.DateEnd.Time).
		Suffix("RETURNING " + priceCategoryFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	p, err := scanPriceCategory(getQuerier(r.storage, tx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания ценовой категории: %w", err)
	}
	return p, nil
}

func (r *priceCategoryRepository) GetAll(ctx context.Context) ([]entities.PriceCategory, error) {
	list, err := r.queryList(ctx, psql.Select(priceCategoryFields).From(priceCategoryTable).OrderBy("id"))
	if err != nil {
		return nil, err
	}
	if err := r.attachOrders(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *priceCategoryRepository) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.PriceCategory, uint64, error) {
	total, err := countRows(ctx, r.storage, priceCategoryTable)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.PriceCategory{}, 0, nil
	}

	list, err := r.queryList(ctx, pageOf(psql.Select(priceCategoryFields).From(priceCategoryTable).OrderBy("id"), page))
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *priceCategoryRepository) FindByID(ctx context.Context, id uint64) (*entities.PriceCategory, error) {
	query, args, err := psql.Select(priceCategoryFields).From(priceCategoryTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса FindByID: %w", err)
	}

	p, err := scanPriceCategory(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	list := []entities.PriceCategory{*p}
	if err := r.attachOrders(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *priceCategoryRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdatePriceCategoryDTO) error {
	set := map[string]interface{}{}
	if d.DateStart != nil {
		set["date_start"] = d.DateStart.Time
	}
	if d.DateEnd != nil {
		set["date_end"] = d.DateEnd.Time
	}
	return updateByID(ctx, getQuerier(r.storage, tx), priceCategoryTable, id, set)
}

func (r *priceCategoryRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return deleteByID(ctx, getQuerier(r.storage, tx), priceCategoryTable, id)
}

func (r *priceCategoryRepository) DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error) {
	return deleteAll(ctx, getQuerier(r.storage, tx), priceCategoryTable)
}
