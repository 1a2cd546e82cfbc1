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
	categoryTable  = "categories"
	categoryFields = "id, name, base_category_id, created_at, updated_at"
)

type CategoryRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, d dto.CreateCategoryDTO) (*entities.Category, error)
	GetAll(ctx context.Context) ([]entities.Category, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Category, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Category, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateCategoryDTO, fields types.Fields) error
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
	DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error)

	// IsDescendant: лежит ли candidateID в поддереве ancestorID (включая сам ancestorID).
	IsDescendant(ctx context.Context, ancestorID, candidateID uint64) (bool, error)
}

type categoryRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCategoryRepository(storage *pgxpool.Pool, logger *zap.Logger) CategoryRepositoryInterface {
	return &categoryRepository{storage: storage, logger: logger}
}

func scanCategory(row pgx.Row) (*entities.Category, error) {
	var c entities.Category
	if err := row.Scan(&c.ID, &c.Name, &c.BaseCategoryID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, notFound(err, categoryTable)
	}
	return &c, nil
}

func (r *categoryRepository) queryList(ctx context.Context, b sq.SelectBuilder) ([]entities.Category, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка категорий: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка категорий: %w", err)
	}
	defer rows.Close()

	categories := make([]entities.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) Create(ctx context.Context, tx pgx.Tx, d dto.CreateCategoryDTO) (*entities.Category, error) {
	query, args, err := psql.Insert(categoryTable).
		Columns("name", "base_category_id").
		Values(d.Name, d.BaseCategoryID.Ptr()).
		Suffix("RETURNING " + categoryFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	c, err := scanCategory(getQuerier(r.storage, tx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания категории: %w", err)
	}
	return c, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]entities.Category, error) {
	return r.queryList(ctx, psql.Select(categoryFields).From(categoryTable).OrderBy("id"))
}

func (r *categoryRepository) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Category, uint64, error) {
	total, err := countRows(ctx, r.storage, categoryTable)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Category{}, 0, nil
	}

	list, err := r.queryList(ctx, pageOf(psql.Select(categoryFields).From(categoryTable).OrderBy("id"), page))
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// FindByID возвращает категорию вместе с родителем и прямыми подкатегориями.
func (r *categoryRepository) FindByID(ctx context.Context, id uint64) (*entities.Category, error) {
	query, args, err := psql.Select(categoryFields).From(categoryTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса FindByID: %w", err)
	}

	category, err := scanCategory(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	if category.BaseCategoryID != nil {
		query, args, err = psql.Select(categoryFields).From(categoryTable).Where(sq.Eq{"id": *category.BaseCategoryID}).ToSql()
		if err != nil {
			return nil, fmt.Errorf("ошибка сборки запроса родительской категории: %w", err)
		}
		parent, err := scanCategory(r.storage.QueryRow(ctx, query, args...))
		if err != nil {
			return nil, err
		}
		category.ParentCategory = parent
	}

	category.Subcategories, err = r.queryList(ctx, psql.Select(categoryFields).
		From(categoryTable).
		Where(sq.Eq{"base_category_id": id}).
		OrderBy("id"))
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateCategoryDTO, fields types.Fields) error {
	set := map[string]interface{}{}
	if d.Name != nil {
		set["name"] = *d.Name
	}
	if fields.Has("baseCategoryId") {
		set["base_category_id"] = d.BaseCategoryID.Ptr()
	}
	return updateByID(ctx, getQuerier(r.storage, tx), categoryTable, id, set)
}

func (r *categoryRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return deleteByID(ctx, getQuerier(r.storage, tx), categoryTable, id)
}

func (r *categoryRepository) DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error) {
	return deleteAll(ctx, getQuerier(r.storage, tx), categoryTable)
}

func (r *categoryRepository) IsDescendant(ctx context.Context, ancestorID, candidateID uint64) (bool, error) {
	query := `
		WITH RECURSIVE subtree AS (
			SELECT id FROM categories WHERE id = $1
			UNION
			SELECT c.id FROM categories c INNER JOIN subtree s ON c.base_category_id = s.id
		)
		SELECT EXISTS (SELECT 1 FROM subtree WHERE id = $2)`

	var found bool
	if err := r.storage.QueryRow(ctx, query, ancestorID, candidateID).Scan(&found); err != nil {
		return false, fmt.Errorf("ошибка проверки дерева категорий: %w", err)
	}
	return found, nil
}
