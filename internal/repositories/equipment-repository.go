package repositories

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/pkg/types"
)

const (
	equipmentTable  = "equipment"
	equipmentFields = "id, name, inventory_number, category_id, created_at, updated_at"

	equipmentJoinFields = "e.id, e.name, e.inventory_number, e.category_id, e.created_at, e.updated_at, " +
		"c.id, c.name, c.base_category_id, c.created_at, c.updated_at"
)

type EquipmentRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, d dto.CreateEquipmentDTO) (*entities.Equipment, error)
	GetAll(ctx context.Context) ([]entities.Equipment, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Equipment, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Equipment, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateEquipmentDTO, fields types.Fields) error
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
	DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error)

	// Upsert по инвентарному номеру, возвращает true если запись новая.
	UpsertByInventoryNumber(ctx context.Context, tx pgx.Tx, d dto.CreateEquipmentDTO) (bool, error)
}

type equipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	if err := row.Scan(&e.ID, &e.Name, &e.InventoryNumber, &e.CategoryID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, notFound(err, equipmentTable)
	}
	return &e, nil
}

// scanEquipmentWithCategory читает строку equipmentJoinFields.
func scanEquipmentWithCategory(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var (
		catID             *uint64
		catName           *string
		catBaseCategoryID *uint64
		catCreatedAt      *time.Time
		catUpdatedAt      *time.Time
	)

	err := row.Scan(
		&e.ID, &e.Name, &e.InventoryNumber, &e.CategoryID, &e.CreatedAt, &e.UpdatedAt,
		&catID, &catName, &catBaseCategoryID, &catCreatedAt, &catUpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, equipmentTable)
	}

	if catID != nil {
		e.Category = &entities.Category{
			ID:             *catID,
			Name:           *catName,
			BaseCategoryID: catBaseCategoryID,
			BaseEntity:     types.BaseEntity{CreatedAt: *catCreatedAt, UpdatedAt: *catUpdatedAt},
		}
	}
	return &e, nil
}

func equipmentWithCategory() sq.SelectBuilder {
	return psql.Select(equipmentJoinFields).
		From(equipmentTable + " e").
		LeftJoin(categoryTable + " c ON c.id = e.category_id")
}

func (r *equipmentRepository) queryList(ctx context.Context, b sq.SelectBuilder) ([]entities.Equipment, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка оборудования: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка оборудования: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipmentWithCategory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

func (r *equipmentRepository) Create(ctx context.Context, tx pgx.Tx, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	query, args, err := psql.Insert(equipmentTable).
		Columns("name", "inventory_number", "category_id").
		Values(d.Name, d.InventoryNumber, d.CategoryID.Ptr()).
		Suffix("RETURNING " + equipmentFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	e, err := scanEquipment(getQuerier(r.storage, tx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания оборудования: %w", err)
	}
	return e, nil
}

func (r *equipmentRepository) GetAll(ctx context.Context) ([]entities.Equipment, error) {
	return r.queryList(ctx, equipmentWithCategory().OrderBy("e.id"))
}

func (r *equipmentRepository) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Equipment, uint64, error) {
	total, err := countRows(ctx, r.storage, equipmentTable)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	list, err := r.queryList(ctx, pageOf(equipmentWithCategory().OrderBy("e.id"), page))
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *equipmentRepository) FindByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := equipmentWithCategory().Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса FindByID: %w", err)
	}
	return scanEquipmentWithCategory(r.storage.QueryRow(ctx, query, args...))
}

func (r *equipmentRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateEquipmentDTO, fields types.Fields) error {
	set := map[string]interface{}{}
	if d.Name != nil {
		set["name"] = *d.Name
	}
	if d.InventoryNumber != nil {
		set["inventory_number"] = *d.InventoryNumber
	}
	if fields.Has("categoryId") {
		set["category_id"] = d.CategoryID.Ptr()
	}
	return updateByID(ctx, getQuerier(r.storage, tx), equipmentTable, id, set)
}

func (r *equipmentRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return deleteByID(ctx, getQuerier(r.storage, tx), equipmentTable, id)
}

func (r *equipmentRepository) DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error) {
	return deleteAll(ctx, getQuerier(r.storage, tx), equipmentTable)
}

func (r *equipmentRepository) UpsertByInventoryNumber(ctx context.Context, tx pgx.Tx, d dto.CreateEquipmentDTO) (bool, error) {
	query, args, err := psql.Insert(equipmentTable).
		Columns("name", "inventory_number", "category_id").
		Values(d.Name, d.InventoryNumber, d.CategoryID.Ptr()).
		Suffix(`ON CONFLICT (inventory_number) DO UPDATE SET
			name = EXCLUDED.name,
			category_id = COALESCE(EXCLUDED.category_id, equipment.category_id),
			updated_at = NOW()
			RETURNING (xmax = 0) AS is_insert`).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("ошибка сборки запроса Upsert: %w", err)
	}

	var isInsert bool
	if err := getQuerier(r.storage, tx).QueryRow(ctx, query, args...).Scan(&isInsert); err != nil {
		return false, fmt.Errorf("ошибка upsert оборудования %s: %w", d.InventoryNumber, err)
	}
	return isInsert, nil
}
