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
	orderEquipmentTable  = "order_equipment"
	orderEquipmentFields = "id, quantity, rent_price, order_id, equipment_id, created_at, updated_at"

	orderEquipmentJoinFields = "oe.id, oe.quantity, oe.rent_price, oe.order_id, oe.equipment_id, oe.created_at, oe.updated_at, " +
		"o.id, o.date_start, o.date_end, o.status, o.client_id, o.price_category_id, o.created_at, o.updated_at, " +
		"e.id, e.name, e.inventory_number, e.category_id, e.created_at, e.updated_at"
)

type OrderEquipmentRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, d dto.CreateOrderEquipmentDTO) (*entities.OrderEquipment, error)
	GetAll(ctx context.Context) ([]entities.OrderEquipment, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.OrderEquipment, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.OrderEquipment, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateOrderEquipmentDTO) error
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
	DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error)
}

type orderEquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewOrderEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) OrderEquipmentRepositoryInterface {
	return &orderEquipmentRepository{storage: storage, logger: logger}
}

func scanOrderEquipment(row pgx.Row) (*entities.OrderEquipment, error) {
	var oe entities.OrderEquipment
	err := row.Scan(&oe.ID, &oe.Quantity, &oe.RentPrice, &oe.OrderID, &oe.EquipmentID, &oe.CreatedAt, &oe.UpdatedAt)
	if err != nil {
		return nil, notFound(err, orderEquipmentTable)
	}
	return &oe, nil
}

// Оба внешних ключа NOT NULL, поэтому достаточно INNER JOIN.
func orderEquipmentWithRelations() sq.SelectBuilder {
	return psql.Select(orderEquipmentJoinFields).
		From(orderEquipmentTable + " oe").
		Join(orderTable + " o ON o.id = oe.order_id").
		Join(equipmentTable + " e ON e.id = oe.equipment_id")
}

func scanOrderEquipmentWithRelations(row pgx.Row) (*entities.OrderEquipment, error) {
	var (
		oe entities.OrderEquipment
		o  entities.Order
		e  entities.Equipment
	)
	err := row.Scan(
		&oe.ID, &oe.Quantity, &oe.RentPrice, &oe.OrderID, &oe.EquipmentID, &oe.CreatedAt, &oe.UpdatedAt,
		&o.ID, &o.DateStart, &o.DateEnd, &o.Status, &o.ClientID, &o.PriceCategoryID, &o.CreatedAt, &o.UpdatedAt,
		&e.ID, &e.Name, &e.InventoryNumber, &e.CategoryID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, orderEquipmentTable)
	}
	oe.Order = &o
	oe.Equipment = &e
	return &oe, nil
}

func (r *orderEquipmentRepository) queryList(ctx context.Context, b sq.SelectBuilder) ([]entities.OrderEquipment, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка позиций: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка позиций: %w", err)
	}
	defer rows.Close()

	list := make([]entities.OrderEquipment, 0)
	for rows.Next() {
		oe, err := scanOrderEquipmentWithRelations(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *oe)
	}
	return list, rows.Err()
}

func (r *orderEquipmentRepository) Create(ctx context.Context, tx pgx.Tx, d dto.CreateOrderEquipmentDTO) (*entities.OrderEquipment, error) {
	query, args, err := psql.Insert(orderEquipmentTable).
		Columns("quantity", "rent_price", "order_id", "equipment_id").
		Values(d.Quantity, *d.RentPrice, d.OrderID, d.EquipmentID).
		Suffix("RETURNING " + orderEquipmentFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	oe, err := scanOrderEquipment(getQuerier(r.storage, tx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания позиции заказа: %w", err)
	}
	return oe, nil
}

func (r *orderEquipmentRepository) GetAll(ctx context.Context) ([]entities.OrderEquipment, error) {
	return r.queryList(ctx, orderEquipmentWithRelations().OrderBy("oe.id"))
}

func (r *orderEquipmentRepository) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.OrderEquipment, uint64, error) {
	total, err := countRows(ctx, r.storage, orderEquipmentTable)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.OrderEquipment{}, 0, nil
	}

	list, err := r.queryList(ctx, pageOf(orderEquipmentWithRelations().OrderBy("oe.id"), page))
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *orderEquipmentRepository) FindByID(ctx context.Context, id uint64) (*entities.OrderEquipment, error) {
	query, args, err := orderEquipmentWithRelations().Where(sq.Eq{"oe.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса FindByID: %w", err)
	}
	return scanOrderEquipmentWithRelations(r.storage.QueryRow(ctx, query, args...))
}

func (r *orderEquipmentRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateOrderEquipmentDTO) error {
	set := map[string]interface{}{}
	if d.Quantity != nil {
		set["quantity"] = *d.Quantity
	}
	if d.RentPrice != nil {
		set["rent_price"] = *d.RentPrice
	}
	if d.OrderID != nil {
		set["order_id"] = *d.OrderID
	}
	if d.EquipmentID != nil {
		set["equipment_id"] = *d.EquipmentID
	}
	return updateByID(ctx, getQuerier(r.storage, tx), orderEquipmentTable, id, set)
}

func (r *orderEquipmentRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return deleteByID(ctx, getQuerier(r.storage, tx), orderEquipmentTable, id)
}

func (r *orderEquipmentRepository) DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error) {
	return deleteAll(ctx, getQuerier(r.storage, tx), orderEquipmentTable)
}
