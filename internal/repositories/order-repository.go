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
	orderTable  = "orders"
	orderFields = "id, date_start, date_end, status, client_id, price_category_id, created_at, updated_at"

	orderJoinFields = "o.id, o.date_start, o.date_end, o.status, o.client_id, o.price_category_id, o.created_at, o.updated_at, " +
		"c.id, c.full_name, c.phone, c.created_at, c.updated_at, " +
		"pc.id, pc.date_start, pc.date_end, pc.created_at, pc.updated_at"
)

type OrderRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, d dto.CreateOrderDTO) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Order, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Order, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateOrderDTO, fields types.Fields) error
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
	DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error)
}

type orderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) OrderRepositoryInterface {
	return &orderRepository{storage: storage, logger: logger}
}

func scanOrder(row pgx.Row) (*entities.Order, error) {
	var o entities.Order
	err := row.Scan(&o.ID, &o.DateStart, &o.DateEnd, &o.Status, &o.ClientID, &o.PriceCategoryID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, notFound(err, orderTable)
	}
	return &o, nil
}

// listOrders - заказы без связей, отфильтрованные по where.
func listOrders(ctx context.Context, q Querier, where sq.Sqlizer) ([]entities.Order, error) {
	query, args, err := psql.Select(orderFields).From(orderTable).Where(where).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка заказов: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка заказов: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func ordersWithRelations() sq.SelectBuilder {
	return psql.Select(orderJoinFields).
		From(orderTable + " o").
		LeftJoin(clientTable + " c ON c.id = o.client_id").
		LeftJoin(priceCategoryTable + " pc ON pc.id = o.price_category_id")
}

// scanOrderWithRelations читает строку orderJoinFields.
func scanOrderWithRelations(row pgx.Row) (*entities.Order, error) {
	var o entities.Order
	var (
		clientID        *uint64
		clientName      *string
		clientPhone     *string
		clientCreatedAt *time.Time
		clientUpdatedAt *time.Time

		pcID        *uint64
		pcStart     *time.Time
		pcEnd       *time.Time
		pcCreatedAt *time.Time
		pcUpdatedAt *time.Time
	)

	err := row.Scan(
		&o.ID, &o.DateStart, &o.DateEnd, &o.Status, &o.ClientID, &o.PriceCategoryID, &o.CreatedAt, &o.UpdatedAt,
		&clientID, &clientName, &clientPhone, &clientCreatedAt, &clientUpdatedAt,
		&pcID, &pcStart, &pcEnd, &pcCreatedAt, &pcUpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, orderTable)
	}

	if clientID != nil {
		o.Client = &entities.Client{
			ID:         *clientID,
			FullName:   *clientName,
			Phone:      *clientPhone,
			BaseEntity: types.BaseEntity{CreatedAt: *clientCreatedAt, UpdatedAt: *clientUpdatedAt},
		}
	}
	if pcID != nil {
		o.PriceCategory = &entities.PriceCategory{
			ID:         *pcID,
			DateStart:  *pcStart,
			DateEnd:    *pcEnd,
			BaseEntity: types.BaseEntity{CreatedAt: *pcCreatedAt, UpdatedAt: *pcUpdatedAt},
		}
	}
	return &o, nil
}

func (r *orderRepository) queryList(ctx context.Context, b sq.SelectBuilder) ([]entities.Order, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка заказов: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка заказов: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		o, err := scanOrderWithRelations(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// attachEquipment подгружает позиции заказов (оборудование с количеством и ценой) одним запросом.
func (r *orderRepository) attachEquipment(ctx context.Context, orders []entities.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	query, args, err := psql.Select(
		"oe.id, oe.order_id, oe.quantity, oe.rent_price",
		"e.id, e.name, e.inventory_number, e.category_id, e.created_at, e.updated_at",
	).
		From(orderEquipmentTable + " oe").
		Join(equipmentTable + " e ON e.id = oe.equipment_id").
		Where(sq.Eq{"oe.order_id": ids}).
		OrderBy("oe.id").
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса позиций заказа: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка получения позиций заказа: %w", err)
	}
	defer rows.Close()

	byOrder := make(map[uint64][]entities.RentedEquipment, len(orders))
	for rows.Next() {
		var item entities.RentedEquipment
		var orderID uint64
		err := rows.Scan(
			&item.LineID, &orderID, &item.Quantity, &item.RentPrice,
			&item.ID, &item.Name, &item.InventoryNumber, &item.CategoryID, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("ошибка сканирования позиции заказа: %w", err)
		}
		byOrder[orderID] = append(byOrder[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		orders[i].Equipment = byOrder[orders[i].ID]
		if orders[i].Equipment == nil {
			orders[i].Equipment = []entities.RentedEquipment{}
		}
	}
	return nil
}

func (r *orderRepository) Create(ctx context.Context, tx pgx.Tx, d dto.CreateOrderDTO) (*entities.Order, error) {
	query, args, err := psql.Insert(orderTable).
		Columns("date_start", "date_end", "status", "client_id", "price_category_id").
		Values(d.DateStart.Time, d.DateEnd.Time, d.Status, d.ClientID, d.PriceCategoryID.Ptr()).
		Suffix("RETURNING " + orderFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	o, err := scanOrder(getQuerier(r.storage, tx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания заказа: %w", err)
	}
	return o, nil
}

func (r *orderRepository) GetAll(ctx context.Context) ([]entities.Order, error) {
	orders, err := r.queryList(ctx, ordersWithRelations().OrderBy("o.id"))
	if err != nil {
		return nil, err
	}
	if err := r.attachEquipment(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Order, uint64, error) {
	total, err := countRows(ctx, r.storage, orderTable)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Order{}, 0, nil
	}

	orders, err := r.queryList(ctx, pageOf(ordersWithRelations().OrderBy("o.id"), page))
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// FindByID возвращает заказ с клиентом, ценовой категорией, позициями и платежами.
func (r *orderRepository) FindByID(ctx context.Context, id uint64) (*entities.Order, error) {
	query, args, err := ordersWithRelations().Where(sq.Eq{"o.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса FindByID: %w", err)
	}

	o, err := scanOrderWithRelations(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	orders := []entities.Order{*o}
	if err := r.attachEquipment(ctx, orders); err != nil {
		return nil, err
	}

	orders[0].Payments, err = listPayments(ctx, r.storage, sq.Eq{"order_id": id})
	if err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *orderRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateOrderDTO, fields types.Fields) error {
	set := map[string]interface{}{}
	if d.DateStart != nil {
		set["date_start"] = d.DateStart.Time
	}
	if d.DateEnd != nil {
		set["date_end"] = d.DateEnd.Time
	}
	if d.Status != nil {
		set["status"] = *d.Status
	}
	if d.ClientID != nil {
		set["client_id"] = *d.ClientID
	}
	if fields.Has("priceCategoryId") {
		set["price_category_id"] = d.PriceCategoryID.Ptr()
	}
	return updateByID(ctx, getQuerier(r.storage, tx), orderTable, id, set)
}

func (r *orderRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return deleteByID(ctx, getQuerier(r.storage, tx), orderTable, id)
}

func (r *orderRepository) DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error) {
	return deleteAll(ctx, getQuerier(r.storage, tx), orderTable)
}
