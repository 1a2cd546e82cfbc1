package repositories

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"rental-system/internal/entities"
	"rental-system/pkg/constants"
)

// Начисления и оплаты агрегируются по заказу заранее: иначе заказ с N позициями
// и M платежами при двойном JOIN дал бы N*M строк и завышенные суммы.
const orderBalanceCTE = `WITH order_charges AS (
		SELECT order_id,
			COUNT(DISTINCT equipment_id) AS equipment_count,
			SUM(quantity * rent_price) AS charged
		FROM order_equipment
		GROUP BY order_id
	),
	order_payments AS (
		SELECT order_id, SUM(amount) AS paid
		FROM payments
		GROUP BY order_id
	)`

type ReportRepositoryInterface interface {
	CategoryStats(ctx context.Context) ([]entities.CategoryStats, error)
	PopularCategories(ctx context.Context, limit uint64) ([]entities.PopularCategory, error)
	TopClients(ctx context.Context, limit uint64) ([]entities.TopClient, error)
	ClientDebt(ctx context.Context, clientID uint64) (*entities.ClientDebt, error)
	AvailableEquipment(ctx context.Context, start, end time.Time) ([]entities.AvailableEquipment, error)
	EquipmentRentalHistory(ctx context.Context, equipmentID uint64) ([]entities.RentalHistoryItem, error)
	EquipmentByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]entities.EquipmentPriceStats, error)
	ActiveOrders(ctx context.Context) ([]entities.OrderSummary, error)
	OrdersByPeriod(ctx context.Context, start, end time.Time) ([]entities.OrderSummary, error)
	OrderTotal(ctx context.Context, orderID uint64) (*entities.OrderTotal, error)
	MonthlyPaymentStats(ctx context.Context) ([]entities.MonthlyPaymentStats, error)
	UnpaidOrders(ctx context.Context) ([]entities.UnpaidOrder, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewReportRepository(storage *pgxpool.Pool, logger *zap.Logger) ReportRepositoryInterface {
	return &ReportRepository{storage: storage, logger: logger}
}

// collect выполняет запрос и раскладывает строки в T по db-тегам.
func collect[T any](ctx context.Context, q Querier, b sq.SelectBuilder) ([]T, error) {
	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL отчета: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения отчета: %w", err)
	}
	defer rows.Close()

	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения строк отчета: %w", err)
	}
	return list, nil
}

// collectOne - как collect, но ровно одна строка; нет строк -> ErrNotFound.
func collectOne[T any](ctx context.Context, q Querier, b sq.SelectBuilder) (*T, error) {
	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL отчета: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения отчета: %w", err)
	}
	defer rows.Close()

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, notFound(err, "строки отчета")
	}
	return &item, nil
}

func (r *ReportRepository) CategoryStats(ctx context.Context) ([]entities.CategoryStats, error) {
	b := psql.Select(
		"c.id AS category_id",
		"c.name AS category_name",
		"COUNT(DISTINCT e.id) AS equipment_count",
		"COALESCE(AVG(oe.rent_price), 0) AS avg_rent_price",
	).
		From(categoryTable + " c").
		LeftJoin(equipmentTable + " e ON e.category_id = c.id").
		LeftJoin(orderEquipmentTable + " oe ON oe.equipment_id = e.id").
		GroupBy("c.id", "c.name").
		OrderBy("equipment_count DESC", "c.id")

	return collect[entities.CategoryStats](ctx, r.storage, b)
}

func (r *ReportRepository) PopularCategories(ctx context.Context, limit uint64) ([]entities.PopularCategory, error) {
	b := psql.Select(
		"c.id AS category_id",
		"c.name AS category_name",
		"COUNT(DISTINCT oe.order_id) AS order_count",
		"COALESCE(SUM(oe.quantity), 0) AS total_quantity",
	).
		From(categoryTable + " c").
		LeftJoin(equipmentTable + " e ON e.category_id = c.id").
		LeftJoin(orderEquipmentTable + " oe ON oe.equipment_id = e.id").
		GroupBy("c.id", "c.name").
		OrderBy("order_count DESC", "total_quantity DESC", "c.id").
		Limit(limit)

	return collect[entities.PopularCategory](ctx, r.storage, b)
}

func (r *ReportRepository) TopClients(ctx context.Context, limit uint64) ([]entities.TopClient, error) {
	b := psql.Select(
		"c.id",
		"c.full_name",
		"c.phone",
		"COUNT(o.id) AS order_count",
		"COALESCE(SUM(op.paid), 0) AS total_paid",
	).
		Prefix(orderBalanceCTE).
		From(clientTable + " c").
		LeftJoin(orderTable + " o ON o.client_id = c.id").
		LeftJoin("order_payments op ON op.order_id = o.id").
		GroupBy("c.id", "c.full_name", "c.phone").
		OrderBy("order_count DESC", "total_paid DESC", "c.id").
		Limit(limit)

	return collect[entities.TopClient](ctx, r.storage, b)
}

func (r *ReportRepository) ClientDebt(ctx context.Context, clientID uint64) (*entities.ClientDebt, error) {
	b := psql.Select(
		"c.id",
		"c.full_name",
		"COALESCE(SUM(oc.charged), 0) AS total_order_amount",
		"COALESCE(SUM(op.paid), 0) AS total_paid",
		"COALESCE(SUM(oc.charged), 0) - COALESCE(SUM(op.paid), 0) AS debt",
	).
		Prefix(orderBalanceCTE).
		From(clientTable + " c").
		LeftJoin(orderTable + " o ON o.client_id = c.id").
		LeftJoin("order_charges oc ON oc.order_id = o.id").
		LeftJoin("order_payments op ON op.order_id = o.id").
		Where(sq.Eq{"c.id": clientID}).
		GroupBy("c.id", "c.full_name")

	return collectOne[entities.ClientDebt](ctx, r.storage, b)
}

// AvailableEquipment: оборудование без пересекающихся незавершенных заказов.
// Пересечение закрытых интервалов: order.start <= end AND order.end >= start.
func (r *ReportRepository) AvailableEquipment(ctx context.Context, start, end time.Time) ([]entities.AvailableEquipment, error) {
	// Подзапрос собирается с "?"; плейсхолдеры $N расставит внешний запрос.
	busy := sq.Select("1").
		From(orderEquipmentTable + " oe").
		Join(orderTable + " o ON o.id = oe.order_id").
		Where("oe.equipment_id = e.id").
		Where(sq.NotEq{"o.status": constants.OrderStatusCompleted}).
		Where(sq.LtOrEq{"o.date_start": end}).
		Where(sq.GtOrEq{"o.date_end": start})

	busySQL, busyArgs, err := busy.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки подзапроса занятости: %w", err)
	}

	b := psql.Select(equipmentColumns("e")...).
		From(equipmentTable+" e").
		Where("NOT EXISTS ("+busySQL+")", busyArgs...).
		OrderBy("e.id")

	return collect[entities.AvailableEquipment](ctx, r.storage, b)
}

func (r *ReportRepository) EquipmentRentalHistory(ctx context.Context, equipmentID uint64) ([]entities.RentalHistoryItem, error) {
	b := psql.Select(
		"o.id AS order_id",
		"o.date_start",
		"o.date_end",
		"o.status",
		"oe.quantity",
		"oe.rent_price",
		"c.full_name AS client_name",
		"c.phone AS client_phone",
	).
		From(orderTable + " o").
		Join(orderEquipmentTable + " oe ON oe.order_id = o.id").
		Join(clientTable + " c ON c.id = o.client_id").
		Where(sq.Eq{"oe.equipment_id": equipmentID}).
		OrderBy("o.date_start DESC", "o.id DESC")

	return collect[entities.RentalHistoryItem](ctx, r.storage, b)
}

func (r *ReportRepository) EquipmentByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]entities.EquipmentPriceStats, error) {
	columns := append(equipmentColumns("e"),
		"COALESCE(AVG(oe.rent_price), 0) AS avg_rent_price",
		"COALESCE(MIN(oe.rent_price), 0) AS min_rent_price",
		"COALESCE(MAX(oe.rent_price), 0) AS max_rent_price",
	)

	b := psql.Select(columns...).
		From(equipmentTable+" e").
		LeftJoin(orderEquipmentTable+" oe ON oe.equipment_id = e.id").
		GroupBy("e.id").
		Having("COALESCE(AVG(oe.rent_price), 0) BETWEEN ? AND ?", minPrice, maxPrice).
		OrderBy("avg_rent_price ASC", "e.id")

	return collect[entities.EquipmentPriceStats](ctx, r.storage, b)
}

func orderSummaries() sq.SelectBuilder {
	return psql.Select(
		"o.id", "o.date_start", "o.date_end", "o.status", "o.client_id", "o.price_category_id", "o.created_at", "o.updated_at",
		"c.full_name AS client_name",
		"c.phone AS client_phone",
		"COALESCE(oc.equipment_count, 0) AS equipment_count",
		"COALESCE(oc.charged, 0) AS total_amount",
	).
		Prefix(orderBalanceCTE).
		From(orderTable + " o").
		Join(clientTable + " c ON c.id = o.client_id").
		LeftJoin("order_charges oc ON oc.order_id = o.id")
}

func (r *ReportRepository) ActiveOrders(ctx context.Context) ([]entities.OrderSummary, error) {
	b := orderSummaries().
		Where(sq.NotEq{"o.status": constants.ClosedOrderStatuses}).
		OrderBy("o.date_start DESC", "o.id DESC")

	return collect[entities.OrderSummary](ctx, r.storage, b)
}

func (r *ReportRepository) OrdersByPeriod(ctx context.Context, start, end time.Time) ([]entities.OrderSummary, error) {
	b := orderSummaries().
		Where(sq.GtOrEq{"o.date_start": start}).
		Where(sq.LtOrEq{"o.date_start": end}).
		OrderBy("o.date_start DESC", "o.id DESC")

	return collect[entities.OrderSummary](ctx, r.storage, b)
}

func (r *ReportRepository) OrderTotal(ctx context.Context, orderID uint64) (*entities.OrderTotal, error) {
	b := psql.Select(
		"o.id",
		"o.date_start",
		"o.date_end",
		"COALESCE(oc.charged, 0) AS total_amount",
		"COALESCE(op.paid, 0) AS total_paid",
		"COALESCE(oc.charged, 0) - COALESCE(op.paid, 0) AS remaining_amount",
	).
		Prefix(orderBalanceCTE).
		From(orderTable + " o").
		LeftJoin("order_charges oc ON oc.order_id = o.id").
		LeftJoin("order_payments op ON op.order_id = o.id").
		Where(sq.Eq{"o.id": orderID})

	return collectOne[entities.OrderTotal](ctx, r.storage, b)
}

func (r *ReportRepository) MonthlyPaymentStats(ctx context.Context) ([]entities.MonthlyPaymentStats, error) {
	b := psql.Select(
		"TO_CHAR(payment_date, 'YYYY-MM') AS month",
		"COUNT(*) AS payment_count",
		"COALESCE(SUM(amount), 0) AS total_amount",
		"COALESCE(AVG(amount), 0) AS avg_amount",
	).
		From(paymentTable).
		GroupBy("TO_CHAR(payment_date, 'YYYY-MM')").
		OrderBy("month DESC")

	return collect[entities.MonthlyPaymentStats](ctx, r.storage, b)
}

// UnpaidOrders: начислено строго больше, чем оплачено.
func (r *ReportRepository) UnpaidOrders(ctx context.Context) ([]entities.UnpaidOrder, error) {
	b := psql.Select(
		"o.id", "o.date_start", "o.date_end", "o.status",
		"c.full_name AS client_name",
		"c.phone AS client_phone",
		"COALESCE(oc.charged, 0) AS total_amount",
		"COALESCE(op.paid, 0) AS total_paid",
		"COALESCE(oc.charged, 0) - COALESCE(op.paid, 0) AS debt",
	).
		Prefix(orderBalanceCTE).
		From(orderTable + " o").
		Join(clientTable + " c ON c.id = o.client_id").
		LeftJoin("order_charges oc ON oc.order_id = o.id").
		LeftJoin("order_payments op ON op.order_id = o.id").
		Where("COALESCE(oc.charged, 0) > COALESCE(op.paid, 0)").
		OrderBy("debt DESC", "o.id")

	return collect[entities.UnpaidOrder](ctx, r.storage, b)
}

// equipmentColumns - колонки equipment с префиксом алиаса.
func equipmentColumns(alias string) []string {
	return []string{
		alias + ".id",
		alias + ".name",
		alias + ".inventory_number",
		alias + ".category_id",
		alias + ".created_at",
		alias + ".updated_at",
	}
}
