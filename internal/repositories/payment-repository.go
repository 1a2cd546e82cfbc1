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
	paymentTable  = "payments"
	paymentFields = "id, amount, payment_date, payment_type, order_id, created_at, updated_at"

	paymentJoinFields = "p.id, p.amount, p.payment_date, p.payment_type, p.order_id, p.created_at, p.updated_at, " +
		"o.id, o.date_start, o.date_end, o.status, o.client_id, o.price_category_id, o.created_at, o.updated_at"
)

type PaymentRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, d dto.CreatePaymentDTO) (*entities.Payment, error)
	GetAll(ctx context.Context) ([]entities.Payment, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Payment, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Payment, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdatePaymentDTO) error
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
	DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error)
}

type paymentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPaymentRepository(storage *pgxpool.Pool, logger *zap.Logger) PaymentRepositoryInterface {
	return &paymentRepository{storage: storage, logger: logger}
}

func scanPayment(row pgx.Row) (*entities.Payment, error) {
	var p entities.Payment
	err := row.Scan(&p.ID, &p.Amount, &p.PaymentDate, &p.PaymentType, &p.OrderID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, notFound(err, paymentTable)
	}
	return &p, nil
}

// listPayments - платежи без связей, отфильтрованные по where.
func listPayments(ctx context.Context, q Querier, where sq.Sqlizer) ([]entities.Payment, error) {
	query, args, err := psql.Select(paymentFields).From(paymentTable).Where(where).OrderBy("payment_date", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка платежей: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка платежей: %w", err)
	}
	defer rows.Close()

	payments := make([]entities.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func paymentsWithOrder() sq.SelectBuilder {
	return psql.Select(paymentJoinFields).
		From(paymentTable + " p").
		Join(orderTable + " o ON o.id = p.order_id")
}

func scanPaymentWithOrder(row pgx.Row) (*entities.Payment, error) {
	var (
		p entities.Payment
		o entities.Order
	)
	err := row.Scan(
		&p.ID, &p.Amount, &p.PaymentDate, &p.PaymentType, &p.OrderID, &p.CreatedAt, &p.UpdatedAt,
		&o.ID, &o.DateStart, &o.DateEnd, &o.Status, &o.ClientID, &o.PriceCategoryID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, paymentTable)
	}
	p.Order = &o
	return &p, nil
}

func (r *paymentRepository) queryList(ctx context.Context, b sq.SelectBuilder) ([]entities.Payment, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка платежей: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка платежей: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Payment, 0)
	for rows.Next() {
		p, err := scanPaymentWithOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

func (r *paymentRepository) Create(ctx context.Context, tx pgx.Tx, d dto.CreatePaymentDTO) (*entities.Payment, error) {
	query, args, err := psql.Insert(paymentTable).
		Columns("amount", "payment_date", "payment_type", "order_id").
		Values(d.Amount, d.PaymentDate.Time, d.PaymentType, d.OrderID).
		Suffix("RETURNING " + paymentFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	p, err := scanPayment(getQuerier(r.storage, tx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания платежа: %w", err)
	}
	return p, nil
}

func (r *paymentRepository) GetAll(ctx context.Context) ([]entities.Payment, error) {
	return r.queryList(ctx, paymentsWithOrder().OrderBy("p.id"))
}

func (r *paymentRepository) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Payment, uint64, error) {
	total, err := countRows(ctx, r.storage, paymentTable)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Payment{}, 0, nil
	}

	list, err := r.queryList(ctx, pageOf(paymentsWithOrder().OrderBy("p.id"), page))
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uint64) (*entities.Payment, error) {
	query, args, err := paymentsWithOrder().Where(sq.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса FindByID: %w", err)
	}
	return scanPaymentWithOrder(r.storage.QueryRow(ctx, query, args...))
}

func (r *paymentRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdatePaymentDTO) error {
	set := map[string]interface{}{}
	if d.Amount != nil {
		set["amount"] = *d.Amount
	}
	if d.PaymentDate != nil {
		set["payment_date"] = d.PaymentDate.Time
	}
	if d.PaymentType != nil {
		set["payment_type"] = *d.PaymentType
	}
	if d.OrderID != nil {
		set["order_id"] = *d.OrderID
	}
	return updateByID(ctx, getQuerier(r.storage, tx), paymentTable, id, set)
}

func (r *paymentRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return deleteByID(ctx, getQuerier(r.storage, tx), paymentTable, id)
}

func (r *paymentRepository) DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error) {
	return deleteAll(ctx, getQuerier(r.storage, tx), paymentTable)
}
