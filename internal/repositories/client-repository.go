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
	clientTable  = "clients"
	clientFields = "id, full_name, phone, created_at, updated_at"
)

type ClientRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, d dto.CreateClientDTO) (*entities.Client, error)
	GetAll(ctx context.Context) ([]entities.Client, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Client, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Client, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateClientDTO) error
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
	DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error)
}

type clientRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewClientRepository(storage *pgxpool.Pool, logger *zap.Logger) ClientRepositoryInterface {
	return &clientRepository{storage: storage, logger: logger}
}

func scanClient(row pgx.Row) (*entities.Client, error) {
	var c entities.Client
	if err := row.Scan(&c.ID, &c.FullName, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, notFound(err, clientTable)
	}
	return &c, nil
}

func (r *clientRepository) queryList(ctx context.Context, b sq.SelectBuilder) ([]entities.Client, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка клиентов: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка клиентов: %w", err)
	}
	defer rows.Close()

	clients := make([]entities.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

func (r *clientRepository) Create(ctx context.Context, tx pgx.Tx, d dto.CreateClientDTO) (*entities.Client, error) {
	query, args, err := psql.Insert(clientTable).
		Columns("full_name", "phone").
		Values(d.FullName, d.Phone).
		Suffix("RETURNING " + clientFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	c, err := scanClient(getQuerier(r.storage, tx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента: %w", err)
	}
	return c, nil
}

func (r *clientRepository) GetAll(ctx context.Context) ([]entities.Client, error) {
	return r.queryList(ctx, psql.Select(clientFields).From(clientTable).OrderBy("id"))
}

func (r *clientRepository) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Client, uint64, error) {
	total, err := countRows(ctx, r.storage, clientTable)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Client{}, 0, nil
	}

	list, err := r.queryList(ctx, pageOf(psql.Select(clientFields).From(clientTable).OrderBy("id"), page))
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// FindByID возвращает клиента вместе с его заказами.
func (r *clientRepository) FindByID(ctx context.Context, id uint64) (*entities.Client, error) {
	query, args, err := psql.Select(clientFields).From(clientTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса FindByID: %w", err)
	}

	client, err := scanClient(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	client.Orders, err = listOrders(ctx, r.storage, sq.Eq{"client_id": id})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (r *clientRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateClientDTO) error {
	set := map[string]interface{}{}
	if d.FullName != nil {
		set["full_name"] = *d.FullName
	}
	if d.Phone != nil {
		set["phone"] = *d.Phone
	}
	return updateByID(ctx, getQuerier(r.storage, tx), clientTable, id, set)
}

func (r *clientRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return deleteByID(ctx, getQuerier(r.storage, tx), clientTable, id)
}

func (r *clientRepository) DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error) {
	return deleteAll(ctx, getQuerier(r.storage, tx), clientTable)
}
