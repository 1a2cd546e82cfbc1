package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/events"
	"rental-system/internal/repositories"
	"rental-system/pkg/types"
)

type OrderServiceInterface interface {
	Create(ctx context.Context, d dto.CreateOrderDTO) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Order, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Order, error)
	Update(ctx context.Context, id uint64, d dto.UpdateOrderDTO, fields types.Fields) error
	Delete(ctx context.Context, id uint64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type OrderService struct {
	BaseService
	repo      repositories.OrderRepositoryInterface
	lineRepo  repositories.OrderEquipmentRepositoryInterface
	txManager repositories.TxManagerInterface
}

func NewOrderService(
	repo repositories.OrderRepositoryInterface,
	lineRepo repositories.OrderEquipmentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus EventPublisher,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		BaseService: NewBaseService(events.EntityOrder, bus, logger),
		repo:        repo,
		lineRepo:    lineRepo,
		txManager:   txManager,
	}
}

// Create сохраняет заказ и его позиции (items) в одной транзакции.
func (s *OrderService) Create(ctx context.Context, d dto.CreateOrderDTO) (*entities.Order, error) {
	if err := checkPeriod(types.NewPeriod(d.DateStart.Time, d.DateEnd.Time)); err != nil {
		return nil, err
	}

	var created *entities.Order
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		order, err := s.repo.Create(ctx, tx, d)
		if err != nil {
			return err
		}
		for _, item := range d.Items {
			_, err := s.lineRepo.Create(ctx, tx, dto.CreateOrderEquipmentDTO{
				Quantity:    item.Quantity,
				RentPrice:   item.RentPrice,
				OrderID:     order.ID,
				EquipmentID: item.EquipmentID,
			})
			if err != nil {
				return err
			}
		}
		created = order
		return nil
	})
	if err != nil {
		s.logger.Error("Не удалось создать заказ",
			zap.Uint64("clientID", d.ClientID),
			zap.Int("items", len(d.Items)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Заказ создан", zap.Uint64("id", created.ID), zap.Int("items", len(d.Items)))
	s.emit(ctx, events.ActionCreated, created.ID)

	if len(d.Items) == 0 {
		return created, nil
	}
	return s.repo.FindByID(ctx, created.ID)
}

func (s *OrderService) GetAll(ctx context.Context) ([]entities.Order, error) {
	return s.repo.GetAll(ctx)
}

func (s *OrderService) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Order, uint64, error) {
	return s.repo.GetPaged(ctx, page)
}

func (s *OrderService) FindByID(ctx context.Context, id uint64) (*entities.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// Update: если прислана только одна граница периода, вторая берется из базы.
func (s *OrderService) Update(ctx context.Context, id uint64, d dto.UpdateOrderDTO, fields types.Fields) error {
	if d.DateStart != nil || d.DateEnd != nil {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		start, end := current.DateStart, current.DateEnd
		if d.DateStart != nil {
			start = d.DateStart.Time
		}
		if d.DateEnd != nil {
			end = d.DateEnd.Time
		}
		if err := checkPeriod(types.NewPeriod(start, end)); err != nil {
			return err
		}
	}

	if err := s.repo.Update(ctx, nil, id, d, fields); err != nil {
		return err
	}
	s.emit(ctx, events.ActionUpdated, id)
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, nil, id); err != nil {
		return err
	}
	s.logger.Info("Заказ удален", zap.Uint64("id", id))
	s.emit(ctx, events.ActionDeleted, id)
	return nil
}

func (s *OrderService) DeleteAll(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll(ctx, nil)
	if err != nil {
		return 0, err
	}
	s.logger.Warn("Все заказы удалены", zap.Int64("affected", affected))
	s.emitPurged(ctx, affected)
	return affected, nil
}
