package services

import (
	"context"

	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/events"
	"rental-system/internal/repositories"
	"rental-system/pkg/types"
)

type OrderEquipmentServiceInterface interface {
	Create(ctx context.Context, d dto.CreateOrderEquipmentDTO) (*entities.OrderEquipment, error)
	GetAll(ctx context.Context) ([]entities.OrderEquipment, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.OrderEquipment, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.OrderEquipment, error)
	Update(ctx context.Context, id uint64, d dto.UpdateOrderEquipmentDTO) error
	Delete(ctx context.Context, id uint64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type OrderEquipmentService struct {
	BaseService
	repo repositories.OrderEquipmentRepositoryInterface
}

func NewOrderEquipmentService(repo repositories.OrderEquipmentRepositoryInterface, bus EventPublisher, logger *zap.Logger) OrderEquipmentServiceInterface {
	return &OrderEquipmentService{
		BaseService: NewBaseService(events.EntityOrderEquipment, bus, logger),
		repo:        repo,
	}
}

func (s *OrderEquipmentService) Create(ctx context.Context, d dto.CreateOrderEquipmentDTO) (*entities.OrderEquipment, error) {
	line, err := s.repo.Create(ctx, nil, d)
	if err != nil {
		s.logger.Error("Не удалось добавить позицию в заказ",
			zap.Uint64("orderID", d.OrderID),
			zap.Uint64("equipmentID", d.EquipmentID),
			zap.Error(err),
		)
		return nil, err
	}
	s.emit(ctx, events.ActionCreated, line.ID)
	return line, nil
}

func (s *OrderEquipmentService) GetAll(ctx context.Context) ([]entities.OrderEquipment, error) {
	return s.repo.GetAll(ctx)
}

func (s *OrderEquipmentService) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.OrderEquipment, uint64, error) {
	return s.repo.GetPaged(ctx, page)
}

func (s *OrderEquipmentService) FindByID(ctx context.Context, id uint64) (*entities.OrderEquipment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderEquipmentService) Update(ctx context.Context, id uint64, d dto.UpdateOrderEquipmentDTO) error {
	if err := s.repo.Update(ctx, nil, id, d); err != nil {
		return err
	}
	s.emit(ctx, events.ActionUpdated, id)
	return nil
}

func (s *OrderEquipmentService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, nil, id); err != nil {
		return err
	}
	s.emit(ctx, events.ActionDeleted, id)
	return nil
}

func (s *OrderEquipmentService) DeleteAll(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll(ctx, nil)
	if err != nil {
		return 0, err
	}
	s.logger.Warn("Все позиции заказов удалены", zap.Int64("affected", affected))
	s.emitPurged(ctx, affected)
	return affected, nil
}
