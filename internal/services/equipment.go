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

type EquipmentServiceInterface interface {
	Create(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error)
	GetAll(ctx context.Context) ([]entities.Equipment, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Equipment, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Equipment, error)
	Update(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO, fields types.Fields) error
	Delete(ctx context.Context, id uint64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type EquipmentService struct {
	BaseService
	repo repositories.EquipmentRepositoryInterface
}

func NewEquipmentService(repo repositories.EquipmentRepositoryInterface, bus EventPublisher, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{
		BaseService: NewBaseService(events.EntityEquipment, bus, logger),
		repo:        repo,
	}
}

func (s *EquipmentService) Create(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	equipment, err := s.repo.Create(ctx, nil, d)
	if err != nil {
		s.logger.Error("Не удалось создать оборудование", zap.String("inventoryNumber", d.InventoryNumber), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Оборудование создано", zap.Uint64("id", equipment.ID))
	s.emit(ctx, events.ActionCreated, equipment.ID)
	return equipment, nil
}

func (s *EquipmentService) GetAll(ctx context.Context) ([]entities.Equipment, error) {
	return s.repo.GetAll(ctx)
}

func (s *EquipmentService) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Equipment, uint64, error) {
	return s.repo.GetPaged(ctx, page)
}

func (s *EquipmentService) FindByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EquipmentService) Update(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO, fields types.Fields) error {
	if err := s.repo.Update(ctx, nil, id, d, fields); err != nil {
		return err
	}
	s.emit(ctx, events.ActionUpdated, id)
	return nil
}

func (s *EquipmentService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, nil, id); err != nil {
		return err
	}
	s.logger.Info("Оборудование удалено", zap.Uint64("id", id))
	s.emit(ctx, events.ActionDeleted, id)
	return nil
}

func (s *EquipmentService) DeleteAll(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll(ctx, nil)
	if err != nil {
		return 0, err
	}
	s.logger.Warn("Все оборудование удалено", zap.Int64("affected", affected))
	s.emitPurged(ctx, affected)
	return affected, nil
}
