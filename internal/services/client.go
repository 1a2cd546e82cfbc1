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

type ClientServiceInterface interface {
	Create(ctx context.Context, d dto.CreateClientDTO) (*entities.Client, error)
	GetAll(ctx context.Context) ([]entities.Client, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Client, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Client, error)
	Update(ctx context.Context, id uint64, d dto.UpdateClientDTO) error
	Delete(ctx context.Context, id uint64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type ClientService struct {
	BaseService
	repo repositories.ClientRepositoryInterface
}

func NewClientService(repo repositories.ClientRepositoryInterface, bus EventPublisher, logger *zap.Logger) ClientServiceInterface {
	return &ClientService{
		BaseService: NewBaseService(events.EntityClient, bus, logger),
		repo:        repo,
	}
}

func (s *ClientService) Create(ctx context.Context, d dto.CreateClientDTO) (*entities.Client, error) {
	client, err := s.repo.Create(ctx, nil, d)
	if err != nil {
		s.logger.Error("Не удалось создать клиента", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Клиент создан", zap.Uint64("id", client.ID))
	s.emit(ctx, events.ActionCreated, client.ID)
	return client, nil
}

func (s *ClientService) GetAll(ctx context.Context) ([]entities.Client, error) {
	return s.repo.GetAll(ctx)
}

func (s *ClientService) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Client, uint64, error) {
	return s.repo.GetPaged(ctx, page)
}

func (s *ClientService) FindByID(ctx context.Context, id uint64) (*entities.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) Update(ctx context.Context, id uint64, d dto.UpdateClientDTO) error {
	if err := s.repo.Update(ctx, nil, id, d); err != nil {
		return err
	}
	s.emit(ctx, events.ActionUpdated, id)
	return nil
}

func (s *ClientService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, nil, id); err != nil {
		return err
	}
	s.logger.Info("Клиент удален", zap.Uint64("id", id))
	s.emit(ctx, events.ActionDeleted, id)
	return nil
}

func (s *ClientService) DeleteAll(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll(ctx, nil)
	if err != nil {
		return 0, err
	}
	s.logger.Warn("Все клиенты удалены", zap.Int64("affected", affected))
	s.emitPurged(ctx, affected)
	return affected, nil
}
