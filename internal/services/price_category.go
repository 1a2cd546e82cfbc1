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

type PriceCategoryServiceInterface interface {
	Create(ctx context.Context, d dto.CreatePriceCategoryDTO) (*entities.PriceCategory, error)
	GetAll(ctx context.Context) ([]entities.PriceCategory, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.PriceCategory, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.PriceCategory, error)
	Update(ctx context.Context, id uint64, d dto.UpdatePriceCategoryDTO) error
	Delete(ctx context.Context, id uint64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type PriceCategoryService struct {
	BaseService
	repo repositories.PriceCategoryRepositoryInterface
}

func NewPriceCategoryService(repo repositories.PriceCategoryRepositoryInterface, bus EventPublisher, logger *zap.Logger) PriceCategoryServiceInterface {
	return &PriceCategoryService{
		BaseService: NewBaseService(events.EntityPriceCategory, bus, logger),
		repo:        repo,
	}
}

func (s *PriceCategoryService) Create(ctx context.Context, d dto.CreatePriceCategoryDTO) (*entities.PriceCategory, error) {
	if err := checkPeriod(types.NewPeriod(d.DateStart.Time, d.DateEnd.Time)); err != nil {
		return nil, err
	}

	pc, err := s.repo.Create(ctx, nil, d)
	if err != nil {
		s.logger.Error("Не удалось создать ценовую категорию", zap.Error(err))
		return nil, err
	}
	s.emit(ctx, events.ActionCreated, pc.ID)
	return pc, nil
}

func (s *PriceCategoryService) GetAll(ctx context.Context) ([]entities.PriceCategory, error) {
	return s.repo.GetAll(ctx)
}

func (s *PriceCategoryService) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.PriceCategory, uint64, error) {
	return s.repo.GetPaged(ctx, page)
}

func (s *PriceCategoryService) FindByID(ctx context.Context, id uint64) (*entities.PriceCategory, error) {
	return s.repo.FindByID(ctx, id)
}

// Update: если прислана только одна граница периода, вторая берется из базы.
func (s *PriceCategoryService) Update(ctx context.Context, id uint64, d dto.UpdatePriceCategoryDTO) error {
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

	if err := s.repo.Update(ctx, nil, id, d); err != nil {
		return err
	}
	s.emit(ctx, events.ActionUpdated, id)
	return nil
}

func (s *PriceCategoryService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, nil, id); err != nil {
		return err
	}
	s.emit(ctx, events.ActionDeleted, id)
	return nil
}

func (s *PriceCategoryService) DeleteAll(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll(ctx, nil)
	if err != nil {
		return 0, err
	}
	s.logger.Warn("Все ценовые категории удалены", zap.Int64("affected", affected))
	s.emitPurged(ctx, affected)
	return affected, nil
}
