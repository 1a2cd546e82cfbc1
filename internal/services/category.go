package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/events"
	"rental-system/internal/repositories"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

type CategoryServiceInterface interface {
	Create(ctx context.Context, d dto.CreateCategoryDTO) (*entities.Category, error)
	GetAll(ctx context.Context) ([]entities.Category, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Category, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Category, error)
	Update(ctx context.Context, id uint64, d dto.UpdateCategoryDTO, fields types.Fields) error
	Delete(ctx context.Context, id uint64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type CategoryService struct {
	BaseService
	repo repositories.CategoryRepositoryInterface
}

func NewCategoryService(repo repositories.CategoryRepositoryInterface, bus EventPublisher, logger *zap.Logger) CategoryServiceInterface {
	return &CategoryService{
		BaseService: NewBaseService(events.EntityCategory, bus, logger),
		repo:        repo,
	}
}

// checkParentExists: родитель из тела запроса должен существовать.
func (s *CategoryService) checkParentExists(ctx context.Context, parentID uint64) error {
	if _, err := s.repo.FindByID(ctx, parentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewInvalidInputError("родительская категория %d не найдена", parentID)
		}
		return err
	}
	return nil
}

func (s *CategoryService) Create(ctx context.Context, d dto.CreateCategoryDTO) (*entities.Category, error) {
	if d.BaseCategoryID.Valid {
		if err := s.checkParentExists(ctx, d.BaseCategoryID.Uint64); err != nil {
			return nil, err
		}
	}

	category, err := s.repo.Create(ctx, nil, d)
	if err != nil {
		s.logger.Error("Не удалось создать категорию", zap.String("name", d.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Категория создана", zap.Uint64("id", category.ID))
	s.emit(ctx, events.ActionCreated, category.ID)
	return category, nil
}

func (s *CategoryService) GetAll(ctx context.Context) ([]entities.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *CategoryService) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Category, uint64, error) {
	return s.repo.GetPaged(ctx, page)
}

func (s *CategoryService) FindByID(ctx context.Context, id uint64) (*entities.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// Update не дает сделать категорию родителем самой себя или своего потомка.
func (s *CategoryService) Update(ctx context.Context, id uint64, d dto.UpdateCategoryDTO, fields types.Fields) error {
	if fields.Has("baseCategoryId") && d.BaseCategoryID.Valid {
		parentID := d.BaseCategoryID.Uint64
		if parentID == id {
			return apperrors.NewInvalidInputError("категория не может быть родителем самой себя")
		}
		if err := s.checkParentExists(ctx, parentID); err != nil {
			return err
		}
		cycle, err := s.repo.IsDescendant(ctx, id, parentID)
		if err != nil {
			return err
		}
		if cycle {
			return apperrors.NewInvalidInputError("категория %d является потомком категории %d", parentID, id)
		}
	}

	if err := s.repo.Update(ctx, nil, id, d, fields); err != nil {
		return err
	}
	s.emit(ctx, events.ActionUpdated, id)
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, nil, id); err != nil {
		return err
	}
	s.logger.Info("Категория удалена", zap.Uint64("id", id))
	s.emit(ctx, events.ActionDeleted, id)
	return nil
}

func (s *CategoryService) DeleteAll(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll(ctx, nil)
	if err != nil {
		return 0, err
	}
	s.logger.Warn("Все категории удалены", zap.Int64("affected", affected))
	s.emitPurged(ctx, affected)
	return affected, nil
}
