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

type PaymentServiceInterface interface {
	Create(ctx context.Context, d dto.CreatePaymentDTO) (*entities.Payment, error)
	GetAll(ctx context.Context) ([]entities.Payment, error)
	GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Payment, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Payment, error)
	Update(ctx context.Context, id uint64, d dto.UpdatePaymentDTO) error
	Delete(ctx context.Context, id uint64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type PaymentService struct {
	BaseService
	repo repositories.PaymentRepositoryInterface
}

func NewPaymentService(repo repositories.PaymentRepositoryInterface, bus EventPublisher, logger *zap.Logger) PaymentServiceInterface {
	return &PaymentService{
		BaseService: NewBaseService(events.EntityPayment, bus, logger),
		repo:        repo,
	}
}

func (s *PaymentService) Create(ctx context.Context, d dto.CreatePaymentDTO) (*entities.Payment, error) {
	payment, err := s.repo.Create(ctx, nil, d)
	if err != nil {
		s.logger.Error("Не удалось сохранить платеж", zap.Uint64("orderID", d.OrderID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Платеж сохранен",
		zap.Uint64("id", payment.ID),
		zap.Uint64("orderID", payment.OrderID),
		zap.Float64("amount", payment.Amount),
	)
	s.emit(ctx, events.ActionCreated, payment.ID)
	return payment, nil
}

func (s *PaymentService) GetAll(ctx context.Context) ([]entities.Payment, error) {
	return s.repo.GetAll(ctx)
}

func (s *PaymentService) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Payment, uint64, error) {
	return s.repo.GetPaged(ctx, page)
}

func (s *PaymentService) FindByID(ctx context.Context, id uint64) (*entities.Payment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PaymentService) Update(ctx context.Context, id uint64, d dto.UpdatePaymentDTO) error {
	if err := s.repo.Update(ctx, nil, id, d); err != nil {
		return err
	}
	s.emit(ctx, events.ActionUpdated, id)
	return nil
}

func (s *PaymentService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, nil, id); err != nil {
		return err
	}
	s.logger.Info("Платеж удален", zap.Uint64("id", id))
	s.emit(ctx, events.ActionDeleted, id)
	return nil
}

func (s *PaymentService) DeleteAll(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll(ctx, nil)
	if err != nil {
		return 0, err
	}
	s.logger.Warn("Все платежи удалены", zap.Int64("affected", affected))
	s.emitPurged(ctx, affected)
	return affected, nil
}
