package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/constants"
	"rental-system/pkg/types"
)

type ReportServiceInterface interface {
	CategoryStats(ctx context.Context) ([]entities.CategoryStats, error)
	PopularCategories(ctx context.Context, limit int) ([]entities.PopularCategory, error)
	TopClients(ctx context.Context, limit int) ([]entities.TopClient, error)
	ClientDebt(ctx context.Context, clientID uint64) (*entities.ClientDebt, error)
	AvailableEquipment(ctx context.Context, window dto.DateRangeDTO) ([]entities.AvailableEquipment, error)
	EquipmentRentalHistory(ctx context.Context, equipmentID uint64) ([]entities.RentalHistoryItem, error)
	EquipmentByPriceRange(ctx context.Context, prices dto.PriceRangeDTO) ([]entities.EquipmentPriceStats, error)
	ActiveOrders(ctx context.Context) ([]entities.OrderSummary, error)
	OrdersByPeriod(ctx context.Context, period dto.DateRangeDTO) ([]entities.OrderSummary, error)
	OrderTotal(ctx context.Context, orderID uint64) (*entities.OrderTotal, error)
	MonthlyPaymentStats(ctx context.Context) ([]entities.MonthlyPaymentStats, error)
	UnpaidOrders(ctx context.Context) ([]entities.UnpaidOrder, error)
}

type ReportService struct {
	repo   repositories.ReportRepositoryInterface
	logger *zap.Logger
	now    func() time.Time
}

func NewReportService(repo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{repo: repo, logger: logger, now: time.Now}
}

func limitOrDefault(limit, fallback int) uint64 {
	if limit <= 0 {
		return uint64(fallback)
	}
	return uint64(limit)
}

func (s *ReportService) CategoryStats(ctx context.Context) ([]entities.CategoryStats, error) {
	return s.repo.CategoryStats(ctx)
}

func (s *ReportService) PopularCategories(ctx context.Context, limit int) ([]entities.PopularCategory, error) {
	return s.repo.PopularCategories(ctx, limitOrDefault(limit, constants.DefaultPopularCategoriesLimit))
}

func (s *ReportService) TopClients(ctx context.Context, limit int) ([]entities.TopClient, error) {
	return s.repo.TopClients(ctx, limitOrDefault(limit, constants.DefaultTopClientsLimit))
}

func (s *ReportService) ClientDebt(ctx context.Context, clientID uint64) (*entities.ClientDebt, error) {
	return s.repo.ClientDebt(ctx, clientID)
}

// AvailableEquipment: пустые границы окна заменяются на сейчас .. сейчас + 7 дней.
func (s *ReportService) AvailableEquipment(ctx context.Context, window dto.DateRangeDTO) ([]entities.AvailableEquipment, error) {
	if window.Start.IsZero() {
		window.Start = s.now()
	}
	if window.End.IsZero() {
		window.End = window.Start.Add(constants.DefaultAvailabilityWindow)
	}
	if err := checkPeriod(types.NewPeriod(window.Start, window.End)); err != nil {
		return nil, err
	}
	s.logger.Debug("Поиск свободного оборудования",
		zap.Time("start", window.Start),
		zap.Time("end", window.End),
	)
	return s.repo.AvailableEquipment(ctx, window.Start, window.End)
}

func (s *ReportService) EquipmentRentalHistory(ctx context.Context, equipmentID uint64) ([]entities.RentalHistoryItem, error) {
	return s.repo.EquipmentRentalHistory(ctx, equipmentID)
}

func (s *ReportService) EquipmentByPriceRange(ctx context.Context, prices dto.PriceRangeDTO) ([]entities.EquipmentPriceStats, error) {
	return s.repo.EquipmentByPriceRange(ctx, prices.Min, prices.Max)
}

func (s *ReportService) ActiveOrders(ctx context.Context) ([]entities.OrderSummary, error) {
	return s.repo.ActiveOrders(ctx)
}

// OrdersByPeriod: пустые границы заменяются на последние 30 дней.
func (s *ReportService) OrdersByPeriod(ctx context.Context, period dto.DateRangeDTO) ([]entities.OrderSummary, error) {
	if period.End.IsZero() {
		period.End = s.now()
	}
	if period.Start.IsZero() {
		period.Start = period.End.Add(-constants.DefaultOrdersPeriod)
	}
	if err := checkPeriod(types.NewPeriod(period.Start, period.End)); err != nil {
		return nil, err
	}
	return s.repo.OrdersByPeriod(ctx, period.Start, period.End)
}

func (s *ReportService) OrderTotal(ctx context.Context, orderID uint64) (*entities.OrderTotal, error) {
	return s.repo.OrderTotal(ctx, orderID)
}

func (s *ReportService) MonthlyPaymentStats(ctx context.Context) ([]entities.MonthlyPaymentStats, error) {
	return s.repo.MonthlyPaymentStats(ctx)
}

func (s *ReportService) UnpaidOrders(ctx context.Context) ([]entities.UnpaidOrder, error) {
	return s.repo.UnpaidOrders(ctx)
}
