package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/services"
	"rental-system/pkg/types"
)

type mockCategoryService struct{ mock.Mock }

func (m *mockCategoryService) Create(ctx context.Context, d dto.CreateCategoryDTO) (*entities.Category, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategoryService) GetAll(ctx context.Context) ([]entities.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Category), args.Error(1)
}

func (m *mockCategoryService) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Category, uint64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]entities.Category), args.Get(1).(uint64), args.Error(2)
}

func (m *mockCategoryService) FindByID(ctx context.Context, id uint64) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategoryService) Update(ctx context.Context, id uint64, d dto.UpdateCategoryDTO, fields types.Fields) error {
	return m.Called(ctx, id, d, fields).Error(0)
}

func (m *mockCategoryService) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryService) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockReportService struct{ mock.Mock }

func (m *mockReportService) CategoryStats(ctx context.Context) ([]entities.CategoryStats, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.CategoryStats), args.Error(1)
}

func (m *mockReportService) PopularCategories(ctx context.Context, limit int) ([]entities.PopularCategory, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entities.PopularCategory), args.Error(1)
}

func (m *mockReportService) TopClients(ctx context.Context, limit int) ([]entities.TopClient, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entities.TopClient), args.Error(1)
}

func (m *mockReportService) ClientDebt(ctx context.Context, clientID uint64) (*entities.ClientDebt, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ClientDebt), args.Error(1)
}

func (m *mockReportService) AvailableEquipment(ctx context.Context, window dto.DateRangeDTO) ([]entities.AvailableEquipment, error) {
	args := m.Called(ctx, window)
	return args.Get(0).([]entities.AvailableEquipment), args.Error(1)
}

func (m *mockReportService) EquipmentRentalHistory(ctx context.Context, equipmentID uint64) ([]entities.RentalHistoryItem, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).([]entities.RentalHistoryItem), args.Error(1)
}

func (m *mockReportService) EquipmentByPriceRange(ctx context.Context, prices dto.PriceRangeDTO) ([]entities.EquipmentPriceStats, error) {
	args := m.Called(ctx, prices)
	return args.Get(0).([]entities.EquipmentPriceStats), args.Error(1)
}

func (m *mockReportService) ActiveOrders(ctx context.Context) ([]entities.OrderSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.OrderSummary), args.Error(1)
}

func (m *mockReportService) OrdersByPeriod(ctx context.Context, period dto.DateRangeDTO) ([]entities.OrderSummary, error) {
	args := m.Called(ctx, period)
	return args.Get(0).([]entities.OrderSummary), args.Error(1)
}

func (m *mockReportService) OrderTotal(ctx context.Context, orderID uint64) (*entities.OrderTotal, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OrderTotal), args.Error(1)
}

func (m *mockReportService) MonthlyPaymentStats(ctx context.Context) ([]entities.MonthlyPaymentStats, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.MonthlyPaymentStats), args.Error(1)
}

func (m *mockReportService) UnpaidOrders(ctx context.Context) ([]entities.UnpaidOrder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.UnpaidOrder), args.Error(1)
}

var (
	_ services.CategoryServiceInterface = (*mockCategoryService)(nil)
	_ services.ReportServiceInterface   = (*mockReportService)(nil)
)
