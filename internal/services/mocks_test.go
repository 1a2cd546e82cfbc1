package services

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/pkg/eventbus"
	"rental-system/pkg/types"
)

// --- шина ---

type recordingBus struct {
	mu     sync.Mutex
	events []string
}

func (b *recordingBus) Publish(_ context.Context, e eventbus.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e.Name())
}

func (b *recordingBus) names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.events...)
}

// --- транзакции ---

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	m.calls++
	return fn(nil)
}

// --- категории ---

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, tx pgx.Tx, d dto.CreateCategoryDTO) (*entities.Category, error) {
	args := m.Called(ctx, tx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategoryRepo) GetAll(ctx context.Context) ([]entities.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Category), args.Error(1)
}

func (m *mockCategoryRepo) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Category, uint64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]entities.Category), args.Get(1).(uint64), args.Error(2)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uint64) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateCategoryDTO, fields types.Fields) error {
	return m.Called(ctx, tx, id, d, fields).Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return m.Called(ctx, tx, id).Error(0)
}

func (m *mockCategoryRepo) DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepo) IsDescendant(ctx context.Context, ancestorID, candidateID uint64) (bool, error) {
	args := m.Called(ctx, ancestorID, candidateID)
	return args.Bool(0), args.Error(1)
}

// --- оборудование ---

type mockEquipmentRepo struct{ mock.Mock }

func (m *mockEquipmentRepo) Create(ctx context.Context, tx pgx.Tx, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	args := m.Called(ctx, tx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Equipment), args.Error(1)
}

func (m *mockEquipmentRepo) GetAll(ctx context.Context) ([]entities.Equipment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Equipment), args.Error(1)
}

func (m *mockEquipmentRepo) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Equipment, uint64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]entities.Equipment), args.Get(1).(uint64), args.Error(2)
}

func (m *mockEquipmentRepo) FindByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Equipment), args.Error(1)
}

func (m *mockEquipmentRepo) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateEquipmentDTO, fields types.Fields) error {
	return m.Called(ctx, tx, id, d, fields).Error(0)
}

func (m *mockEquipmentRepo) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return m.Called(ctx, tx, id).Error(0)
}

func (m *mockEquipmentRepo) DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEquipmentRepo) UpsertByInventoryNumber(ctx context.Context, tx pgx.Tx, d dto.CreateEquipmentDTO) (bool, error) {
	args := m.Called(ctx, tx, d)
	return args.Bool(0), args.Error(1)
}

// --- заказы ---

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(ctx context.Context, tx pgx.Tx, d dto.CreateOrderDTO) (*entities.Order, error) {
	args := m.Called(ctx, tx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *mockOrderRepo) GetAll(ctx context.Context) ([]entities.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Order), args.Error(1)
}

func (m *mockOrderRepo) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.Order, uint64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]entities.Order), args.Get(1).(uint64), args.Error(2)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uint64) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *mockOrderRepo) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateOrderDTO, fields types.Fields) error {
	return m.Called(ctx, tx, id, d, fields).Error(0)
}

func (m *mockOrderRepo) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return m.Called(ctx, tx, id).Error(0)
}

func (m *mockOrderRepo) DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(int64), args.Error(1)
}

// --- позиции заказов ---

type mockOrderEquipmentRepo struct{ mock.Mock }

func (m *mockOrderEquipmentRepo) Create(ctx context.Context, tx pgx.Tx, d dto.CreateOrderEquipmentDTO) (*entities.OrderEquipment, error) {
	args := m.Called(ctx, tx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OrderEquipment), args.Error(1)
}

func (m *mockOrderEquipmentRepo) GetAll(ctx context.Context) ([]entities.OrderEquipment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.OrderEquipment), args.Error(1)
}

func (m *mockOrderEquipmentRepo) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.OrderEquipment, uint64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]entities.OrderEquipment), args.Get(1).(uint64), args.Error(2)
}

func (m *mockOrderEquipmentRepo) FindByID(ctx context.Context, id uint64) (*entities.OrderEquipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OrderEquipment), args.Error(1)
}

func (m *mockOrderEquipmentRepo) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateOrderEquipmentDTO) error {
	return m.Called(ctx, tx, id, d).Error(0)
}

func (m *mockOrderEquipmentRepo) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return m.Called(ctx, tx, id).Error(0)
}

func (m *mockOrderEquipmentRepo) DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(int64), args.Error(1)
}

// --- ценовые категории ---

type mockPriceCategoryRepo struct{ mock.Mock }

func (m *mockPriceCategoryRepo) Create(ctx context.Context, tx pgx.Tx, d dto.CreatePriceCategoryDTO) (*entities.PriceCategory, error) {
	args := m.Called(ctx, tx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PriceCategory), args.Error(1)
}

func (m *mockPriceCategoryRepo) GetAll(ctx context.Context) ([]entities.PriceCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.PriceCategory), args.Error(1)
}

func (m *mockPriceCategoryRepo) GetPaged(ctx context.Context, page types.PageRequest) ([]entities.PriceCategory, uint64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]entities.PriceCategory), args.Get(1).(uint64), args.Error(2)
}

func (m *mockPriceCategoryRepo) FindByID(ctx context.Context, id uint64) (*entities.PriceCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PriceCategory), args.Error(1)
}

func (m *mockPriceCategoryRepo) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdatePriceCategoryDTO) error {
	return m.Called(ctx, tx, id, d).Error(0)
}

func (m *mockPriceCategoryRepo) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return m.Called(ctx, tx, id).Error(0)
}

func (m *mockPriceCategoryRepo) DeleteAll(ctx context.Context, tx pgx.Tx) (int64, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(int64), args.Error(1)
}

// --- отчеты ---

type mockReportRepo struct{ mock.Mock }

func (m *mockReportRepo) CategoryStats(ctx context.Context) ([]entities.CategoryStats, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.CategoryStats), args.Error(1)
}

func (m *mockReportRepo) PopularCategories(ctx context.Context, limit uint64) ([]entities.PopularCategory, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entities.PopularCategory), args.Error(1)
}

func (m *mockReportRepo) TopClients(ctx context.Context, limit uint64) ([]entities.TopClient, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entities.TopClient), args.Error(1)
}

func (m *mockReportRepo) ClientDebt(ctx context.Context, clientID uint64) (*entities.ClientDebt, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ClientDebt), args.Error(1)
}

func (m *mockReportRepo) AvailableEquipment(ctx context.Context, start, end time.Time) ([]entities.AvailableEquipment, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]entities.AvailableEquipment), args.Error(1)
}

func (m *mockReportRepo) EquipmentRentalHistory(ctx context.Context, equipmentID uint64) ([]entities.RentalHistoryItem, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).([]entities.RentalHistoryItem), args.Error(1)
}

func (m *mockReportRepo) EquipmentByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]entities.EquipmentPriceStats, error) {
	args := m.Called(ctx, minPrice, maxPrice)
	return args.Get(0).([]entities.EquipmentPriceStats), args.Error(1)
}

func (m *mockReportRepo) ActiveOrders(ctx context.Context) ([]entities.OrderSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.OrderSummary), args.Error(1)
}

func (m *mockReportRepo) OrdersByPeriod(ctx context.Context, start, end time.Time) ([]entities.OrderSummary, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]entities.OrderSummary), args.Error(1)
}

func (m *mockReportRepo) OrderTotal(ctx context.Context, orderID uint64) (*entities.OrderTotal, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OrderTotal), args.Error(1)
}

func (m *mockReportRepo) MonthlyPaymentStats(ctx context.Context) ([]entities.MonthlyPaymentStats, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.MonthlyPaymentStats), args.Error(1)
}

func (m *mockReportRepo) UnpaidOrders(ctx context.Context) ([]entities.UnpaidOrder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.UnpaidOrder), args.Error(1)
}
