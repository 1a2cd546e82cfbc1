package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/pkg/constants"
	apperrors "rental-system/pkg/errors"
)

func newReportService(repo *mockReportRepo, now time.Time) *ReportService {
	return &ReportService{repo: repo, logger: zap.NewNop(), now: func() time.Time { return now }}
}

func TestReportLimits(t *testing.T) {
	repo := new(mockReportRepo)
	repo.On("PopularCategories", mock.Anything, uint64(constants.DefaultPopularCategoriesLimit)).
		Return([]entities.PopularCategory{}, nil).Once()
	repo.On("PopularCategories", mock.Anything, uint64(2)).
		Return([]entities.PopularCategory{{CategoryID: 1}}, nil).Once()
	repo.On("TopClients", mock.Anything, uint64(constants.DefaultTopClientsLimit)).
		Return([]entities.TopClient{}, nil).Once()
	svc := newReportService(repo, time.Now())
	ctx := context.Background()

	_, err := svc.PopularCategories(ctx, 0)
	require.NoError(t, err)
	popular, err := svc.PopularCategories(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, popular, 1)
	_, err = svc.TopClients(ctx, -1)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestAvailableEquipment_DefaultWindow(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := new(mockReportRepo)
	repo.On("AvailableEquipment", mock.Anything, now, now.Add(constants.DefaultAvailabilityWindow)).
		Return([]entities.AvailableEquipment{}, nil)

	_, err := newReportService(repo, now).AvailableEquipment(context.Background(), dto.DateRangeDTO{})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAvailableEquipment_StartOnly(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	repo := new(mockReportRepo)
	repo.On("AvailableEquipment", mock.Anything, start, start.Add(constants.DefaultAvailabilityWindow)).
		Return([]entities.AvailableEquipment{}, nil)

	_, err := newReportService(repo, time.Now()).
		AvailableEquipment(context.Background(), dto.DateRangeDTO{Start: start})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAvailableEquipment_InvertedWindow(t *testing.T) {
	repo := new(mockReportRepo)
	window := dto.DateRangeDTO{
		Start: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := newReportService(repo, time.Now()).AvailableEquipment(context.Background(), window)

	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	repo.AssertNotCalled(t, "AvailableEquipment", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrdersByPeriod_StartAfterDefaultEnd(t *testing.T) {
	now := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	repo := new(mockReportRepo)

	_, err := newReportService(repo, now).
		OrdersByPeriod(context.Background(), dto.DateRangeDTO{Start: now.AddDate(0, 1, 0)})

	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	repo.AssertNotCalled(t, "OrdersByPeriod", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrdersByPeriod_DefaultPeriod(t *testing.T) {
	now := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	repo := new(mockReportRepo)
	repo.On("OrdersByPeriod", mock.Anything, now.Add(-constants.DefaultOrdersPeriod), now).
		Return([]entities.OrderSummary{}, nil)

	_, err := newReportService(repo, now).OrdersByPeriod(context.Background(), dto.DateRangeDTO{})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEquipmentByPriceRange_PassesBounds(t *testing.T) {
	repo := new(mockReportRepo)
	repo.On("EquipmentByPriceRange", mock.Anything, 50.0, 150.0).
		Return([]entities.EquipmentPriceStats{{ID: 1, AvgRentPrice: 100}}, nil)

	list, err := newReportService(repo, time.Now()).
		EquipmentByPriceRange(context.Background(), dto.PriceRangeDTO{Min: 50, Max: 150})

	require.NoError(t, err)
	assert.Equal(t, 100.0, list[0].AvgRentPrice)
}
