package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/pkg/constants"
	apperrors "rental-system/pkg/errors"
)

func reportEcho(svc *mockReportService) *echo.Echo {
	e := newTestEcho()
	c := NewReportController(svc, zap.NewNop())
	e.GET("/api/categories/stats", c.CategoryStats)
	e.GET("/api/categories/popular", c.PopularCategories)
	e.GET("/api/clients/:id/debt", c.ClientDebt)
	e.GET("/api/equipment/available", c.AvailableEquipment)
	e.GET("/api/equipment/price-range", c.EquipmentByPriceRange)
	e.GET("/api/orders/period", c.OrdersByPeriod)
	return e
}

func TestReport_PopularLimit(t *testing.T) {
	svc := new(mockReportService)
	svc.On("PopularCategories", mock.Anything, 3).Return([]entities.PopularCategory{{CategoryID: 1, OrderCount: 4}}, nil)
	svc.On("PopularCategories", mock.Anything, constants.DefaultPopularCategoriesLimit).Return([]entities.PopularCategory{}, nil)
	e := reportEcho(svc)

	rec := serve(e, http.MethodGet, "/api/categories/popular?limit=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []entities.PopularCategory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Equal(t, int64(4), rows[0].OrderCount)

	rec = serve(e, http.MethodGet, "/api/categories/popular?limit=abc", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestReport_AvailableEquipmentDates(t *testing.T) {
	svc := new(mockReportService)
	window := dto.DateRangeDTO{
		Start: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
	}
	svc.On("AvailableEquipment", mock.Anything, window).Return([]entities.AvailableEquipment{}, nil)
	e := reportEcho(svc)

	rec := serve(e, http.MethodGet, "/api/equipment/available?dateStart=2024-01-15&dateEnd=2024-01-15", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)

	rec = serve(e, http.MethodGet, "/api/equipment/available?dateStart=15.01.2024", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReport_PeriodWithoutParams(t *testing.T) {
	svc := new(mockReportService)
	svc.On("OrdersByPeriod", mock.Anything, dto.DateRangeDTO{}).Return([]entities.OrderSummary{}, nil)

	rec := serve(reportEcho(svc), http.MethodGet, "/api/orders/period", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestReport_PriceRangeDefaults(t *testing.T) {
	svc := new(mockReportService)
	svc.On("EquipmentByPriceRange", mock.Anything, dto.PriceRangeDTO{Min: 100, Max: constants.DefaultMaxRentPrice}).
		Return([]entities.EquipmentPriceStats{}, nil)

	rec := serve(reportEcho(svc), http.MethodGet, "/api/equipment/price-range?minPrice=100", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestReport_ClientDebtNotFound(t *testing.T) {
	svc := new(mockReportService)
	svc.On("ClientDebt", mock.Anything, uint64(77)).Return(nil, apperrors.ErrNotFound)

	rec := serve(reportEcho(svc), http.MethodGet, "/api/clients/77/debt", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReport_XLSX(t *testing.T) {
	svc := new(mockReportService)
	svc.On("CategoryStats", mock.Anything).Return([]entities.CategoryStats{
		{CategoryID: 1, CategoryName: "Экскаваторы", EquipmentCount: 2, AvgRentPrice: 75},
	}, nil)

	rec := serve(reportEcho(svc), http.MethodGet, "/api/categories/stats?format=xlsx", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constants.XLSXContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "category_stats_")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Отчет")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, entities.CategoryStatsHeaders, rows[0])
	assert.Equal(t, "Экскаваторы", rows[1][1])
}
