package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/services"
	"rental-system/pkg/constants"
	"rental-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func wantsXLSX(ctx echo.Context) bool {
	return constants.ExportFormat(strings.ToLower(ctx.QueryParam("format"))) == constants.ExportFormatXLSX
}

// respondReport отдает строки отчета JSON-массивом или книгой XLSX при ?format=xlsx.
func respondReport[T entities.SheetRow](ctx echo.Context, logger *zap.Logger, name string, headers []string, rows []T) error {
	if !wantsXLSX(ctx) {
		return utils.SuccessResponse(ctx, rows, http.StatusOK)
	}
	return writeXLSX(ctx, logger, name, headers, rows)
}

// respondReportRow - то же для отчетов из одной записи.
func respondReportRow[T entities.SheetRow](ctx echo.Context, logger *zap.Logger, name string, headers []string, row *T) error {
	if !wantsXLSX(ctx) {
		return utils.SuccessResponse(ctx, row, http.StatusOK)
	}
	return writeXLSX(ctx, logger, name, headers, []T{*row})
}

func writeXLSX[T entities.SheetRow](ctx echo.Context, logger *zap.Logger, name string, headers []string, rows []T) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Отчет"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastHeader, style)

	for i, item := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := item.SheetValues()
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return utils.ErrorResponse(ctx, err, logger)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetColWidth(sheet, "A", lastCol, 20)

	fileName := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format(constants.DateLayout))
	ctx.Response().Header().Set(echo.HeaderContentType, constants.XLSXContentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func (c *ReportController) CategoryStats(ctx echo.Context) error {
	rows, err := c.reportService.CategoryStats(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondReport(ctx, c.logger, "category_stats", entities.CategoryStatsHeaders, rows)
}

func (c *ReportController) PopularCategories(ctx echo.Context) error {
	limit := utils.QueryInt(ctx, "limit", constants.DefaultPopularCategoriesLimit)
	rows, err := c.reportService.PopularCategories(ctx.Request().Context(), limit)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondReport(ctx, c.logger, "popular_categories", entities.PopularCategoryHeaders, rows)
}

func (c *ReportController) TopClients(ctx echo.Context) error {
	limit := utils.QueryInt(ctx, "limit", constants.DefaultTopClientsLimit)
	rows, err := c.reportService.TopClients(ctx.Request().Context(), limit)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondReport(ctx, c.logger, "top_clients", entities.TopClientHeaders, rows)
}

func (c *ReportController) ClientDebt(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	row, err := c.reportService.ClientDebt(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondReportRow(ctx, c.logger, "client_debt", entities.ClientDebtHeaders, row)
}

func (c *ReportController) AvailableEquipment(ctx echo.Context) error {
	start, err := utils.QueryTime(ctx, "dateStart", time.Time{})
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	end, err := utils.QueryEndTime(ctx, "dateEnd", time.Time{})
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	rows, err := c.reportService.AvailableEquipment(ctx.Request().Context(), dto.DateRangeDTO{Start: start, End: end})
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondReport(ctx, c.logger, "available_equipment", entities.AvailableEquipmentHeaders, rows)
}

func (c *ReportController) EquipmentRentalHistory(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	rows, err := c.reportService.EquipmentRentalHistory(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondReport(ctx, c.logger, "rental_history", entities.RentalHistoryHeaders, rows)
}

func (c *ReportController) EquipmentByPriceRange(ctx echo.Context) error {
	prices := dto.PriceRangeDTO{
		Min: utils.QueryFloat(ctx, "minPrice", constants.DefaultMinRentPrice),
		Max: utils.QueryFloat(ctx, "maxPrice", constants.DefaultMaxRentPrice),
	}
	rows, err := c.reportService.EquipmentByPriceRange(ctx.Request().Context(), prices)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondReport(ctx, c.logger, "equipment_price_range", entities.EquipmentPriceStatsHeaders, rows)
}

func (c *ReportController) ActiveOrders(ctx echo.Context) error {
	rows, err := c.reportService.ActiveOrders(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondReport(ctx, c.logger, "active_orders", entities.OrderSummaryHeaders, rows)
}

func (c *ReportController) OrdersByPeriod(ctx echo.Context) error {
	start, err := utils.QueryTime(ctx, "startDate", time.Time{})
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	end, err := utils.QueryEndTime(ctx, "endDate", time.Time{})
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	rows, err := c.reportService.OrdersByPeriod(ctx.Request().Context(), dto.DateRangeDTO{Start: start, End: end})
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondReport(ctx, c.logger, "orders_by_period", entities.OrderSummaryHeaders, rows)
}

func (c *ReportController) OrderTotal(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	row, err := c.reportService.OrderTotal(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondReportRow(ctx, c.logger, "order_total", entities.OrderTotalHeaders, row)
}

func (c *ReportController) MonthlyPaymentStats(ctx echo.Context) error {
	rows, err := c.reportService.MonthlyPaymentStats(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondReport(ctx, c.logger, "monthly_payments", entities.MonthlyPaymentStatsHeaders, rows)
}

func (c *ReportController) UnpaidOrders(ctx echo.Context) error {
	rows, err := c.reportService.UnpaidOrders(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondReport(ctx, c.logger, "unpaid_orders", entities.UnpaidOrderHeaders, rows)
}
