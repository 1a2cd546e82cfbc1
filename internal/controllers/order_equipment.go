package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/services"
	"rental-system/pkg/config"
	"rental-system/pkg/utils"
)

type OrderEquipmentController struct {
	service    services.OrderEquipmentServiceInterface
	pagination config.PaginationConfig
	logger     *zap.Logger
}

func NewOrderEquipmentController(service services.OrderEquipmentServiceInterface, pagination config.PaginationConfig, logger *zap.Logger) *OrderEquipmentController {
	return &OrderEquipmentController{service: service, pagination: pagination, logger: logger}
}

func (c *OrderEquipmentController) Create(ctx echo.Context) error {
	var d dto.CreateOrderEquipmentDTO
	if err := bindCreate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.Create(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusCreated)
}

func (c *OrderEquipmentController) GetAll(ctx echo.Context) error {
	list, err := c.service.GetAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, list, http.StatusOK)
}

func (c *OrderEquipmentController) GetPaged(ctx echo.Context) error {
	page := pageRequest(ctx, c.pagination)
	list, total, err := c.service.GetPaged(ctx.Request().Context(), page)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.PagedResponse(ctx, "orderEquipment", list, total, page)
}

func (c *OrderEquipmentController) GetByID(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		logIDError(c.logger, "GetByID", ctx, err)
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *OrderEquipmentController) Update(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		logIDError(c.logger, "Update", ctx, err)
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var d dto.UpdateOrderEquipmentDTO
	if _, err := bindUpdate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Update(ctx.Request().Context(), id, d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, "Позиция заказа обновлена", http.StatusOK)
}

func (c *OrderEquipmentController) Delete(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		logIDError(c.logger, "Delete", ctx, err)
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, "Позиция заказа удалена", http.StatusOK)
}

func (c *OrderEquipmentController) DeleteAll(ctx echo.Context) error {
	affected, err := c.service.DeleteAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	c.logger.Info("Все позиции заказов удалены", zap.Int64("affected", affected))
	return utils.MessageResponse(ctx, "Все позиции заказов удалены", http.StatusOK)
}
