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

type EquipmentController struct {
	service    services.EquipmentServiceInterface
	pagination config.PaginationConfig
	logger     *zap.Logger
}

func NewEquipmentController(service services.EquipmentServiceInterface, pagination config.PaginationConfig, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{service: service, pagination: pagination, logger: logger}
}

func (c *EquipmentController) Create(ctx echo.Context) error {
	var d dto.CreateEquipmentDTO
	if err := bindCreate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.Create(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusCreated)
}

func (c *EquipmentController) GetAll(ctx echo.Context) error {
	list, err := c.service.GetAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, list, http.StatusOK)
}

func (c *EquipmentController) GetPaged(ctx echo.Context) error {
	page := pageRequest(ctx, c.pagination)
	list, total, err := c.service.GetPaged(ctx.Request().Context(), page)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.PagedResponse(ctx, "equipment", list, total, page)
}

func (c *EquipmentController) GetByID(ctx echo.Context) error {
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

func (c *EquipmentController) Update(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		logIDError(c.logger, "Update", ctx, err)
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var d dto.UpdateEquipmentDTO
	fields, err := bindUpdate(ctx, &d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Update(ctx.Request().Context(), id, d, fields); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, "Оборудование обновлено", http.StatusOK)
}

func (c *EquipmentController) Delete(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		logIDError(c.logger, "Delete", ctx, err)
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, "Оборудование удалено", http.StatusOK)
}

func (c *EquipmentController) DeleteAll(ctx echo.Context) error {
	affected, err := c.service.DeleteAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	c.logger.Info("Все оборудование удалено", zap.Int64("affected", affected))
	return utils.MessageResponse(ctx, "Все оборудование удалено", http.StatusOK)
}
