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

type ClientController struct {
	service    services.ClientServiceInterface
	pagination config.PaginationConfig
	logger     *zap.Logger
}

func NewClientController(service services.ClientServiceInterface, pagination config.PaginationConfig, logger *zap.Logger) *ClientController {
	return &ClientController{service: service, pagination: pagination, logger: logger}
}

func (c *ClientController) Create(ctx echo.Context) error {
	var d dto.CreateClientDTO
	if err := bindCreate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.Create(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusCreated)
}

func (c *ClientController) GetAll(ctx echo.Context) error {
	list, err := c.service.GetAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, list, http.StatusOK)
}

func (c *ClientController) GetPaged(ctx echo.Context) error {
	page := pageRequest(ctx, c.pagination)
	list, total, err := c.service.GetPaged(ctx.Request().Context(), page)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.PagedResponse(ctx, "clients", list, total, page)
}

func (c *ClientController) GetByID(ctx echo.Context) error {
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

func (c *ClientController) Update(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		logIDError(c.logger, "Update", ctx, err)
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var d dto.UpdateClientDTO
	if _, err := bindUpdate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Update(ctx.Request().Context(), id, d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, "Клиент обновлен", http.StatusOK)
}

func (c *ClientController) Delete(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		logIDError(c.logger, "Delete", ctx, err)
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, "Клиент удален", http.StatusOK)
}

func (c *ClientController) DeleteAll(ctx echo.Context) error {
	affected, err := c.service.DeleteAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	c.logger.Info("Все клиенты удалены", zap.Int64("affected", affected))
	return utils.MessageResponse(ctx, "Все клиенты удалены", http.StatusOK)
}
