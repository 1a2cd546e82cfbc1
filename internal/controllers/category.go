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

type CategoryController struct {
	service    services.CategoryServiceInterface
	pagination config.PaginationConfig
	logger     *zap.Logger
}

func NewCategoryController(service services.CategoryServiceInterface, pagination config.PaginationConfig, logger *zap.Logger) *CategoryController {
	return &CategoryController{service: service, pagination: pagination, logger: logger}
}

func (c *CategoryController) Create(ctx echo.Context) error {
	var d dto.CreateCategoryDTO
	if err := bindCreate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.Create(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusCreated)
}

func (c *CategoryController) GetAll(ctx echo.Context) error {
	list, err := c.service.GetAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, list, http.StatusOK)
}

func (c *CategoryController) GetPaged(ctx echo.Context) error {
	page := pageRequest(ctx, c.pagination)
	list, total, err := c.service.GetPaged(ctx.Request().Context(), page)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.PagedResponse(ctx, "categories", list, total, page)
}

func (c *CategoryController) GetByID(ctx echo.Context) error {
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

func (c *CategoryController) Update(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		logIDError(c.logger, "Update", ctx, err)
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var d dto.UpdateCategoryDTO
	fields, err := bindUpdate(ctx, &d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Update(ctx.Request().Context(), id, d, fields); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, "Категория обновлена", http.StatusOK)
}

func (c *CategoryController) Delete(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		logIDError(c.logger, "Delete", ctx, err)
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, "Категория удалена", http.StatusOK)
}

func (c *CategoryController) DeleteAll(ctx echo.Context) error {
	affected, err := c.service.DeleteAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	c.logger.Info("Все категории удалены", zap.Int64("affected", affected))
	return utils.MessageResponse(ctx, "Все категории удалены", http.StatusOK)
}
