package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/pkg/config"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
	"rental-system/pkg/utils"
)

func pageRequest(ctx echo.Context, cfg config.PaginationConfig) types.PageRequest {
	return utils.ParsePageParams(ctx.QueryParams(), cfg.DefaultSize, cfg.MaxSize)
}

// bindCreate декодирует тело запроса в d и проверяет его валидатором echo.
func bindCreate(ctx echo.Context, d interface{}) error {
	if err := ctx.Bind(d); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil)
	}
	return ctx.Validate(d)
}

// bindUpdate как bindCreate, но еще возвращает список присланных ключей.
func bindUpdate(ctx echo.Context, d interface{}) (types.Fields, error) {
	fields, err := utils.BindPatch(ctx, d)
	if err != nil {
		return nil, err
	}
	if err := ctx.Validate(d); err != nil {
		return nil, err
	}
	return fields, nil
}

func logIDError(logger *zap.Logger, op string, ctx echo.Context, err error) {
	logger.Warn(op+": неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
}
