package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rental-system/pkg/utils"
)

// Health - проверка, что сервер поднят.
func Health(ctx echo.Context) error {
	return utils.MessageResponse(ctx, "Сервер работает", http.StatusOK)
}
