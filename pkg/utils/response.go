package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

type MessageBody struct {
	Message string `json:"message"`
}

// SuccessResponse отдает ресурс как есть, без общей обертки.
func SuccessResponse(ctx echo.Context, body interface{}, code int) error {
	return ctx.JSON(code, body)
}

func MessageResponse(ctx echo.Context, message string, code int) error {
	return ctx.JSON(code, MessageBody{Message: message})
}

// PagedResponse: { totalItems, totalPages, currentPage, <listKey>: [...] }
func PagedResponse(ctx echo.Context, listKey string, list interface{}, total uint64, page types.PageRequest) error {
	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"totalItems":  total,
		"totalPages":  page.TotalPages(total),
		"currentPage": page.Page,
		listKey:       list,
	})
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Warn("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, MessageBody{Message: httpErr.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, validationMessage(e))
		}
		return c.JSON(http.StatusBadRequest, MessageBody{Message: "Ошибка валидации: " + strings.Join(msgs, "; ")})
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) || errors.Is(err, apperrors.ErrBadRequest) {
		return c.JSON(http.StatusBadRequest, MessageBody{Message: err.Error()})
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return c.JSON(http.StatusNotFound, MessageBody{Message: err.Error()})
	}

	logger.Error("Unexpected Error", zap.String("uri", c.Request().RequestURI), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, MessageBody{Message: err.Error()})
}

func validationMessage(e validator.FieldError) string {
	if e.Tag() == "required" {
		return fmt.Sprintf("поле '%s' обязательно", e.Field())
	}
	if e.Param() != "" {
		return fmt.Sprintf("поле '%s' не прошло проверку '%s=%s'", e.Field(), e.Tag(), e.Param())
	}
	return fmt.Sprintf("поле '%s' не прошло проверку '%s'", e.Field(), e.Tag())
}
