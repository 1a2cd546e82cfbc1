package utils

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "rental-system/pkg/errors"
)

// ParseIDParam разбирает :id из пути.
func ParseIDParam(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewHttpError(400, apperrors.ErrInvalidID.Error(), err, map[string]interface{}{"param": ctx.Param("id")})
	}
	return id, nil
}

// QueryInt возвращает fallback, если параметр не задан, не число или <= 0.
func QueryInt(ctx echo.Context, name string, fallback int) int {
	if n, err := strconv.Atoi(ctx.QueryParam(name)); err == nil && n > 0 {
		return n
	}
	return fallback
}

// QueryFloat возвращает fallback, если параметр не задан или не число.
func QueryFloat(ctx echo.Context, name string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(ctx.QueryParam(name), 64); err == nil {
		return f
	}
	return fallback
}

// QueryTime возвращает fallback для пустого параметра и ошибку 400 для неразборчивой даты.
func QueryTime(ctx echo.Context, name string, fallback time.Time) (time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	t, err := ParseTime(raw)
	if err != nil {
		return time.Time{}, apperrors.NewHttpError(400, apperrors.ErrInvalidDate.Error()+": "+name, err, map[string]interface{}{"param": name, "value": raw})
	}
	return t, nil
}

// QueryEndTime как QueryTime, но дата без времени включает весь день.
func QueryEndTime(ctx echo.Context, name string, fallback time.Time) (time.Time, error) {
	t, err := QueryTime(ctx, name, fallback)
	if err != nil {
		return t, err
	}
	if raw := ctx.QueryParam(name); raw != "" {
		t = EndOfDay(raw, t)
	}
	return t, nil
}
