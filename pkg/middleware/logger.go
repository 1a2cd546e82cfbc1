package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/pkg/contextkeys"
)

// RequestID берет X-Request-ID из запроса или генерирует новый и кладет его в контекст.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			ctx := context.WithValue(c.Request().Context(), contextkeys.RequestIDKey, id)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// InjectLogger кладет в контекст запроса логгер с request_id.
func InjectLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqLogger := logger
			if id, ok := c.Request().Context().Value(contextkeys.RequestIDKey).(string); ok {
				reqLogger = logger.With(zap.String("request_id", id))
			}
			ctx := context.WithValue(c.Request().Context(), contextkeys.LoggerKey, reqLogger)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// LoggerFromContext возвращает логгер запроса или fallback.
func LoggerFromContext(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := ctx.Value(contextkeys.LoggerKey).(*zap.Logger); ok {
		return l
	}
	return fallback
}

// AccessLog пишет одну строку на запрос.
func AccessLog(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			l := LoggerFromContext(c.Request().Context(), logger)
			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Int64("bytes", c.Response().Size),
				zap.Duration("latency", time.Since(start)),
			}
			switch {
			case c.Response().Status >= 500:
				l.Error("HTTP запрос", fields...)
			case c.Response().Status >= 400:
				l.Warn("HTTP запрос", fields...)
			default:
				l.Info("HTTP запрос", fields...)
			}
			return nil
		}
	}
}

// Recover превращает панику обработчика в 500 и пишет стек в лог.
func Recover(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					LoggerFromContext(c.Request().Context(), logger).Error("Паника в обработчике",
						zap.Any("panic", r),
						zap.Stack("stack"),
					)
					err = echo.NewHTTPError(500, fmt.Sprintf("внутренняя ошибка: %v", r))
				}
			}()
			return next(c)
		}
	}
}
