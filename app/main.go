package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"rental-system/internal/listeners"
	"rental-system/internal/routes"
	"rental-system/pkg/config"
	"rental-system/pkg/database/postgresql"
	"rental-system/pkg/eventbus"
	"rental-system/pkg/filestorage"
	applogger "rental-system/pkg/logger"
	"rental-system/pkg/middleware"
	"rental-system/pkg/publisher"
	"rental-system/pkg/validation"
	appwebsocket "rental-system/pkg/websocket"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Logging)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. База данных
	dbConn, err := postgresql.ConnectDB(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}
	defer dbConn.Close()

	if cfg.Postgres.AutoMigrate {
		migrator, err := postgresql.NewMigrator(dbConn)
		if err != nil {
			logger.Fatal("Не удалось подготовить миграции", zap.Error(err))
		}
		results, err := migrator.Up(ctx)
		if err != nil {
			logger.Fatal("Ошибка применения миграций", zap.Error(err))
		}
		logger.Info("Миграции применены", zap.Int("applied", len(results)))
	}

	// 3. События: шина -> форвардер -> внешний транспорт, и шина -> WebSocket
	var redisClient *redis.Client
	if cfg.Events.Driver == publisher.DriverRedis {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			logger.Fatal("Не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		defer redisClient.Close()
	}

	pub, err := publisher.New(cfg.Events, redisClient, logger)
	if err != nil {
		logger.Fatal("Не удалось создать публикатор событий", zap.Error(err))
	}
	bus := eventbus.New(logger)
	listeners.NewEventForwarder(pub, logger).Register(bus)

	hub := appwebsocket.NewHub(logger)
	go hub.Run(ctx)
	listeners.NewEventBroadcaster(hub).Register(bus)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Uploads.Dir)
	if err != nil {
		logger.Fatal("Не удалось создать файловое хранилище", zap.Error(err))
	}

	// 4. HTTP
	e := echo.New()
	e.HideBanner = true
	validator := validation.New()
	e.Validator = validator

	e.Use(middleware.RequestID())
	e.Use(middleware.InjectLogger(logger))
	e.Use(middleware.AccessLog(logger))
	e.Use(middleware.Recover(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
		ExposeHeaders: []string{echo.HeaderContentDisposition, echo.HeaderXRequestID},
	}))

	routes.InitRouter(e, routes.Deps{
		DB:          dbConn,
		Bus:         bus,
		Hub:         hub,
		Validator:   validator,
		FileStorage: fileStorage,
		Config:      cfg,
		Logger:      logger,
	})

	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Получен сигнал остановки, завершаем работу")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки HTTP-сервера", zap.Error(err))
	}

	bus.Wait()
	if err := pub.Close(); err != nil {
		logger.Error("Ошибка закрытия публикатора событий", zap.Error(err))
	}
	logger.Info("Сервер остановлен")
}
