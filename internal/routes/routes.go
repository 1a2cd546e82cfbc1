package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/internal/controllers"
	"rental-system/internal/repositories"
	"rental-system/internal/services"
	"rental-system/pkg/config"
	"rental-system/pkg/filestorage"
	appwebsocket "rental-system/pkg/websocket"
)

// Deps - все, что нужно роутеру извне.
type Deps struct {
	DB          *pgxpool.Pool
	Bus         services.EventPublisher
	Hub         *appwebsocket.Hub
	Validator   services.StructValidator
	FileStorage filestorage.FileStorageInterface
	Config      *config.Config
	Logger      *zap.Logger
}

func InitRouter(e *echo.Echo, deps Deps) {
	logger := deps.Logger
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	txManager := repositories.NewTxManager(deps.DB)

	// --- 1. РЕПОЗИТОРИИ ---
	categoryRepo := repositories.NewCategoryRepository(deps.DB, logger)
	equipmentRepo := repositories.NewEquipmentRepository(deps.DB, logger)
	clientRepo := repositories.NewClientRepository(deps.DB, logger)
	priceCategoryRepo := repositories.NewPriceCategoryRepository(deps.DB, logger)
	orderRepo := repositories.NewOrderRepository(deps.DB, logger)
	orderEquipmentRepo := repositories.NewOrderEquipmentRepository(deps.DB, logger)
	paymentRepo := repositories.NewPaymentRepository(deps.DB, logger)
	reportRepo := repositories.NewReportRepository(deps.DB, logger)

	// --- 2. СЕРВИСЫ ---
	categoryService := services.NewCategoryService(categoryRepo, deps.Bus, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, deps.Bus, logger)
	clientService := services.NewClientService(clientRepo, deps.Bus, logger)
	priceCategoryService := services.NewPriceCategoryService(priceCategoryRepo, deps.Bus, logger)
	orderService := services.NewOrderService(orderRepo, orderEquipmentRepo, txManager, deps.Bus, logger)
	orderEquipmentService := services.NewOrderEquipmentService(orderEquipmentRepo, deps.Bus, logger)
	paymentService := services.NewPaymentService(paymentRepo, deps.Bus, logger)
	reportService := services.NewReportService(reportRepo, logger)
	importService := services.NewEquipmentImportService(equipmentRepo, categoryRepo, deps.Validator, deps.Bus, logger)

	// --- 3. КОНТРОЛЛЕРЫ ---
	pagination := deps.Config.Pagination
	reportCtrl := controllers.NewReportController(reportService, logger)

	api.GET("/test", controllers.Health)
	if deps.Hub != nil {
		api.GET("/ws/events", controllers.NewWebSocketController(deps.Hub, logger).ServeWs)
	}

	runCategoryRouter(api, controllers.NewCategoryController(categoryService, pagination, logger), reportCtrl)
	runEquipmentRouter(api,
		controllers.NewEquipmentController(equipmentService, pagination, logger),
		controllers.NewImportController(importService, deps.FileStorage, deps.Config.Uploads, logger),
		reportCtrl,
	)
	runClientRouter(api, controllers.NewClientController(clientService, pagination, logger), reportCtrl)
	runPriceCategoryRouter(api, controllers.NewPriceCategoryController(priceCategoryService, pagination, logger))
	runOrderRouter(api, controllers.NewOrderController(orderService, pagination, logger), reportCtrl)
	runOrderEquipmentRouter(api, controllers.NewOrderEquipmentController(orderEquipmentService, pagination, logger))
	runPaymentRouter(api, controllers.NewPaymentController(paymentService, pagination, logger), reportCtrl)

	logger.Info("INIT_ROUTER: Создание маршрутов завершено")
}
