package routes

import (
	"github.com/labstack/echo/v4"

	"rental-system/internal/controllers"
)

func runOrderRouter(api *echo.Group, ctrl *controllers.OrderController, reports *controllers.ReportController) {
	g := api.Group("/orders")

	g.GET("/active", reports.ActiveOrders)
	g.GET("/period", reports.OrdersByPeriod)
	g.GET("/:id/total", reports.OrderTotal)

	registerCRUD(g, ctrl)
}

func runOrderEquipmentRouter(api *echo.Group, ctrl *controllers.OrderEquipmentController) {
	registerCRUD(api.Group("/order-equipment"), ctrl)
}
