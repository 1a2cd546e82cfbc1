package routes

import (
	"github.com/labstack/echo/v4"

	"rental-system/internal/controllers"
)

func runEquipmentRouter(
	api *echo.Group,
	ctrl *controllers.EquipmentController,
	importCtrl *controllers.ImportController,
	reports *controllers.ReportController,
) {
	g := api.Group("/equipment")

	g.GET("/available", reports.AvailableEquipment)
	g.GET("/price-range", reports.EquipmentByPriceRange)
	g.GET("/:id/rental-history", reports.EquipmentRentalHistory)
	g.POST("/import", importCtrl.ImportEquipment)

	registerCRUD(g, ctrl)
}
