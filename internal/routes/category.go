package routes

import (
	"github.com/labstack/echo/v4"

	"rental-system/internal/controllers"
)

func runCategoryRouter(api *echo.Group, ctrl *controllers.CategoryController, reports *controllers.ReportController) {
	g := api.Group("/categories")

	g.GET("/stats", reports.CategoryStats)
	g.GET("/popular", reports.PopularCategories)

	registerCRUD(g, ctrl)
}
