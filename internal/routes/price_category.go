package routes

import (
	"github.com/labstack/echo/v4"

	"rental-system/internal/controllers"
)

func runPriceCategoryRouter(api *echo.Group, ctrl *controllers.PriceCategoryController) {
	registerCRUD(api.Group("/price-categories"), ctrl)
}
