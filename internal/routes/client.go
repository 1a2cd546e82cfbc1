package routes

import (
	"github.com/labstack/echo/v4"

	"rental-system/internal/controllers"
)

func runClientRouter(api *echo.Group, ctrl *controllers.ClientController, reports *controllers.ReportController) {
	g := api.Group("/clients")

	g.GET("/top", reports.TopClients)
	g.GET("/:id/debt", reports.ClientDebt)

	registerCRUD(g, ctrl)
}
