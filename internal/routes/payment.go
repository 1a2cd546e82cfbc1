package routes

import (
	"github.com/labstack/echo/v4"

	"rental-system/internal/controllers"
)

func runPaymentRouter(api *echo.Group, ctrl *controllers.PaymentController, reports *controllers.ReportController) {
	g := api.Group("/payments")

	g.GET("/stats/monthly", reports.MonthlyPaymentStats)
	g.GET("/unpaid-orders", reports.UnpaidOrders)

	registerCRUD(g, ctrl)
}
