package routes

import "github.com/labstack/echo/v4"

// crudController - стандартный набор обработчиков сущности.
type crudController interface {
	Create(ctx echo.Context) error
	GetAll(ctx echo.Context) error
	GetPaged(ctx echo.Context) error
	GetByID(ctx echo.Context) error
	Update(ctx echo.Context) error
	Delete(ctx echo.Context) error
	DeleteAll(ctx echo.Context) error
}

// registerCRUD вешает стандартные маршруты. Статические пути группы нужно
// регистрировать до вызова, чтобы они шли раньше /:id.
func registerCRUD(g *echo.Group, c crudController) {
	g.POST("", c.Create)
	g.GET("", c.GetAll)
	g.GET("/paged", c.GetPaged)
	g.GET("/:id", c.GetByID)
	g.PUT("/:id", c.Update)
	g.DELETE("/:id", c.Delete)
	g.DELETE("", c.DeleteAll)
}
