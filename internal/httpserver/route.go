package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	OrderHandler *OrderHTTP
	StoreHandler *StoreHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.Validator = NewValidator()

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.GET("/data", d.StoreHandler.GetData)
	api.GET("/get_users", d.StoreHandler.GetUsers)
	api.GET("/get_products", d.StoreHandler.GetProducts)
	api.GET("/get_orders", d.StoreHandler.GetOrders)
	api.GET("/get_order_items", d.StoreHandler.GetOrderItems)

	api.POST("/users", d.StoreHandler.CreateUser)
	api.POST("/orders", d.OrderHandler.CreateOrder)
	api.PATCH("/orders/status", d.OrderHandler.UpdateOrderStatus)
}
