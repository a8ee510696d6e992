package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sizzilia/storefront/internal/transport"
)

type Deps struct {
	CatalogHandler *CatalogHTTP
	OrderHandler   *OrderHTTP
	ContactHandler *ContactHTTP
}

func Register(e *echo.Echo, d *Deps) {
	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, transport.HealthResponse{
			Status:    "OK",
			Message:   "Server is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	products := api.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.POST("", d.CatalogHandler.CreateProduct)
	products.GET("/:id", d.CatalogHandler.GetProduct)
	products.PUT("/:id", d.CatalogHandler.UpdateProduct)
	products.DELETE("/:id", d.CatalogHandler.DeleteProduct)

	api.POST("/orders/process-order", d.OrderHandler.ProcessOrder)
	api.POST("/contact", d.ContactHandler.SendContact)

	api.Any("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, transport.ErrorResponse{
			Error: fmt.Sprintf("Route %s not found", c.Request().URL.Path),
		})
	})
}

func respondError(c echo.Context, code int, msg string) error {
	return c.JSON(code, transport.ErrorResponse{Error: msg})
}
