package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sizzilia/storefront/internal/service"
	"github.com/sizzilia/storefront/internal/transport"
	"github.com/sizzilia/storefront/pkg/logging"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) ProcessOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.process_order")

	var req transport.ProcessOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("process_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Datos del pedido incompletos")
	}

	order, err := h.Svc.ProcessOrder(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("process_order_failed", "status", 400, "reason", "validation", "error", err)
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		l.Error("process_order_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Error interno del servidor")
	}

	l.Info("process_order_success",
		"order_number", order.OrderNumber,
		"customer", order.CustomerInfo.Name,
		"total", order.Total,
	)
	return c.JSON(http.StatusOK, transport.ProcessOrderResponse{
		Success:     true,
		Message:     "Pedido procesado correctamente",
		OrderNumber: order.OrderNumber,
	})
}
