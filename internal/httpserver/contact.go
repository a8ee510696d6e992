package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sizzilia/storefront/internal/service"
	"github.com/sizzilia/storefront/internal/transport"
	"github.com/sizzilia/storefront/pkg/logging"
)

type ContactHTTP struct {
	Svc *service.ContactService
}

func (h *ContactHTTP) SendContact(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contact.send_contact")

	var req transport.ContactRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("send_contact_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Error al enviar email")
	}

	if err := h.Svc.SendInquiry(ctx, req); err != nil {
		l.Error("send_contact_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Error al enviar email")
	}

	l.Info("send_contact_success", "subject", req.Subject)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Email enviado correctamente"})
}
