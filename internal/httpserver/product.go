package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sizzilia/storefront/internal/repo"
	"github.com/sizzilia/storefront/internal/service"
	"github.com/sizzilia/storefront/internal/transport"
	"github.com/sizzilia/storefront/pkg/logging"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	items, err := h.Svc.ListProducts(ctx)
	if err != nil {
		l.Error("get_products_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Error al obtener productos")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	product, err := h.Svc.GetProduct(ctx, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrInvalidID):
			l.Warn("get_product_failed", "status", 400, "reason", "malformed id", "error", err)
			return respondError(c, http.StatusBadRequest, "ID de producto no válido")
		case errors.Is(err, repo.ErrNotFound):
			l.Warn("get_product_failed", "status", 404, "reason", "unknown id", "error", err)
			return respondError(c, http.StatusNotFound, "Producto no encontrado")
		default:
			l.Error("get_product_failed", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Error al obtener producto")
		}
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Nombre, precio y categoría son requeridos")
	}

	created, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_product_failed", "status", 400, "reason", "validation", "error", err)
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		l.Error("create_product_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Error al crear producto")
	}

	l.Info("create_product_success", "product_id", created.ID.Hex())
	return c.JSON(http.StatusCreated, created)
}

func (h *CatalogHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Datos de producto no válidos")
	}

	updated, err := h.Svc.UpdateProduct(ctx, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrInvalidID):
			l.Warn("update_product_failed", "status", 400, "reason", "malformed id", "error", err)
			return respondError(c, http.StatusBadRequest, "ID de producto no válido")
		case errors.Is(err, repo.ErrNotFound):
			l.Warn("update_product_failed", "status", 404, "reason", "unknown id", "error", err)
			return respondError(c, http.StatusNotFound, "Producto no encontrado")
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_product_failed", "status", 400, "reason", "validation", "error", err)
			return respondError(c, http.StatusBadRequest, err.Error())
		default:
			l.Error("update_product_failed", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Error al actualizar producto")
		}
	}

	l.Info("update_product_success", "product_id", updated.ID.Hex())
	return c.JSON(http.StatusOK, updated)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	if err := h.Svc.DeleteProduct(ctx, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, repo.ErrInvalidID):
			l.Warn("delete_product_failed", "status", 400, "reason", "malformed id", "error", err)
			return respondError(c, http.StatusBadRequest, "ID de producto no válido")
		case errors.Is(err, repo.ErrNotFound):
			l.Warn("delete_product_failed", "status", 404, "reason", "unknown id", "error", err)
			return respondError(c, http.StatusNotFound, "Producto no encontrado")
		default:
			l.Error("delete_product_failed", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Error al eliminar producto")
		}
	}

	l.Info("delete_product_success", "product_id", c.Param("id"))
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Producto eliminado correctamente"})
}
