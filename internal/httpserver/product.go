package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/avoronkov/catalog-api/internal/logging"
	"github.com/avoronkov/catalog-api/internal/service"
	"github.com/avoronkov/catalog-api/internal/transport"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	return uint(id), nil
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "bad body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	prod, err := h.Svc.CreateProduct(ctx, req.Name, req.Price)
	if err != nil {
		if errors.Is(err, service.ErrNegativePrice) {
			l.Warn("create_product_failed", "status", 400, "reason", "negative price")
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_product_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create product")
	}

	return c.JSON(http.StatusOK, transport.Response{
		Data:    prod,
		Message: fmt.Sprintf("successfully created the product with ID of %d", prod.ID),
		Success: true,
	})
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.Svc.ListProducts(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list_products_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	return c.JSON(http.StatusOK, transport.Response{Data: items, Success: true})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	prod, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_product_failed", "status", 404, "id", id)
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("product with ID of %d is not found", id))
		}
		l.Error("get_product_failed", "status", 500, "id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, transport.Response{
		Data:    prod,
		Message: fmt.Sprintf("successfully retrieved the product with ID of %d", id),
		Success: true,
	})
}

func (h *CatalogHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "bad body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	prod, err := h.Svc.PatchProduct(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			l.Warn("update_product_failed", "status", 404, "id", id)
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("product with ID of %d is not found", id))
		case errors.Is(err, service.ErrNegativePrice):
			l.Warn("update_product_failed", "status", 400, "reason", "negative price")
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("update_product_failed", "status", 500, "id", id, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update product")
		}
	}

	return c.JSON(http.StatusOK, transport.Response{
		Data:    prod,
		Message: fmt.Sprintf("successfully updated the product with ID of %d", id),
		Success: true,
	})
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_product_failed", "status", 404, "id", id)
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("product with ID of %d is not found", id))
		}
		l.Error("delete_product_failed", "status", 500, "id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
	}

	return c.NoContent(http.StatusNoContent)
}
