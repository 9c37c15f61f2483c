package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"stockwatch/internal/services"
)

type SupplierHandlers struct {
	supplierService services.SupplierService
}

func NewSupplierHandlers(supplierService services.SupplierService) *SupplierHandlers {
	return &SupplierHandlers{
		supplierService: supplierService,
	}
}

func (h *SupplierHandlers) ListSuppliers(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset := paginationParams(c)
	suppliers, err := h.supplierService.List(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list suppliers")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"suppliers": suppliers,
		"limit":     limit,
		"offset":    offset,
	})
}

func (h *SupplierHandlers) GetSupplier(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Supplier id must be a positive integer")
	}

	supplier, err := h.supplierService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Supplier not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get supplier")
	}

	return c.JSON(http.StatusOK, supplier)
}

// GetProductSuppliers handles GET /v1/products/:id/suppliers.
func (h *SupplierHandlers) GetProductSuppliers(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Product id must be a positive integer")
	}

	suppliers, err := h.supplierService.ListByProduct(ctx, productID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list product suppliers")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"product_id": productID,
		"suppliers":  suppliers,
	})
}
