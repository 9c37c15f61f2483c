package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"stockwatch/internal/services"
)

type WarehouseHandlers struct {
	warehouseService services.WarehouseService
}

func NewWarehouseHandlers(warehouseService services.WarehouseService) *WarehouseHandlers {
	return &WarehouseHandlers{
		warehouseService: warehouseService,
	}
}

// ListWarehouses handles GET /v1/warehouses?company_id=N.
func (h *WarehouseHandlers) ListWarehouses(c echo.Context) error {
	ctx := c.Request().Context()

	companyID, err := strconv.ParseInt(c.QueryParam("company_id"), 10, 64)
	if err != nil || companyID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "company_id must be a positive integer")
	}

	limit, offset := paginationParams(c)
	warehouses, err := h.warehouseService.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list warehouses")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"warehouses": warehouses,
		"limit":      limit,
		"offset":     offset,
	})
}

func (h *WarehouseHandlers) GetWarehouse(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Warehouse id must be a positive integer")
	}

	warehouse, err := h.warehouseService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Warehouse not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get warehouse")
	}

	return c.JSON(http.StatusOK, warehouse)
}
