package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"stockwatch/internal/repositories"
)

type InventoryHandlers struct {
	inventoryRepo repositories.InventoryRepository
}

func NewInventoryHandlers(inventoryRepo repositories.InventoryRepository) *InventoryHandlers {
	return &InventoryHandlers{
		inventoryRepo: inventoryRepo,
	}
}

// ListInventory handles GET /v1/inventory?warehouse_id=N.
func (h *InventoryHandlers) ListInventory(c echo.Context) error {
	ctx := c.Request().Context()

	warehouseID, err := strconv.ParseInt(c.QueryParam("warehouse_id"), 10, 64)
	if err != nil || warehouseID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "warehouse_id must be a positive integer")
	}

	limit, offset := paginationParams(c)
	levels, err := h.inventoryRepo.ListByWarehouse(ctx, warehouseID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list inventory")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"inventory": levels,
		"limit":     limit,
		"offset":    offset,
	})
}
