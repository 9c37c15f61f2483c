package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"stockwatch/internal/repositories"
)

type SalesHandlers struct {
	salesRepo repositories.SalesRepository
}

func NewSalesHandlers(salesRepo repositories.SalesRepository) *SalesHandlers {
	return &SalesHandlers{
		salesRepo: salesRepo,
	}
}

// ListSales handles GET /v1/sales?company_id=N&days=30.
func (h *SalesHandlers) ListSales(c echo.Context) error {
	ctx := c.Request().Context()

	companyID, err := strconv.ParseInt(c.QueryParam("company_id"), 10, 64)
	if err != nil || companyID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "company_id must be a positive integer")
	}

	days := 30
	if v := c.QueryParam("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > 365 {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be between 1 and 365")
		}
		days = parsed
	}

	limit, offset := paginationParams(c)
	since := time.Now().UTC().AddDate(0, 0, -days)
	sales, err := h.salesRepo.ListByCompanySince(ctx, companyID, since, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list sales")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sales":  sales,
		"limit":  limit,
		"offset": offset,
	})
}
