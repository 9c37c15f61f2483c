package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"stockwatch/internal/services"
)

// AlertsHandlers handles the low-stock alert query surface.
type AlertsHandlers struct {
	alertsService services.AlertsService
}

func NewAlertsHandlers(alertsService services.AlertsService) *AlertsHandlers {
	return &AlertsHandlers{
		alertsService: alertsService,
	}
}

// GetLowStockAlerts handles GET /v1/companies/:company_id/alerts/low-stock.
// The optional as_of query parameter (YYYY-MM-DD) pins the reference date;
// it defaults to the current UTC time.
func (h *AlertsHandlers) GetLowStockAlerts(c echo.Context) error {
	ctx := c.Request().Context()

	companyID, err := strconv.ParseInt(c.Param("company_id"), 10, 64)
	if err != nil || companyID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Company id must be a positive integer")
	}

	now := time.Now().UTC()
	if asOf := c.QueryParam("as_of"); asOf != "" {
		parsed, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "as_of must be in YYYY-MM-DD format")
		}
		now = parsed
	}

	list, err := h.alertsService.GetLowStockAlerts(ctx, companyID, now)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCompanyID) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute low stock alerts")
	}

	return c.JSON(http.StatusOK, list)
}
