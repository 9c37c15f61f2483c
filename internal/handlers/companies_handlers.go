package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"stockwatch/internal/repositories"
)

type CompanyHandlers struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyHandlers(companyRepo repositories.CompanyRepository) *CompanyHandlers {
	return &CompanyHandlers{
		companyRepo: companyRepo,
	}
}

func (h *CompanyHandlers) ListCompanies(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset := paginationParams(c)
	companies, err := h.companyRepo.List(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list companies")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"companies": companies,
		"limit":     limit,
		"offset":    offset,
	})
}

func (h *CompanyHandlers) GetCompany(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Company id must be a positive integer")
	}

	company, err := h.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Company not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get company")
	}

	return c.JSON(http.StatusOK, company)
}

// paginationParams reads limit/offset query parameters with the defaults and
// bounds used across the read endpoints.
func paginationParams(c echo.Context) (int, int) {
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 500 {
		limit = 500
	}

	offset := 0
	if v := c.QueryParam("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			offset = parsed
		}
	}
	return limit, offset
}
