package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"stockwatch/internal/services"
)

type ProductHandlers struct {
	productService services.ProductService
}

func NewProductHandlers(productService services.ProductService) *ProductHandlers {
	return &ProductHandlers{
		productService: productService,
	}
}

func (h *ProductHandlers) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	if sku := c.QueryParam("sku"); sku != "" {
		product, err := h.productService.GetBySKU(ctx, sku)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return echo.NewHTTPError(http.StatusNotFound, "Product not found")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get product")
		}
		return c.JSON(http.StatusOK, product)
	}

	limit, offset := paginationParams(c)
	products, err := h.productService.List(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list products")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"limit":    limit,
		"offset":   offset,
	})
}

func (h *ProductHandlers) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Product id must be a positive integer")
	}

	product, err := h.productService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get product")
	}

	return c.JSON(http.StatusOK, product)
}
